package wikicorpus

import (
	"io"

	"github.com/rs/zerolog/log"
)

// A BlockParser assembles documents from the lines of a single corpus
// file. One call to ReadBlock consumes exactly one document block.
type BlockParser struct {
	src *LineSource
}

func NewBlockParser(src *LineSource) *BlockParser {
	return &BlockParser{src: src}
}

// ReadBlock reads the next document block from the source.
//
// It returns io.EOF when the source is exhausted before a start
// marker, (nil, nil) when a stray duplicated closing marker was
// consumed instead of a document, and the completed document
// otherwise. Files cut off mid-document finalize silently with
// whatever complete sentences were collected; any other deviation
// from the grammar is an error.
func (p *BlockParser) ReadBlock() (*Document, error) {
	line, err := p.src.Next()
	if err != nil {
		return nil, err
	}

	m := patternDocStart.FindStringSubmatch(line)
	if m == nil {
		if line == "" {
			// One corpus file contains two consecutive closing tags
			line, err = p.src.Next()
			if err != nil && err != io.EOF {
				return nil, err
			}
			if err != nil || line != lineDocClose {
				return nil, &StructuralError{Expected: "a closing body tag", Line: line}
			}
			return nil, nil
		}
		return nil, &StructuralError{Expected: "an opening document tag", Line: line}
	}

	doc := &Document{ID: m[1], Title: m[2], DBIndex: m[3]}

	line, err = p.src.Next()
	for err == nil && line != lineEndOfArticle && line != lineDocClose {
		var sent Sentence
		discard := false
		truncated := false

		for err == nil && line != "" && line != lineEndOfArticle && line != lineDocClose {
			tokens, skip, ok := parseWordLine(line)
			if !ok {
				// The file could be truncated mid-download, in which
				// case this line cannot be parsed and nothing
				// follows it. Peek by consuming: there is no way to
				// push the next line back, but on the error path it
				// is never needed again.
				if _, nerr := p.src.Next(); nerr != nil {
					if nerr != io.EOF {
						return nil, nerr
					}
					log.Warn().Str("line", line).Msg("Ignoring unparsable line at the end of a truncated file")
					truncated = true
					break
				}
				return nil, &UnparsableLineError{Line: line}
			}
			if skip {
				discard = true
			} else if !discard {
				sent = append(sent, tokens...)
			}
			line, err = p.src.Next()
		}

		// Truncation mid-sentence drops the unfinished sentence but
		// keeps all complete sentences collected before it.
		if truncated || err != nil {
			break
		}

		if !discard && len(sent) > 0 {
			doc.Sents = append(doc.Sents, sent)
		}

		if line == "" {
			line, err = p.src.Next()
		}
	}

	if err != nil && err != io.EOF {
		return nil, err
	}

	if err == nil && line == lineEndOfArticle {
		footer := []struct{ line, desc string }{
			{lineFooterDot, "a dot after the end of article"},
			{"", "a blank line"},
			{lineDocClose, "a closing body tag"},
		}
		for _, want := range footer {
			line, err = p.src.Next()
			if err != nil && err != io.EOF {
				return nil, err
			}
			if err != nil || line != want.line {
				return nil, &StructuralError{Expected: want.desc, Line: line}
			}
		}
	}

	return doc, nil
}
