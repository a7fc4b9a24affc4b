package wikicorpus

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Non-breaking spaces occur inside token lines and are folded to
// plain spaces during normalization.
const nbsp = ' '

// A LineSource yields the successive normalized lines of a decoded
// text stream. It keeps no lookahead: every call to Next consumes
// exactly one underlying line and there is no way back.
type LineSource struct {
	reader *bufio.Reader
}

// NewLineSource wraps r. A non-nil enc decodes the byte stream before
// line splitting; nil means the stream is already UTF-8.
func NewLineSource(r io.Reader, enc encoding.Encoding) *LineSource {
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}
	return &LineSource{reader: bufio.NewReader(r)}
}

// Next returns the next line with surrounding whitespace stripped and
// interior non-breaking spaces replaced by plain spaces. At the end
// of the stream it returns io.EOF.
func (src *LineSource) Next() (string, error) {
	line, err := src.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			// Last line of a file without a trailing newline
			return normalizeLine(line), nil
		}
		return "", err
	}
	return normalizeLine(line), nil
}

func normalizeLine(line string) string {
	return strings.ReplaceAll(strings.TrimSpace(line), string(nbsp), " ")
}
