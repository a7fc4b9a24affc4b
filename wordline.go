package wikicorpus

import (
	"regexp"

	"github.com/rs/zerolog/log"
)

// The corpus is plain, not well-formed XML: no declaration, attribute
// content unescaped. The fixed line patterns below are all the
// structure the format has. They are anchored at the start only,
// prefix matching the way the upstream tooling did.
var (
	patternDocStart = regexp.MustCompile(`^<doc id="(\d+)" title="(.*)" nonfiltered="\d+" processed="\d+" dbindex="(\d+)">`)

	patternWord       = regexp.MustCompile(`^(\S+)\s+(\S+)\s+(\S+)\s+(\d+)`)
	patternWordDouble = regexp.MustCompile(`^(\S+\s+\S+)\s+(\S+\s+\S+)\s+(\S+)\s+(\d+)`)
	patternWordTriple = regexp.MustCompile(`^(\S+\s+\S+\s+\S+)\s+(\S+\s+\S+\s+\S+)\s+(\S+)\s+(\d+)`)
)

const (
	lineEndOfArticle = "ENDOFARTICLE endofarticle NP00000 0"
	lineDocClose     = "</doc>"
	lineFooterDot    = ". . Fp 0"

	// A single f on a line is garbage in the source corpus. The
	// sentence containing it is dropped entirely.
	lineSkipSentence = "f"

	// A punctuation token whose surface form and lemma are empty
	lineBarePunct = "Fz 0"
)

// corruptLines maps the byte-level corruptions of the source corpus
// that no grammar can express to their corrected tokens. The table
// must match the corpus verbatim; it is data, not heuristic. The
// first entry carries a second, annotation-free token for a word the
// corruption swallowed.
var corruptLines = map[string][]Token{
	"30_de_gener_de_1994 despr√©s [??:30/1/-99999:??.??:??] W 0": {
		{Word: "30_de_gener_de_1994", Lemma: "[??:30/1/-99999:??.??:??]", Tag: "W", Sense: "0"},
		{Word: "despr√©s"},
	},
	"20 000_tones WG_tm:20 Zu 0": {
		{Word: "20000_tones", Lemma: "WG_tm:20000", Tag: "Zu", Sense: "0"},
	},
}

var wordPatterns = []*regexp.Regexp{patternWord, patternWordDouble, patternWordTriple}

// parseWordLine decodes one non-blank line into its tokens. skip
// reports the skip-sentence literal; ok is false when the line
// matches nothing at all, which the caller resolves as either an
// error or a truncated file.
func parseWordLine(line string) (tokens []Token, skip, ok bool) {
	if line == lineBarePunct {
		return []Token{{Tag: "Fz", Sense: "0"}}, false, true
	}

	for _, pattern := range wordPatterns {
		if m := pattern.FindStringSubmatch(line); m != nil {
			return []Token{{Word: m[1], Lemma: m[2], Tag: m[3], Sense: m[4]}}, false, true
		}
	}

	if tokens, found := corruptLines[line]; found {
		log.Debug().Str("line", line).Msg("Corrected a known corrupt line")
		return tokens, false, true
	}

	if line == lineSkipSentence {
		return nil, true, true
	}

	return nil, false, false
}
