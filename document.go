// Package wikicorpus reads the tagged and lemmatized Wikicorpus, a
// large multilingual corpus distributed as one pseudo-XML file per
// language edition. The format is line-oriented and not well-formed;
// the reader recovers from the small, fixed set of corruptions the
// published files are known to contain.
package wikicorpus

// A Token is one annotated word of a sentence: the surface form, its
// lemma, a part-of-speech tag and a word sense identifier. Annotation
// fields hold the empty string when the corpus carries no value for
// them; only the synthetic token injected by one corruption
// correction lacks all three.
type Token struct {
	Word  string
	Lemma string
	Tag   string
	Sense string
}

// A Sentence is an ordered run of tokens. Completed documents never
// contain empty sentences.
type Sentence []Token

// A Document is one article of a corpus file. ID and DBIndex are kept
// as the numeric strings found in the start marker. Duplicate ids
// across or within files occur in the corpus and are preserved as-is.
type Document struct {
	ID      string
	Title   string
	DBIndex string
	Sents   []Sentence
}
