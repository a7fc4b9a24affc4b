package wikicorpus

import "strings"

// The projection views below derive flat word, sentence and text
// sequences from a document stream. They stay lazy: a view pulls one
// document at a time and never materializes more than the current
// one.

// Text reconstructs the raw document text: sentences joined by ". ",
// words within a sentence joined by single spaces.
func (d *Document) Text() string {
	sents := make([]string, 0, len(d.Sents))
	for _, sent := range d.Sents {
		sents = append(sents, strings.Join(sent.Words(), " "))
	}
	return strings.Join(sents, ". ")
}

// Words returns the surface forms of the sentence.
func (s Sentence) Words() []string {
	words := make([]string, 0, len(s))
	for _, tok := range s {
		words = append(words, tok.Word)
	}
	return words
}

// A TaggedPair is a surface form with its part-of-speech tag.
type TaggedPair struct {
	Word string
	Tag  string
}

// Tagged returns the (word, tag) pairs of the sentence.
func (s Sentence) Tagged() []TaggedPair {
	pairs := make([]TaggedPair, 0, len(s))
	for _, tok := range s {
		pairs = append(pairs, TaggedPair{Word: tok.Word, Tag: tok.Tag})
	}
	return pairs
}

// A SentIter is a lazy view of a stream's sentences in document
// order.
type SentIter struct {
	stream *Stream
	doc    *Document
	idx    int
	sent   Sentence
}

func NewSentIter(stream *Stream) *SentIter {
	return &SentIter{stream: stream}
}

// Scan advances to the next sentence, pulling further documents from
// the stream as needed.
func (it *SentIter) Scan() bool {
	for it.doc == nil || it.idx >= len(it.doc.Sents) {
		if !it.stream.Scan() {
			return false
		}
		it.doc = it.stream.Doc()
		it.idx = 0
	}
	it.sent = it.doc.Sents[it.idx]
	it.idx++
	return true
}

// Sent returns the sentence produced by the last successful Scan.
func (it *SentIter) Sent() Sentence {
	return it.sent
}

func (it *SentIter) Err() error {
	return it.stream.Err()
}

// A WordIter is a lazy view of a stream's tokens in document order.
type WordIter struct {
	sents *SentIter
	idx   int
	word  Token
}

func NewWordIter(stream *Stream) *WordIter {
	return &WordIter{sents: NewSentIter(stream)}
}

// Scan advances to the next token.
func (it *WordIter) Scan() bool {
	for it.idx >= len(it.sents.Sent()) {
		if !it.sents.Scan() {
			return false
		}
		it.idx = 0
	}
	it.word = it.sents.Sent()[it.idx]
	it.idx++
	return true
}

// Word returns the token produced by the last successful Scan.
func (it *WordIter) Word() Token {
	return it.word
}

func (it *WordIter) Err() error {
	return it.sents.Err()
}
