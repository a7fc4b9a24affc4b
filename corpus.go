package wikicorpus

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
)

// A Corpus enumerates the files of one Wikicorpus directory. File
// names start with a 3-letter language code; one file holds many
// documents.
type Corpus struct {
	dir      string
	fileids  []string
	encoding encoding.Encoding
}

// Open lists the corpus files under dir. enc is the text encoding the
// files are stored in; nil means UTF-8.
func Open(dir string, enc encoding.Encoding) (*Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	corpus := &Corpus{dir: dir, encoding: enc}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		corpus.fileids = append(corpus.fileids, entry.Name())
	}
	sort.Strings(corpus.fileids)

	return corpus, nil
}

// FileIDs returns the names of all corpus files, sorted.
func (c *Corpus) FileIDs() []string {
	ids := make([]string, len(c.fileids))
	copy(ids, c.fileids)
	return ids
}

// Langs returns the distinct language codes of the corpus, taken from
// the first three characters of each file name, sorted.
func (c *Corpus) Langs() []string {
	seen := make(map[string]bool)
	langs := []string{}
	for _, id := range c.fileids {
		lang := id
		if len(lang) > 3 {
			lang = lang[:3]
		}
		if !seen[lang] {
			seen[lang] = true
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	return langs
}

// Files returns the ordered (path, encoding) pairs of all corpus
// files whose name starts with lang.
func (c *Corpus) Files(lang string) []FileSpec {
	var files []FileSpec
	for _, id := range c.fileids {
		if strings.HasPrefix(id, lang) {
			files = append(files, FileSpec{
				Path:     filepath.Join(c.dir, id),
				Encoding: c.encoding,
			})
		}
	}
	return files
}

// Docs returns a lazy stream over the documents of all files of the
// given language, in file name order.
func (c *Corpus) Docs(lang string) *Stream {
	return NewStream(c.Files(lang))
}

// Sents returns a lazy view of all sentences of the given language.
func (c *Corpus) Sents(lang string) *SentIter {
	return NewSentIter(c.Docs(lang))
}

// Words returns a lazy view of all tokens of the given language.
func (c *Corpus) Words(lang string) *WordIter {
	return NewWordIter(c.Docs(lang))
}
