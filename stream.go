package wikicorpus

import (
	"io"
	"os"

	"golang.org/x/text/encoding"
)

// A FileSpec names one corpus file and the text encoding it is
// stored in. A nil Encoding means UTF-8.
type FileSpec struct {
	Path     string
	Encoding encoding.Encoding
}

// A Stream is a lazy, forward-only sequence of documents read from an
// ordered list of corpus files. It follows the bufio.Scanner
// protocol: Scan advances to the next document, Doc returns it and
// Err reports the error that stopped the stream, if any.
//
// A stream owns its underlying file handle exclusively and releases
// it on every exit path, including abandonment via Close.
type Stream struct {
	files  []FileSpec
	next   int
	file   *os.File
	parser *BlockParser
	doc    *Document
	err    error
	done   bool
}

// NewStream returns a stream over the given files, in order.
func NewStream(files []FileSpec) *Stream {
	return &Stream{files: files}
}

// Scan advances the stream to the next document. It returns false at
// the end of the last file or on the first error, after which Err is
// set and the underlying file is closed.
func (s *Stream) Scan() bool {
	if s.done {
		return false
	}
	for {
		if s.parser == nil {
			if s.next >= len(s.files) {
				s.stop(nil)
				return false
			}
			spec := s.files[s.next]
			s.next++
			file, err := os.Open(spec.Path)
			if err != nil {
				s.stop(err)
				return false
			}
			s.file = file
			s.parser = NewBlockParser(NewLineSource(file, spec.Encoding))
		}

		doc, err := s.parser.ReadBlock()
		switch {
		case err == io.EOF:
			s.closeFile()
			s.parser = nil
		case err != nil:
			s.stop(err)
			return false
		case doc != nil:
			s.doc = doc
			return true
		}
		// No document and no error: a duplicated closing marker was
		// consumed, try the next block.
	}
}

// Doc returns the document produced by the last successful Scan.
func (s *Stream) Doc() *Document {
	return s.doc
}

// Err returns the error that stopped the stream. It is nil after a
// clean exhaustion of all files.
func (s *Stream) Err() error {
	return s.err
}

// Reset rewinds the stream to its first document; the underlying
// files are reopened by the following Scan.
func (s *Stream) Reset() error {
	err := s.closeFile()
	s.parser = nil
	s.next = 0
	s.doc = nil
	s.err = nil
	s.done = false
	return err
}

// Close releases the currently open file. The stream yields no
// further documents until Reset is called.
func (s *Stream) Close() error {
	err := s.closeFile()
	s.parser = nil
	s.done = true
	return err
}

func (s *Stream) stop(err error) {
	s.err = err
	s.done = true
	s.closeFile()
	s.parser = nil
}

func (s *Stream) closeFile() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
