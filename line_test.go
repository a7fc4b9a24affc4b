package wikicorpus

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/charmap"
)

func TestLineSource(t *testing.T) {
	assert := assert.New(t)

	src := NewLineSource(strings.NewReader("Hello hello NN 0\n  padded \t\n\nuno dos\n"), nil)

	line, err := src.Next()
	assert.Nil(err)
	assert.Equal("Hello hello NN 0", line)

	line, err = src.Next()
	assert.Nil(err)
	assert.Equal("padded", line)

	line, err = src.Next()
	assert.Nil(err)
	assert.Equal("", line)

	line, err = src.Next()
	assert.Nil(err)
	assert.Equal("uno dos", line)

	_, err = src.Next()
	assert.Equal(io.EOF, err)

	// Exhaustion is stable
	_, err = src.Next()
	assert.Equal(io.EOF, err)
}

func TestLineSourceNoTrailingNewline(t *testing.T) {
	assert := assert.New(t)

	src := NewLineSource(strings.NewReader("first\nlast"), nil)

	line, err := src.Next()
	assert.Nil(err)
	assert.Equal("first", line)

	line, err = src.Next()
	assert.Nil(err)
	assert.Equal("last", line)

	_, err = src.Next()
	assert.Equal(io.EOF, err)
}

func TestLineSourceLatin1(t *testing.T) {
	assert := assert.New(t)

	// "però però" with ò as a single ISO-8859-1 byte and a 0xa0
	// non-breaking space between the words
	raw := []byte{'p', 'e', 'r', 0xf2, 0xa0, 'p', 'e', 'r', 0xf2, '\n'}
	src := NewLineSource(strings.NewReader(string(raw)), charmap.ISO8859_1)

	line, err := src.Next()
	assert.Nil(err)
	assert.Equal("però però", line)

	_, err = src.Next()
	assert.Equal(io.EOF, err)
}
