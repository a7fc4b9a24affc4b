package wikicorpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func catFiles() []FileSpec {
	return []FileSpec{
		{Path: "testdata/cat_corpus_00"},
		{Path: "testdata/cat_corpus_01"},
	}
}

func collectIDs(s *Stream) []string {
	var ids []string
	for s.Scan() {
		ids = append(ids, s.Doc().ID)
	}
	return ids
}

func TestStream(t *testing.T) {
	assert := assert.New(t)

	s := NewStream(catFiles())
	defer s.Close()

	assert.Equal([]string{"11", "12", "11"}, collectIDs(s))
	assert.Nil(s.Err())

	// Exhausted streams stay exhausted
	assert.False(s.Scan())
}

func TestStreamReset(t *testing.T) {
	assert := assert.New(t)

	s := NewStream(catFiles())
	defer s.Close()

	first := collectIDs(s)
	assert.Nil(s.Err())

	assert.Nil(s.Reset())
	second := collectIDs(s)
	assert.Nil(s.Err())

	// Re-parsing is a pure function of the input bytes
	assert.Equal(first, second)
}

func TestStreamClose(t *testing.T) {
	assert := assert.New(t)

	s := NewStream(catFiles())
	assert.True(s.Scan())
	assert.Nil(s.Close())
	assert.False(s.Scan())
	assert.Nil(s.Err())

	// Reset makes the stream iterable again from the start
	assert.Nil(s.Reset())
	assert.True(s.Scan())
	assert.Equal("11", s.Doc().ID)
	assert.Nil(s.Close())
}

func TestStreamDuplicatedCloseRecovery(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "cat_dup")
	content := "<doc id=\"1\" title=\"A\" nonfiltered=\"1\" processed=\"1\" dbindex=\"0\">\n" +
		"sol sol NCMS000 0\n\n" + docFooter +
		"\n</doc>\n" +
		"<doc id=\"2\" title=\"B\" nonfiltered=\"2\" processed=\"2\" dbindex=\"1\">\n" +
		"mar mar NCMS000 0\n\n" + docFooter
	assert.Nil(os.WriteFile(path, []byte(content), 0600))

	s := NewStream([]FileSpec{{Path: path}})
	defer s.Close()

	// The stray closing marker between the two documents yields no
	// document and no error
	assert.Equal([]string{"1", "2"}, collectIDs(s))
	assert.Nil(s.Err())
}

func TestStreamStructuralError(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "cat_bad")
	assert.Nil(os.WriteFile(path, []byte("this is not a document\n"), 0600))

	s := NewStream([]FileSpec{{Path: path}})
	defer s.Close()

	assert.False(s.Scan())
	var structural *StructuralError
	assert.ErrorAs(s.Err(), &structural)

	// The error is final
	assert.False(s.Scan())
}

func TestStreamMissingFile(t *testing.T) {
	assert := assert.New(t)

	s := NewStream([]FileSpec{{Path: "testdata/does_not_exist"}})
	assert.False(s.Scan())
	assert.NotNil(s.Err())
}
