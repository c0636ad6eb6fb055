package corpus

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ughe/ocreval/logging"
)

func writeFolder(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0600))
	}
	return dir
}

func collect(t *testing.T, it *Iterator) []Pair {
	t.Helper()
	var pairs []Pair
	for it.Next() {
		pairs = append(pairs, it.Pair())
	}
	require.NoError(t, it.Err())
	return pairs
}

func TestPairsInFileNameOrder(t *testing.T) {
	ref := writeFolder(t, map[string]string{"b.txt": "due", "a.txt": "uno", "c.txt": "tre"})
	hyp := writeFolder(t, map[string]string{"c.txt": "tre", "a.txt": "un0", "b.txt": "due"})

	r, err := Open(ref)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, r.IDs())

	pairs := collect(t, r.Pairs(Engine{Name: "tess", Folder: hyp}))
	require.Len(t, pairs, 3)
	assert.Equal(t, Pair{ID: "a.txt", Engine: "tess", Ref: "uno", Hyp: "un0"}, pairs[0])
	assert.Equal(t, "c.txt", pairs[2].ID)
}

func TestMissingHypothesisIsSkippedWithOneWarning(t *testing.T) {
	ref := writeFolder(t, map[string]string{"a.txt": "uno", "b.txt": "due", "c.txt": "tre"})
	hyp := writeFolder(t, map[string]string{"a.txt": "uno", "c.txt": "tre"})

	var buf bytes.Buffer
	r, err := Open(ref, WithLogger(logging.NewWithWriter("corpus", &buf)))
	require.NoError(t, err)

	it := r.Pairs(Engine{Folder: hyp})
	pairs := collect(t, it)
	assert.Len(t, pairs, 2)
	assert.Equal(t, []string{"b.txt"}, it.Skipped())

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "[WARN]"))
	assert.Contains(t, out, "id=b.txt")
	assert.Contains(t, out, "engine="+hyp)
}

func TestOpenUnreadableFolder(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "list", ioErr.Op)
}

func TestOpenEmptyFolder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".DS_Store"), nil, 0600))
	_, err := Open(dir)
	assert.True(t, errors.Is(err, ErrEmptyCorpus))
}

func TestInvalidEncodingIsIOError(t *testing.T) {
	ref := writeFolder(t, map[string]string{"a.txt": "uno"})
	hyp := writeFolder(t, map[string]string{"a.txt": "\xff\xfe"})

	r, err := Open(ref)
	require.NoError(t, err)
	it := r.Pairs(Engine{Folder: hyp})
	assert.False(t, it.Next())
	var ioErr *IOError
	require.ErrorAs(t, it.Err(), &ioErr)
	assert.Equal(t, "read", ioErr.Op)
	assert.False(t, it.Next())
}

func TestNormalization(t *testing.T) {
	ref := writeFolder(t, map[string]string{"a.txt": "citta\u0300"}) // decomposed
	hyp := writeFolder(t, map[string]string{"a.txt": "citt\u00e0"})

	r, err := Open(ref, WithNormalization(true))
	require.NoError(t, err)
	pairs := collect(t, r.Pairs(Engine{Folder: hyp}))
	require.Len(t, pairs, 1)
	assert.Equal(t, pairs[0].Hyp, pairs[0].Ref)

	raw, err := Open(ref)
	require.NoError(t, err)
	pairs = collect(t, raw.Pairs(Engine{Folder: hyp}))
	assert.NotEqual(t, pairs[0].Hyp, pairs[0].Ref)
}

func TestReferenceReusedAcrossEngines(t *testing.T) {
	ref := writeFolder(t, map[string]string{"a.txt": "uno"})
	e1 := writeFolder(t, map[string]string{"a.txt": "uno"})
	e2 := writeFolder(t, map[string]string{"a.txt": "un"})

	r, err := Open(ref)
	require.NoError(t, err)
	p1 := collect(t, r.Pairs(Engine{Name: "one", Folder: e1}))
	// Removing the file proves the second engine reads the cached text
	require.NoError(t, os.Remove(filepath.Join(ref, "a.txt")))
	p2 := collect(t, r.Pairs(Engine{Name: "two", Folder: e2}))
	assert.Equal(t, p1[0].Ref, p2[0].Ref)
	assert.Equal(t, "two", p2[0].Engine)
}

func TestEngineID(t *testing.T) {
	assert.Equal(t, "tess", Engine{Name: "tess", Folder: "x"}.ID())
	assert.Equal(t, "books/txt_easyocr", Engine{Folder: "books/txt_easyocr"}.ID())
}
