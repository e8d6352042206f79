package writer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriterCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	w, err := NewWriter[[]string](dir)
	require.NoError(t, err)
	assert.Equal(t, dir, w.DirPath)
	assert.Equal(t, filepath.Join(dir, "a.txt"), w.GetFilePath("a.txt"))
}

func TestLinesRoundtrip(t *testing.T) {
	w, err := NewWriter[[]string](t.TempDir())
	require.NoError(t, err)

	list := []string{"one", "two", "two", "three"}
	require.NoError(t, w.WriteLines("list.txt", list))

	got, err := w.ReadLines("list.txt")
	require.NoError(t, err)
	assert.Equal(t, list, got)
}

func TestWriteLinesTruncates(t *testing.T) {
	w, err := NewWriter[[]string](t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.WriteLines("list.txt", []string{"a", "b", "c"}))
	require.NoError(t, w.WriteLines("list.txt", []string{"z"}))

	got, err := w.ReadLines("list.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, got)
}

func TestAppendLines(t *testing.T) {
	w, err := NewWriter[[]string](t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.AppendLines("list.txt", []string{"a"}))
	require.NoError(t, w.AppendLines("list.txt", []string{"b"}))

	got, err := w.ReadLines("list.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestJsonRoundtrip(t *testing.T) {
	w, err := NewWriter[[]string](t.TempDir())
	require.NoError(t, err)

	list := []string{"a", "b"}
	require.NoError(t, w.JsonWrite("list.json", list, true))

	got, err := w.JsonRead("list.json")
	require.NoError(t, err)
	assert.Equal(t, list, got)
}

func TestJsonReadMissingFile(t *testing.T) {
	w, err := NewWriter[[]string](t.TempDir())
	require.NoError(t, err)

	_, err = w.JsonRead("missing.json")
	assert.Error(t, err)
}
