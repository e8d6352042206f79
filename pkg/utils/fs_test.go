package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoFolderExists(t *testing.T) {
	dir := t.TempDir()

	exists, err := DoFolderExists(dir)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = DoFolderExists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDoFolderExistsOnFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0664))

	exists, err := DoFolderExists(file)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateFolderIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, CreateFolderIfNotExists(dir))
	exists, err := DoFolderExists(dir)
	require.NoError(t, err)
	assert.True(t, exists)

	// second call is a no-op
	require.NoError(t, CreateFolderIfNotExists(dir))
}

func TestListFilesWithExt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"), []byte("<ul></ul>"), 0664))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0664))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.html"), os.ModePerm))

	paths, err := ListFilesWithExt(dir, ".html")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.html")}, paths)
}

func TestMakeFilename(t *testing.T) {
	assert.Equal(t, "shopping_list.json", MakeFilename("  Shopping List ", ".json"))
	assert.Equal(t, "a.txt", MakeFilename("a", ".txt"))
}
