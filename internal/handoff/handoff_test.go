package handoff

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStoresRawTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "target")
	target := "/home/user/dir with spaces/ü"

	require.NoError(t, Write(path, target))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, target, string(data))
}

func TestWriteOverwritesPreviousTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "target")
	require.NoError(t, Write(path, "/a/very/long/first/target"))
	require.NoError(t, Write(path, "/b"))

	assert.Equal(t, "/b", readTarget(t, path))
}

func TestWriteCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "target")
	require.NoError(t, Write(path, "/x"))
	assert.Equal(t, "/x", readTarget(t, path))
}

func TestWriteRejectsEmptyInput(t *testing.T) {
	dir := t.TempDir()
	assert.ErrorIs(t, Write(filepath.Join(dir, "target"), ""), errEmptyTarget)
	assert.ErrorIs(t, Write("  ", "/x"), errEmptyPath)
	_, err := os.Stat(filepath.Join(dir, "target"))
	assert.True(t, os.IsNotExist(err))
}

func TestDefaultPathIsInTempDir(t *testing.T) {
	assert.Equal(t, os.TempDir(), filepath.Dir(DefaultPath()))
	assert.Equal(t, defaultFileName, filepath.Base(DefaultPath()))
}

func readTarget(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
