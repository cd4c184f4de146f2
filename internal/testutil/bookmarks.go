package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

const bookmarkFile = "memories.json"

// WriteBookmarkFile writes raw contents to <dir>/memories.json.
func WriteBookmarkFile(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, bookmarkFile)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write bookmark fixture: %v", err)
	}
	return path
}

// ReadFile returns the file contents or fails the test.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// MakeDirs creates each named directory under root and returns their paths.
func MakeDirs(t *testing.T, root string, names ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(path, 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", path, err)
		}
		paths = append(paths, path)
	}
	return paths
}
