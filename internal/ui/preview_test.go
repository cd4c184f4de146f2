package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/save-point/internal/testutil"
)

func TestListDirectorySortsDirsFirst(t *testing.T) {
	root := t.TempDir()
	testutil.MakeDirs(t, root, "zeta", "alpha")
	if err := os.WriteFile(filepath.Join(root, "beta.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines, err := listDirectory(root, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"alpha/", "zeta/", "beta.txt"}
	if strings.Join(lines, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected listing %v", lines)
	}
}

func TestListDirectoryCapsEntries(t *testing.T) {
	root := t.TempDir()
	testutil.MakeDirs(t, root, "a", "b", "c", "d")
	lines, err := listDirectory(root, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 3 || lines[2] != "… 2 more" {
		t.Fatalf("unexpected listing %v", lines)
	}
}

func TestListDirectoryEmpty(t *testing.T) {
	lines, err := listDirectory(t.TempDir(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0] != "(empty)" {
		t.Fatalf("unexpected listing %v", lines)
	}
}

func TestPreviewFollowsSelection(t *testing.T) {
	restore := readDirPreview
	defer func() { readDirPreview = restore }()
	readDirPreview = func(dir string, limit int) ([]string, error) {
		return []string{"listing of " + dir}, nil
	}

	m := NewModel(Options{Bookmarks: []string{"/a", "/b"}, Preview: true, Width: 100, Height: 12})
	h := NewHarness(m)
	h.Init()
	if m.preview == nil || m.preview.target != "/a" || m.preview.loading {
		t.Fatalf("expected loaded preview for /a, got %+v", m.preview)
	}
	if view := h.View(); !strings.Contains(view, "listing of /a") {
		t.Fatalf("expected preview panel, got:\n%s", view)
	}

	h.SendKey("j")
	if m.preview.target != "/b" {
		t.Fatalf("expected preview to follow cursor, got %q", m.preview.target)
	}
	if view := h.View(); !strings.Contains(view, "listing of /b") {
		t.Fatalf("expected /b listing, got:\n%s", view)
	}
}

func TestPreviewIgnoresStaleResults(t *testing.T) {
	m := NewModel(Options{Bookmarks: []string{"/a", "/b"}, Preview: true})
	first := m.ensurePreview()
	if first == nil {
		t.Fatalf("expected preview command")
	}
	m.Update(keyMsg("j"))
	stale := previewLoadedMsg{target: "/a", seq: 1, lines: []string{"old"}}
	m.Update(stale)
	if m.preview.target != "/b" || !m.preview.loading {
		t.Fatalf("expected stale result dropped, got %+v", m.preview)
	}
}

func TestPreviewShowsReadError(t *testing.T) {
	restore := readDirPreview
	defer func() { readDirPreview = restore }()
	readDirPreview = func(string, int) ([]string, error) {
		return nil, errors.New("permission denied")
	}
	m := NewModel(Options{Bookmarks: []string{"/locked"}, Preview: true, Width: 100, Height: 10})
	h := NewHarness(m)
	h.Init()
	if view := h.View(); !strings.Contains(view, "permission denied") {
		t.Fatalf("expected error in preview, got:\n%s", view)
	}
}

func TestPreviewDisabled(t *testing.T) {
	m := newTestModel("/a")
	if cmd := m.ensurePreview(); cmd != nil {
		t.Fatalf("expected no preview command when disabled")
	}
}

func TestListDirectoryStripsEscapeSequences(t *testing.T) {
	root := t.TempDir()
	name := "evil\x1b[2Jname"
	if err := os.WriteFile(filepath.Join(root, name), nil, 0o644); err != nil {
		t.Skipf("filesystem rejects escape in name: %v", err)
	}
	lines, err := listDirectory(root, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0] != "evilname" {
		t.Fatalf("expected stripped name, got %q", lines)
	}
}
