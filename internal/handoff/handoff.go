// Package handoff passes the chosen bookmark to the shell wrapper that
// changes the caller's working directory.
package handoff

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/save-point/internal/logging/events"
	"github.com/atomicstack/save-point/internal/store"
)

const defaultFileName = "save-point.target"

var (
	errEmptyTarget = errors.New("hand-off target is empty")
	errEmptyPath   = errors.New("hand-off file path is empty")
)

// DefaultPath is the hand-off location used when none is configured.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), defaultFileName)
}

// Write stores target verbatim at path for the wrapper to read and delete.
func Write(path, target string) error {
	if strings.TrimSpace(path) == "" {
		return errEmptyPath
	}
	if target == "" {
		return errEmptyTarget
	}
	if err := store.WriteFileAtomic(path, []byte(target), 0o600); err != nil {
		return fmt.Errorf("write hand-off file %s: %w", path, err)
	}
	events.Handoff.Write(path, target)
	return nil
}
