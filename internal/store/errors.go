package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that no bookmark file exists at the requested path.
	ErrNotFound = errors.New("bookmark file not found")
	// ErrParse is matched by every ParseError.
	ErrParse = errors.New("bookmark file is not a list of paths")
)

// ParseError describes a bookmark file whose contents could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// IOError wraps filesystem failures while reading or writing bookmarks.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
