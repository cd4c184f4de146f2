// Package store persists the ordered bookmark collection as a JSON file.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/atomicstack/save-point/internal/logging"
	"github.com/atomicstack/save-point/internal/logging/events"
	"github.com/tidwall/jsonc"
)

// FileName is the bookmark file created inside the bookmark directory.
const FileName = "memories.json"

const filePerm = 0o644

// Collection is the ordered list of bookmarked paths. Order is display order.
type Collection []string

// Clone returns an independent copy of the collection.
func (c Collection) Clone() Collection {
	dup := make(Collection, len(c))
	copy(dup, c)
	return dup
}

// Descriptor binds a collection to the file it was loaded from and will be
// saved to.
type Descriptor struct {
	Path      string
	Bookmarks Collection
	// Recovered holds the load failure Init fell back from, if any.
	Recovered error
}

// Init computes <dir>/memories.json and loads it. Any load failure yields an
// empty collection bound to that path; the failure is kept in Recovered and
// logged.
func Init(dir string) Descriptor {
	path := filepath.Join(dir, FileName)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	bookmarks, err := Load(path)
	if err == nil {
		events.Store.Load(path, len(bookmarks))
		return Descriptor{Path: path, Bookmarks: bookmarks}
	}
	switch {
	case errors.Is(err, ErrNotFound):
		events.Store.Fallback(path, events.StoreReasonMissing, nil)
	case errors.Is(err, ErrParse):
		logging.Warn("%v; starting with an empty bookmark list", err)
		events.Store.Fallback(path, events.StoreReasonCorrupt, err)
	default:
		logging.Warn("%v; starting with an empty bookmark list", err)
		events.Store.Fallback(path, events.StoreReasonIO, err)
	}
	return Descriptor{Path: path, Bookmarks: Collection{}, Recovered: err}
}

// Save writes the descriptor's collection to its bound path.
func (d *Descriptor) Save() error {
	if err := Save(d.Bookmarks, d.Path); err != nil {
		events.Store.SaveError(d.Path, err)
		return err
	}
	events.Store.Save(d.Path, len(d.Bookmarks))
	return nil
}

// Replace overwrites the collection with a copy of paths.
func (d *Descriptor) Replace(paths []string) {
	d.Bookmarks = Collection(paths).Clone()
}

// Repoint binds the descriptor to a different file for subsequent saves.
func (d *Descriptor) Repoint(path string) {
	events.Store.Repoint(d.Path, path)
	d.Path = path
}

// Load reads the bookmark file at path. A missing file matches ErrNotFound;
// undecodable contents return a *ParseError.
func Load(path string) (Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, ErrNotFound)
		}
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	bookmarks, err := decode(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return bookmarks, nil
}

// Save serialises the collection as a JSON array and atomically replaces the
// file at path, creating it when absent.
func Save(bookmarks Collection, path string) error {
	if bookmarks == nil {
		bookmarks = Collection{}
	}
	data, err := json.MarshalIndent([]string(bookmarks), "", "  ")
	if err != nil {
		return &IOError{Op: "encode", Path: path, Err: err}
	}
	data = append(data, '\n')
	if err := WriteFileAtomic(path, data, filePerm); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// legacyFile is the object layout written by earlier releases.
type legacyFile struct {
	Memories *[]*string `json:"memories"`
}

func decode(data []byte) (Collection, error) {
	clean := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(clean) == 0 {
		return Collection{}, nil
	}
	var entries []*string
	switch clean[0] {
	case '[':
		if err := json.Unmarshal(clean, &entries); err != nil {
			return nil, err
		}
	case '{':
		var legacy legacyFile
		if err := json.Unmarshal(clean, &legacy); err != nil {
			return nil, err
		}
		if legacy.Memories == nil {
			return nil, errors.New(`object form is missing the "memories" list`)
		}
		entries = *legacy.Memories
	default:
		return nil, fmt.Errorf("expected a JSON array, found %q", clean[0])
	}
	bookmarks := make(Collection, 0, len(entries))
	for i, entry := range entries {
		if entry == nil {
			return nil, fmt.Errorf("entry %d is null", i)
		}
		bookmarks = append(bookmarks, *entry)
	}
	return bookmarks, nil
}
