package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/atomicstack/save-point/internal/logging/events"
	"github.com/fsnotify/fsnotify"
)

// Event reports a change to the watched bookmark file, or a watcher error.
type Event struct {
	Op   string
	Path string
	Err  error
}

// Watcher observes the bookmark file for rewrites made outside the session.
type Watcher struct {
	path string
	fsw  *fsnotify.Watcher

	ctx    context.Context
	cancel context.CancelFunc

	debounce *debouncer
	events   chan Event
	wg       sync.WaitGroup
}

// NewWatcher watches the directory containing path and publishes changes to
// path itself. Bursts within debounce are coalesced into a single event.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		fsw:      fsw,
		ctx:      ctx,
		cancel:   cancel,
		debounce: newDebouncer(debounce),
		events:   make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	events.Watch.Start(abs)
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns a channel of change events. It is closed after Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher and releases the fsnotify handle.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watcher goroutine has exited. The events channel is
// closed shortly after.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer w.fsw.Close()
	defer w.debounce.stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.debounce.push(Event{Op: ev.Op.String(), Path: w.path})
		case <-w.debounce.ready():
			evt, ok := w.debounce.take()
			if !ok {
				continue
			}
			events.Watch.Change(evt.Path, evt.Op)
			if !w.emit(evt) {
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			events.Watch.Error(err)
			if !w.emit(Event{Path: w.path, Err: err}) {
				return
			}
		}
	}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
