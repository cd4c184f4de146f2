package backend

import (
	"sync"
	"time"
)

// debouncer collapses bursts of filesystem events into one delivery after
// the stream has been quiet for interval.
type debouncer struct {
	interval time.Duration

	mu      sync.Mutex
	pending *Event
	timer   *time.Timer
	fire    chan struct{}
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval, fire: make(chan struct{}, 1)}
}

// push records evt as the latest pending event and restarts the quiet period.
func (d *debouncer) push(evt Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = &evt
	if d.interval <= 0 {
		d.signal()
		return
	}
	if d.timer == nil {
		d.timer = time.AfterFunc(d.interval, func() {
			d.mu.Lock()
			d.signal()
			d.mu.Unlock()
		})
		return
	}
	d.timer.Reset(d.interval)
}

// signal must be called with mu held.
func (d *debouncer) signal() {
	select {
	case d.fire <- struct{}{}:
	default:
	}
}

// ready is signalled whenever a pending event may be taken.
func (d *debouncer) ready() <-chan struct{} {
	return d.fire
}

// take returns and clears the pending event.
func (d *debouncer) take() (Event, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending == nil {
		return Event{}, false
	}
	evt := *d.pending
	d.pending = nil
	return evt, true
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}
