// Package watcher turns file system changes in a workspace into batches of changed paths.
package watcher

import (
	"maps"
	"slices"
	"sync"
	"time"
	"unique"
)

// DefaultDebounceWindow is the quiet period after the last event before a batch is delivered.
const DefaultDebounceWindow = 50 * time.Millisecond

// Debouncer coalesces rapid file system events into sorted, de-duplicated batches.
// Batches are delivered one at a time: a callback never overlaps another.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(paths []string)

	// deliver holds a token while a batch is being delivered.
	deliver chan struct{}
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
		deliver:  make(chan struct{}, 1),
	}
}

// Add records path and restarts the quiet period.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(path)] = struct{}{}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.deliver <- struct{}{}
	defer func() { <-d.deliver }()

	d.mu.Lock()
	d.timer = nil
	paths := d.drain()
	d.mu.Unlock()

	d.run(paths)
}

// Flush delivers every pending path now and returns once the callback is done.
func (d *Debouncer) Flush() {
	d.deliver <- struct{}{}
	defer func() { <-d.deliver }()

	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	paths := d.drain()
	d.mu.Unlock()

	d.run(paths)
}

// drain empties the pending set. d.mu must be held.
func (d *Debouncer) drain() []string {
	if len(d.pending) == 0 {
		return nil
	}
	paths := make([]string, 0, len(d.pending))
	for h := range maps.Keys(d.pending) {
		paths = append(paths, h.Value())
	}
	clear(d.pending)
	slices.Sort(paths)
	return paths
}

func (d *Debouncer) run(paths []string) {
	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}
