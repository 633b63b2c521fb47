package input

import (
	"sync"

	"twinlift/src/timer"
)

// Debouncer is the single pending-input slot shared between the edge goroutine
// and the poll loop.
type Debouncer struct {
	mu      sync.Mutex
	window  uint32
	pending bool
	latch   uint32
}

func NewDebouncer(window uint32) *Debouncer {
	return &Debouncer{window: window}
}

// Latch records an edge at now unless one is already pending. It reports
// whether the edge was taken.
func (d *Debouncer) Latch(now uint32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending {
		return false
	}
	d.pending = true
	d.latch = now
	return true
}

// Due reports whether a pending edge has settled for the debounce window.
func (d *Debouncer) Due(now uint32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending && timer.Elapsed(d.latch, now) >= d.window
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer) Clear() {
	d.mu.Lock()
	d.pending = false
	d.mu.Unlock()
}
