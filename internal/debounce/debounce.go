// Package debounce provides a generic single-value debouncer: rapid
// calls to Push within the quiet window collapse into one delivery of
// the most recent value once the window closes. Generalized from
// internal/plugins/conversations/coalescer.go's EventCoalescer, which
// does the same thing specialized to session-ID refresh events; here the
// coalesced payload is a type parameter instead of a hardcoded message
// shape, since spec.md §4.9 needs the identical behavior for two
// different payloads (the pending query string and the pending terminal
// size).
package debounce

import (
	"sync"
	"time"
)

// Debouncer holds the latest pushed value of T and, once window has
// elapsed since the most recent Push with no further Push arriving,
// delivers it on out.
type Debouncer[T any] struct {
	mu      sync.Mutex
	window  time.Duration
	timer   *time.Timer
	out     chan<- T
	pending T
	has     bool
}

// New returns a Debouncer that delivers coalesced values to out after
// window has passed quietly. A window <= 0 delivers on the next tick of
// the runtime timer resolution, i.e. as soon as possible without
// synchronous delivery.
func New[T any](window time.Duration, out chan<- T) *Debouncer[T] {
	return &Debouncer[T]{window: window, out: out}
}

// Push records value as the latest pending payload and restarts the
// quiet-period timer.
func (d *Debouncer[T]) Push(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = value
	d.has = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.flush)
}

func (d *Debouncer[T]) flush() {
	d.mu.Lock()
	if !d.has {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.has = false
	d.timer = nil
	d.mu.Unlock()

	select {
	case d.out <- v:
	default:
		// Receiver not ready; drop rather than block the timer goroutine.
		// The next Push will schedule a fresh delivery.
	}
}

// Stop cancels any pending delivery.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.has = false
}
