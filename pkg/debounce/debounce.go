// Package debounce provides a single-slot trailing-edge timer: scheduling a
// call cancels any pending call and arms a new one, so a burst of triggers
// collapses into exactly one deferred invocation after the burst settles.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the idle window used by the change watcher.
const DefaultWindow = 300 * time.Millisecond

// Debouncer holds at most one pending call.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New returns a Debouncer with the given idle window. Non-positive delays
// fall back to DefaultWindow.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultWindow
	}
	return &Debouncer{delay: delay}
}

// Schedule arms fn to run after the idle window, cancelling any previously
// pending call. Only the last scheduled fn of a burst runs.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
