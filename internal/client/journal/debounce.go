package journal

import (
	"sync"
	"time"
)

// DefaultAutosyncDelay is how long after the last local mutation a sync pass
// is kicked off. Rapid consecutive edits collapse into a single pass.
const DefaultAutosyncDelay = 2 * time.Second

// Debouncer coalesces bursts of triggers into one deferred call: each Trigger
// cancels the previously scheduled call and arms a new one at a fixed delay.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
	fn    func()
}

// NewDebouncer creates a debouncer that invokes fn delay after the most
// recent Trigger.
func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		delay: delay,
		fn:    fn,
	}
}

// Trigger schedules fn, cancelling any previously scheduled call.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

// Stop cancels any scheduled call. A call already started keeps running.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Flush runs fn synchronously if a call is scheduled, instead of waiting out
// the delay. No-op when nothing is pending.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	pending := d.timer != nil
	if pending {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	if pending {
		d.fn()
	}
}
