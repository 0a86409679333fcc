package worker

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid successive submissions: a submission
// replaces any still-pending one and restarts the quiet window, so
// only the last submission inside the window actually runs.
// Superseded work is discarded before it starts, never cancelled
// mid-run.
type Debouncer struct {
	mu      sync.Mutex
	quiet   time.Duration
	timer   *time.Timer
	pending func()
	busy    sync.WaitGroup
}

// NewDebouncer creates a debouncer with the given quiet window.
func NewDebouncer(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = 500 * time.Millisecond
	}
	return &Debouncer{quiet: quiet}
}

// Submit schedules fn to run after the quiet window, dropping any
// previously pending submission.
func (d *Debouncer) Submit(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	if d.pending == nil {
		d.busy.Add(1)
	}
	d.pending = fn
	d.timer = time.AfterFunc(d.quiet, d.fire)
}

// Flush runs the pending submission immediately, if any.
func (d *Debouncer) Flush() {
	d.fire()
}

// Stop discards the pending submission without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.pending != nil {
		d.pending = nil
		d.busy.Done()
	}
}

// Drain blocks until no submission is pending or running. Callers
// flush or stop first; Drain alone would wait out the quiet window.
func (d *Debouncer) Drain() {
	d.busy.Wait()
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	if fn != nil {
		defer d.busy.Done()
		fn()
	}
}
