package engine

import (
	"sync"
	"time"

	"github.com/tilekit/tilekit/pkg/observability"
)

// DefaultDebounceInterval is the quiet period after the last settings change
// before a single coalesced retile runs.
const DefaultDebounceInterval = 250 * time.Millisecond

// debouncer coalesces bursts of settings changes into one deferred call.
// Each Schedule restarts the quiet-interval timer; when it fires, fn runs
// once with the number of coalesced changes. Restarting is the cancellation
// mechanism; there is no explicit cancel.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
	pending  int
	fn       func(coalesced int)
}

func newDebouncer(interval time.Duration, fn func(coalesced int)) *debouncer {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}
	return &debouncer{interval: interval, fn: fn}
}

// Schedule records one settings change and restarts the quiet interval.
func (d *debouncer) Schedule() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending++
	observability.Engine().OnDebounceScheduled()
	if d.timer == nil {
		d.timer = time.AfterFunc(d.interval, d.fire)
		return
	}
	d.timer.Reset(d.interval)
}

func (d *debouncer) fire() {
	d.mu.Lock()
	n := d.pending
	d.pending = 0
	d.timer = nil
	d.mu.Unlock()

	if n == 0 {
		return
	}
	observability.Engine().OnDebounceFired(n)
	d.fn(n)
}

// Flush runs any pending call immediately. Test helper; the production path
// always goes through the timer.
func (d *debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	d.fire()
}
