package listnav

import "time"

// DefaultTypeaheadTimeout is the idle period after which the type-ahead
// buffer is cleared.
const DefaultTypeaheadTimeout = 1000 * time.Millisecond

// Timer is a pending single-shot callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer before it fired.
	Stop() bool
}

// Scheduler arms single-shot callbacks.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemScheduler schedules callbacks with time.AfterFunc. Callbacks run on
// their own goroutine.
type SystemScheduler struct{}

// AfterFunc implements Scheduler.
func (SystemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
