package listnav

import (
	"testing"
	"time"
)

// ── Fakes ───────────────────────────────────────────────────────────

type testKey struct {
	key       string
	prevented bool
}

func (k *testKey) Key() string     { return k.key }
func (k *testKey) PreventDefault() { k.prevented = true }

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler records timers; fire runs every timer still pending.
type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (s *fakeScheduler) fire() {
	for _, t := range s.timers {
		if t.stopped || t.fired {
			continue
		}
		t.fired = true
		t.f()
	}
}

// ── Builders ────────────────────────────────────────────────────────

var fruits = []string{"first", "second", "third", "fourth"}

type commit struct {
	element string
	state   State
	index   int
}

type harness struct {
	nav     *Navigator[string]
	bus     *Bus
	sched   *fakeScheduler
	commits []commit
}

// newHarness builds a navigator on a private bus. opts.OnEnter, Source and
// Scheduler are filled in unless already set.
func newHarness(t *testing.T, opts Options[string]) *harness {
	t.Helper()
	h := &harness{bus: NewBus(), sched: &fakeScheduler{}}
	if opts.List == nil {
		opts.List = fruits
	}
	if opts.OnEnter == nil {
		opts.OnEnter = func(_ KeyEvent, element string, state State, index int) {
			h.commits = append(h.commits, commit{element: element, state: state, index: index})
		}
	}
	if opts.Source == nil {
		opts.Source = h.bus
	}
	if opts.Scheduler == nil {
		opts.Scheduler = h.sched
	}
	nav, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(nav.Close)
	h.nav = nav
	return h
}

func (h *harness) press(keys ...string) *testKey {
	var last *testKey
	for _, k := range keys {
		last = &testKey{key: k}
		h.bus.Emit(EventKeyDown, last)
	}
	return last
}

func assertSnapshot(t *testing.T, snap Snapshot[string], cursor, index int, selected string) {
	t.Helper()
	if snap.Cursor != cursor {
		t.Fatalf("expected cursor %d, got %d", cursor, snap.Cursor)
	}
	if snap.Index != index {
		t.Fatalf("expected index %d, got %d", index, snap.Index)
	}
	if selected == "" {
		if snap.HasSelected {
			t.Fatalf("expected no selection, got %q", snap.Selected)
		}
		return
	}
	if !snap.HasSelected || snap.Selected != selected {
		t.Fatalf("expected selected %q, got %q (has=%v)", selected, snap.Selected, snap.HasSelected)
	}
}
