package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/daptify14/keynav/internal/listnav"
)

// typeaheadIdleMsg fires when a type-ahead idle timer expires.
type typeaheadIdleMsg struct {
	id uint64
}

// tickScheduler runs navigator timers through tea.Tick so that expiry is
// delivered as a message and handled on the Update goroutine. Each armed
// timer gets an id; a tick whose id is no longer pending is stale.
type tickScheduler struct {
	next    uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{pending: make(map[uint64]func())}
}

// AfterFunc implements listnav.Scheduler. The tick command is queued and
// handed to bubbletea by the next drain.
func (s *tickScheduler) AfterFunc(d time.Duration, f func()) listnav.Timer {
	s.next++
	id := s.next
	s.pending[id] = f
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return typeaheadIdleMsg{id: id}
	}))
	return tickTimer{s: s, id: id}
}

// fire runs the callback for id unless it was stopped or already fired.
func (s *tickScheduler) fire(id uint64) bool {
	f, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	f()
	return true
}

// drain returns the queued tick commands as one batch, or nil.
func (s *tickScheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

type tickTimer struct {
	s  *tickScheduler
	id uint64
}

func (t tickTimer) Stop() bool {
	_, ok := t.s.pending[t.id]
	delete(t.s.pending, t.id)
	return ok
}
