package listnav

import (
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
)

// EnterFunc is called when the commit key is pressed. element is the zero
// value of T when the list is empty.
type EnterFunc[T any] func(ev KeyEvent, element T, state State, index int)

// Options configures a Navigator. List and OnEnter are required; everything
// else has a usable zero value.
type Options[T comparable] struct {
	// List is the ordered sequence to navigate. The navigator never mutates it.
	List []T

	// OnEnter receives the commit action.
	OnEnter EnterFunc[T]

	// WaitForInteractive hides the selection (Index -1) until the first
	// movement key, which only activates the list without moving the cursor.
	WaitForInteractive bool

	// DefaultValue, when set, seeds the cursor with its position in List.
	// A value not present in List falls back to cursor 0.
	DefaultValue *T

	// Axis restricts which arrow-key pair moves the cursor. Empty means
	// vertical.
	Axis Axis

	// ExtractValue projects an element to the string type-ahead matches
	// against. Defaults to the lower-cased element for string lists and ""
	// otherwise.
	ExtractValue func(T) string

	// TypeaheadInteracts makes a type-ahead hit also mark the state
	// interactive.
	TypeaheadInteracts bool

	// TypeaheadTimeout is the idle period that clears the type-ahead buffer.
	// Defaults to DefaultTypeaheadTimeout.
	TypeaheadTimeout time.Duration

	// Source delivers key events. Defaults to DefaultSource.
	Source Source

	// Scheduler arms the type-ahead idle timer. Defaults to SystemScheduler.
	Scheduler Scheduler

	// Logger, when non-nil, receives every dispatched action at debug level.
	Logger *slog.Logger
}

// Snapshot is the consumer-facing view of a Navigator.
type Snapshot[T any] struct {
	State

	// Index is the mapped list index, or -1 while waiting for interaction.
	Index int

	// Selected is List[Index]; HasSelected is false when Index is -1 or the
	// list is empty.
	Selected    T
	HasSelected bool
}

// Navigator drives keyboard navigation over a list. All methods are safe for
// concurrent use; OnEnter is invoked without internal locks held.
type Navigator[T comparable] struct {
	mu sync.Mutex

	opts      Options[T]
	list      []T
	state     State
	extract   func(T) string
	scheduler Scheduler
	timeout   time.Duration

	source      Source
	unsubscribe func()

	search  string
	idle    Timer
	idleGen uint64

	closed bool
}

// New validates opts, seeds the initial state and subscribes to the input
// source.
func New[T comparable](opts Options[T]) (*Navigator[T], error) {
	if opts.OnEnter == nil {
		return nil, ErrNoOnEnter
	}
	axis, err := ParseAxis(string(opts.Axis))
	if err != nil {
		return nil, err
	}
	opts.Axis = axis

	n := &Navigator[T]{
		opts:      opts,
		list:      opts.List,
		extract:   opts.ExtractValue,
		scheduler: opts.Scheduler,
		timeout:   opts.TypeaheadTimeout,
	}
	if n.extract == nil {
		n.extract = defaultExtract[T]
	}
	if n.scheduler == nil {
		n.scheduler = SystemScheduler{}
	}
	if n.timeout <= 0 {
		n.timeout = DefaultTypeaheadTimeout
	}
	n.state = State{Cursor: n.defaultCursor(), Length: len(n.list)}
	n.subscribe(opts.Source)
	return n, nil
}

func defaultExtract[T any](item T) string {
	if s, ok := any(item).(string); ok {
		return strings.ToLower(s)
	}
	return ""
}

// defaultCursor returns the position of DefaultValue in the current list, or
// 0 when there is no default or it is not in the list.
func (n *Navigator[T]) defaultCursor() int {
	if n.opts.DefaultValue == nil {
		return 0
	}
	if i := slices.Index(n.list, *n.opts.DefaultValue); i >= 0 {
		return i
	}
	return 0
}

func (n *Navigator[T]) subscribe(src Source) {
	if src == nil {
		src = DefaultSource
	}
	n.source = src
	n.unsubscribe = src.Subscribe(EventKeyDown, n.handleKey)
}

// SetSource moves the key subscription to src. A nil src selects
// DefaultSource.
func (n *Navigator[T]) SetSource(src Source) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	if n.unsubscribe != nil {
		n.unsubscribe()
	}
	n.subscribe(src)
}

// SetList replaces the observed list. A change in length resets navigation;
// content changes at a constant length do not.
func (n *Navigator[T]) SetList(list []T) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.list = list
	if len(list) != n.state.Length {
		n.dispatch(ResetAction{Cursor: n.defaultCursor(), Length: len(list)})
	}
}

// Reset returns the cursor to its default and clears Interactive.
func (n *Navigator[T]) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.dispatch(ResetAction{Cursor: n.defaultCursor(), Length: len(n.list)})
}

// Set applies a partial cursor/interactive update, for example to follow a
// pointer hover.
func (n *Navigator[T]) Set(a SetAction) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.dispatch(a)
}

// Snapshot returns the current state with the derived index and selection.
func (n *Navigator[T]) Snapshot() Snapshot[T] {
	n.mu.Lock()
	defer n.mu.Unlock()
	snap := Snapshot[T]{State: n.state, Index: n.index()}
	if snap.Index >= 0 && snap.Index < len(n.list) {
		snap.Selected = n.list[snap.Index]
		snap.HasSelected = true
	}
	return snap
}

// Axis returns the normalized movement axis.
func (n *Navigator[T]) Axis() Axis {
	return n.opts.Axis
}

// SearchBuffer returns the pending type-ahead prefix.
func (n *Navigator[T]) SearchBuffer() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.search
}

// Close unsubscribes from the input source and cancels the idle timer.
// Further key events and timer expiries are ignored.
func (n *Navigator[T]) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	if n.unsubscribe != nil {
		n.unsubscribe()
		n.unsubscribe = nil
	}
	if n.idle != nil {
		n.idle.Stop()
		n.idle = nil
	}
	n.search = ""
}

func (n *Navigator[T]) gated() bool {
	return n.opts.WaitForInteractive && !n.state.Interactive
}

func (n *Navigator[T]) index() int {
	if n.gated() {
		return -1
	}
	return MapIndex(n.state.Cursor, len(n.list))
}

func (n *Navigator[T]) dispatch(a Action) {
	n.state = Reduce(n.state, a)
	if n.opts.Logger != nil {
		n.opts.Logger.Debug("listnav action",
			"action", actionName(a),
			"cursor", n.state.Cursor,
			"length", n.state.Length,
			"interactive", n.state.Interactive,
		)
	}
}

// handleKey is the subscribed key handler.
func (n *Navigator[T]) handleKey(ev KeyEvent) {
	n.mu.Lock()
	commit := n.handleKeyLocked(ev)
	n.mu.Unlock()

	if commit != nil {
		commit()
	}
}

// handleKeyLocked applies ev to the state and returns the commit call to
// run once the lock is released, if any.
func (n *Navigator[T]) handleKeyLocked(ev KeyEvent) func() {
	if n.closed {
		return nil
	}
	key := ev.Key()

	if dir := n.opts.Axis.direction(key); dir != 0 {
		ev.PreventDefault()
		switch {
		case n.gated():
			n.dispatch(InteractAction{})
		case dir < 0:
			n.dispatch(PrevAction{})
		default:
			n.dispatch(NextAction{})
		}
		return nil
	}

	switch key {
	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
		// Unbound axis.
		return nil
	case KeyEnter:
		if n.gated() {
			return nil
		}
		index := MapIndex(n.state.Cursor, len(n.list))
		var element T
		if index < len(n.list) {
			element = n.list[index]
		}
		state, onEnter := n.state, n.opts.OnEnter
		return func() { onEnter(ev, element, state, index) }
	case KeyHome:
		n.dispatch(FirstAction{})
	case KeyEnd:
		n.dispatch(LastAction{})
	default:
		if c, ok := typeaheadChar(key); ok {
			n.typeahead(c)
		}
	}
	return nil
}

// typeahead extends the search buffer with c, jumps to the first element in
// list order whose projection has the buffer as a prefix, and re-arms the
// idle timer.
func (n *Navigator[T]) typeahead(c byte) {
	n.search += string(c)
	for i, item := range n.list {
		if !strings.HasPrefix(strings.ToLower(n.extract(item)), n.search) {
			continue
		}
		a := SetCursor(i)
		if n.opts.TypeaheadInteracts {
			a = a.WithInteractive(true)
		}
		n.dispatch(a)
		break
	}
	n.armIdle()
}

func (n *Navigator[T]) armIdle() {
	if n.idle != nil {
		n.idle.Stop()
	}
	n.idleGen++
	gen := n.idleGen
	n.idle = n.scheduler.AfterFunc(n.timeout, func() { n.expireSearch(gen) })
}

// expireSearch clears the buffer if gen is still the armed timer. A timer
// whose Stop lost the race with its own firing carries an old gen.
func (n *Navigator[T]) expireSearch(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed || gen != n.idleGen {
		return
	}
	n.search = ""
	n.idle = nil
}
