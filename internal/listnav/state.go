package listnav

import "fmt"

// State is the navigation state. Cursor is unbounded; only MapIndex(Cursor,
// Length) is a valid list index.
type State struct {
	Cursor      int
	Length      int
	Interactive bool
}

// Action is a navigation transition. The set of actions is closed; Reduce
// handles every variant.
type Action interface {
	action()
}

// ResetAction returns the cursor to its default and clears Interactive.
// Length carries the list size observed at the time of the reset.
type ResetAction struct {
	Cursor int
	Length int
}

// InteractAction marks the state interactive without moving the cursor.
type InteractAction struct{}

// PrevAction moves the cursor back by one.
type PrevAction struct{}

// NextAction moves the cursor forward by one.
type NextAction struct{}

// FirstAction jumps to the first element.
type FirstAction struct{}

// LastAction jumps to the last element.
type LastAction struct{}

// SetAction overwrites only the fields that are non-nil.
type SetAction struct {
	Cursor      *int
	Interactive *bool
}

func (ResetAction) action()    {}
func (InteractAction) action() {}
func (PrevAction) action()     {}
func (NextAction) action()     {}
func (FirstAction) action()    {}
func (LastAction) action()     {}
func (SetAction) action()      {}

// SetCursor builds a SetAction that only moves the cursor.
func SetCursor(cursor int) SetAction {
	return SetAction{Cursor: &cursor}
}

// SetInteractive builds a SetAction that only changes Interactive.
func SetInteractive(interactive bool) SetAction {
	return SetAction{Interactive: &interactive}
}

// WithCursor returns a copy of a that also sets the cursor.
func (a SetAction) WithCursor(cursor int) SetAction {
	a.Cursor = &cursor
	return a
}

// WithInteractive returns a copy of a that also sets Interactive.
func (a SetAction) WithInteractive(interactive bool) SetAction {
	a.Interactive = &interactive
	return a
}

// Reduce returns the state that results from applying a to s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ResetAction:
		s.Cursor = a.Cursor
		s.Length = max(0, a.Length)
		s.Interactive = false
	case InteractAction:
		s.Interactive = true
	case PrevAction:
		s.Cursor--
		s.Interactive = true
	case NextAction:
		s.Cursor++
		s.Interactive = true
	case FirstAction:
		s.Cursor = 0
		s.Interactive = true
	case LastAction:
		s.Cursor = s.Length - 1
		s.Interactive = true
	case SetAction:
		if a.Cursor != nil {
			s.Cursor = *a.Cursor
		}
		if a.Interactive != nil {
			s.Interactive = *a.Interactive
		}
	}
	return s
}

// actionName returns a short label for logging.
func actionName(a Action) string {
	switch a := a.(type) {
	case ResetAction:
		return fmt.Sprintf("reset cursor=%d length=%d", a.Cursor, a.Length)
	case InteractAction:
		return "interact"
	case PrevAction:
		return "prev"
	case NextAction:
		return "next"
	case FirstAction:
		return "first"
	case LastAction:
		return "last"
	case SetAction:
		s := "set"
		if a.Cursor != nil {
			s += fmt.Sprintf(" cursor=%d", *a.Cursor)
		}
		if a.Interactive != nil {
			s += fmt.Sprintf(" interactive=%t", *a.Interactive)
		}
		return s
	default:
		return fmt.Sprintf("%T", a)
	}
}
