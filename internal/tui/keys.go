package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/daptify14/keynav/internal/listnav"
)

// PickerKeyMap holds the bindings the picker routes on or advertises in its
// help line. Letters and digits are reserved for type-ahead.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Home   key.Binding
	End    key.Binding
	Enter  key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "Down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "Prev"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "Next"),
	),
	Home: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("Home/End", "Jump"),
	),
	End: key.NewBinding(
		key.WithKeys("end"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "Filter"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "Quit"),
	),
}

// helpBindings returns the bindings shown in the help line for the given
// axis. While filtering, esc clears the filter instead of cancelling.
func helpBindings(axis listnav.Axis, filtering bool) []key.Binding {
	var out []key.Binding
	switch axis {
	case listnav.AxisHorizontal:
		out = append(out, PickerKeys.Left, PickerKeys.Right)
	case listnav.AxisBoth:
		out = append(out, PickerKeys.Up, PickerKeys.Down, PickerKeys.Left, PickerKeys.Right)
	default:
		out = append(out, PickerKeys.Up, PickerKeys.Down)
	}
	out = append(out, PickerKeys.Home, PickerKeys.Enter)
	if filtering {
		back := PickerKeys.Back
		back.SetHelp("esc", "Clear filter")
		return append(out, back)
	}
	return append(out, PickerKeys.Filter, PickerKeys.Back)
}
