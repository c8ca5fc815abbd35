package tui

import (
	"log/slog"
	"time"

	"github.com/daptify14/keynav/internal/listnav"
)

// Options configures the picker model.
type Options struct {
	// Items is the list to pick from. Ignored when Load is set.
	Items []string

	// Load, when non-nil, produces the items asynchronously. A spinner is
	// shown until it returns.
	Load func() ([]string, error)

	// Prompt is the label rendered before the filter query.
	Prompt string

	// Axis selects the arrow keys that move the cursor. Horizontal lists are
	// rendered on a single row.
	Axis listnav.Axis

	// WaitForInteractive hides the selection until the first movement key.
	WaitForInteractive bool

	// Default, when non-nil, seeds the cursor with its position in the list.
	Default *string

	// TypeaheadTimeout is the idle period that clears the type-ahead buffer.
	TypeaheadTimeout time.Duration

	// TypeaheadInteracts makes a type-ahead hit activate a waiting list.
	TypeaheadInteracts bool

	// Height is the number of visible rows (or columns for a horizontal list).
	Height int

	// Files enables path icons and the file preview pane. Items are paths
	// relative to Root.
	Files bool
	Root  string

	// IconMode controls which icon set to display in files mode.
	// Valid values: IconModeNerdFont (default), IconModeUnicode, IconModeNone.
	IconMode IconMode

	// DebugLog, when non-nil, receives structured JSON logs of every tea.Msg
	// processed by Update() and every navigation action. Set via the
	// KEYNAV_DEBUG environment variable.
	DebugLog *slog.Logger
}
