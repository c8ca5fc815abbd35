package tui

import (
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"github.com/daptify14/keynav/internal/listnav"
)

// keyEvent adapts a key press to the navigator's event interface.
type keyEvent struct {
	key       string
	prevented bool
}

func (e *keyEvent) Key() string     { return e.key }
func (e *keyEvent) PreventDefault() { e.prevented = true }

// translateKey maps a key press to the navigator's key identifier. Named
// keys become ArrowUp, Enter and so on; a single unmodified rune is passed
// through as typed; anything else keeps bubbletea's string form, which the
// navigator ignores.
func translateKey(msg tea.KeyPressMsg) string {
	switch msg.Code {
	case tea.KeyUp:
		return listnav.KeyArrowUp
	case tea.KeyDown:
		return listnav.KeyArrowDown
	case tea.KeyLeft:
		return listnav.KeyArrowLeft
	case tea.KeyRight:
		return listnav.KeyArrowRight
	case tea.KeyEnter:
		return listnav.KeyEnter
	case tea.KeyHome:
		return listnav.KeyHome
	case tea.KeyEnd:
		return listnav.KeyEnd
	}
	if isTextKey(msg) {
		return msg.Text
	}
	return msg.String()
}

// isTextKey reports whether msg types exactly one printable rune with no
// ctrl or alt modifier.
func isTextKey(msg tea.KeyPressMsg) bool {
	if msg.Mod.Contains(tea.ModCtrl) || msg.Mod.Contains(tea.ModAlt) {
		return false
	}
	return msg.Text != "" && utf8.RuneCountInString(msg.Text) == 1
}

// navigatorOwns reports whether the navigator acts on key even though it
// does not prevent the default. Such keys are not forwarded to the filter
// input.
func navigatorOwns(key string) bool {
	switch key {
	case listnav.KeyEnter, listnav.KeyHome, listnav.KeyEnd:
		return true
	}
	return false
}
