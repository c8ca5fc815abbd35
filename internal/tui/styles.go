package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
)

const (
	cursorMarker = "› "
	helpSep      = "  "
)

// renderHelp renders the enabled bindings as "key desc" pairs.
func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, activeTheme.HintText.Render(h.Key)+" "+activeTheme.DimText.Render(h.Desc))
	}
	return strings.Join(parts, helpSep)
}
