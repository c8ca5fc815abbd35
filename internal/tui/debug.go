package tui

import (
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
)

// logMsg logs a tea.Msg to the debug logger if one is configured.
// Spinner ticks are dropped to reduce noise.
func (m Model) logMsg(msg tea.Msg) {
	if m.debugLog == nil {
		return
	}
	if _, ok := msg.(spinner.TickMsg); ok {
		return
	}
	m.debugLog.Info("msg",
		"type", fmt.Sprintf("%T", msg),
		"detail", formatMsgDetail(msg),
	)
}

// formatMsgDetail extracts key fields from known message types for readable
// log output. Unknown types log their type name only, never %#v, which can
// leak secrets (tea.EnvMsg carries the full environment).
func formatMsgDetail(msg tea.Msg) string {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return fmt.Sprintf("%s key=%s", msg.String(), translateKey(msg))
	case tea.WindowSizeMsg:
		return fmt.Sprintf("%dx%d", msg.Width, msg.Height)
	case tea.BackgroundColorMsg:
		return fmt.Sprintf("dark=%t", msg.IsDark())
	case itemsLoadedMsg:
		return withErr(msg.err, fmt.Sprintf("items=%d", len(msg.items)))
	case typeaheadIdleMsg:
		return fmt.Sprintf("timer=%d", msg.id)
	case previewLoadedMsg:
		return withErr(msg.err, fmt.Sprintf("gen=%d path=%q", msg.gen, msg.path))
	default:
		return ""
	}
}

func withErr(err error, detail string) string {
	if err != nil {
		return fmt.Sprintf("%s err=%q", detail, err.Error())
	}
	return detail
}
