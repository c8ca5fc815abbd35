package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func visualTruncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "…")
}

func visualPad(s string, targetWidth int) string {
	w := ansi.StringWidth(s)
	if w >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-w)
}

// visibleRange returns the half-open window [start, end) of size at most
// height that keeps cursor roughly centred. Wrapping from the last item to
// the first therefore scrolls the window back to the top.
func visibleRange(total, cursor, height int) (int, int) {
	if height <= 0 || total <= 0 {
		return 0, 0
	}
	if total <= height {
		return 0, total
	}
	cursor = min(max(cursor, 0), total-1)
	start := min(max(cursor-height/2, 0), total-height)
	return start, start + height
}
