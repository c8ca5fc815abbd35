package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/daptify14/keynav/internal/listnav"
)

// View implements tea.Model. The picker renders inline; once a choice is
// made or cancelled it renders nothing so the terminal is left clean.
func (m Model) View() tea.View {
	var v tea.View
	if m.done() {
		return v
	}

	var b strings.Builder
	b.WriteString(m.renderPrompt())
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " " + activeTheme.DimText.Render("Loading…"))
	case m.loadErr != nil:
		b.WriteString(activeTheme.DangerFg.Render("Error: " + m.loadErr.Error()))
	default:
		b.WriteString(m.renderBody())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(renderHelp(helpBindings(m.opts.Axis, m.filtering)))
	v.Content = b.String()
	return v
}

func (m Model) renderPrompt() string {
	label := activeTheme.Prompt.Render(m.opts.Prompt)
	if m.filtering {
		return label + " " + m.filterInput.View()
	}
	return label
}

// renderBody lays out the item list, with the preview pane to its right in
// files mode when the terminal is wide enough.
func (m Model) renderBody() string {
	width := m.effectiveWidth()
	if m.opts.Axis == listnav.AxisHorizontal {
		return m.renderRow(width)
	}
	if !m.opts.Files || width < previewMinWidth {
		return m.renderList(width)
	}
	previewWidth := width / 2
	listWidth := width - previewWidth - 1
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderList(listWidth),
		" ",
		m.renderPreview(previewWidth, m.listHeight()),
	)
}

// renderList renders a vertical window of items around the current index,
// padded to the list height so the layout does not jump.
func (m Model) renderList(width int) string {
	height := m.listHeight()
	if len(m.items) == 0 {
		return m.renderEmpty(height)
	}

	idx := m.nav.Snapshot().Index
	start, end := visibleRange(len(m.items), idx, height)
	lines := make([]string, 0, height)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderItem(m.items[i], i == idx, width))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderItem(item string, selected bool, width int) string {
	marker := strings.Repeat(" ", ansi.StringWidth(cursorMarker))
	if selected {
		marker = activeTheme.Cursor.Render(cursorMarker)
	}
	icon := ""
	if m.opts.Files {
		icon = renderItemIcon(item, selected, m.iconMode)
	}
	textWidth := width - ansi.StringWidth(cursorMarker) - ansi.StringWidth(icon)
	text := visualTruncate(item, textWidth)
	if selected {
		return marker + activeTheme.Selected.Render(icon+visualPad(text, textWidth))
	}
	return marker + icon + activeTheme.Normal.Render(text)
}

// renderRow renders a horizontal list on one line, showing at most Height
// items around the index with arrows marking hidden items on either side.
func (m Model) renderRow(width int) string {
	if len(m.items) == 0 {
		return m.renderEmpty(1)
	}
	idx := m.nav.Snapshot().Index
	start, end := visibleRange(len(m.items), idx, m.opts.Height)

	var b strings.Builder
	if start > 0 {
		b.WriteString(activeTheme.DimText.Render("‹ "))
	}
	for i := start; i < end; i++ {
		cell := " " + m.items[i] + " "
		if i == idx {
			b.WriteString(activeTheme.Selected.Render(cell))
		} else {
			b.WriteString(activeTheme.Normal.Render(cell))
		}
	}
	if end < len(m.items) {
		b.WriteString(activeTheme.DimText.Render(" ›"))
	}
	return visualTruncate(b.String(), width)
}

func (m Model) renderEmpty(height int) string {
	msg := "No items"
	if m.filterInput.Value() != "" {
		msg = "No matches"
	}
	lines := []string{activeTheme.DimText.Render("  " + msg)}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPreview(width, height int) string {
	var body string
	switch {
	case m.preview.loading:
		body = activeTheme.DimText.Render("Loading preview…")
	case errors.Is(m.preview.err, errBinaryFile):
		body = activeTheme.DimText.Render("binary file")
	case m.preview.err != nil:
		body = activeTheme.DangerFg.Render(m.preview.err.Error())
	case m.preview.path == "":
		body = activeTheme.DimText.Render("No preview")
	default:
		body = m.preview.content
	}

	inner := max(width-3, 1) // border + padding
	lines := strings.Split(body, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = visualTruncate(line, inner)
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return activeTheme.Preview.Render(strings.Join(lines, "\n"))
}

// renderStatus shows the position, the filter count, the pending type-ahead
// prefix and, while waiting for interaction, how to start.
func (m Model) renderStatus() string {
	snap := m.nav.Snapshot()
	total := len(m.items)

	pos := "-"
	if snap.Index >= 0 && total > 0 {
		pos = strconv.Itoa(snap.Index + 1)
	}
	parts := []string{fmt.Sprintf("%s/%d", pos, total)}
	if total != len(m.all) {
		parts = append(parts, fmt.Sprintf("(of %d)", len(m.all)))
	}
	if buf := m.nav.SearchBuffer(); buf != "" {
		parts = append(parts, activeTheme.Search.Render(buf))
	}
	if snap.Index < 0 && total > 0 {
		parts = append(parts, "press "+m.startKeyHint()+" to start")
	}
	return activeTheme.StatusBar.Render(strings.Join(parts, " "))
}

func (m Model) startKeyHint() string {
	if m.opts.Axis == listnav.AxisHorizontal {
		return "→"
	}
	return "↓"
}
