package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// ── Model Builder ───────────────────────────────────────────────────

var testFruits = []string{"apple", "banana", "cherry", "blueberry"}

// newTestModel builds a sized picker over opts. Items default to testFruits
// unless Load is set; icons are off unless opts asks for them.
func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Items == nil && opts.Load == nil {
		opts.Items = testFruits
	}
	if opts.IconMode == "" {
		opts.IconMode = IconModeNone
	}
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	t.Cleanup(m.Close)
	m.width = 120
	m.height = 40
	return m
}

// ── Key Factories ───────────────────────────────────────────────────

// runeKey creates a tea.KeyPressMsg for a rune string (e.g., "j", "?", "G").
func runeKey(r string) tea.KeyPressMsg {
	runes := []rune(r)
	return tea.KeyPressMsg{Code: runes[0], Text: r}
}

// specialKey creates a tea.KeyPressMsg for a special key code (e.g., tea.KeyEsc).
func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// ctrlKey creates a tea.KeyPressMsg for a ctrl+key combo (e.g., ctrlKey('c') for ctrl+c).
func ctrlKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Mod: tea.ModCtrl}
}

// ── Dispatch Helpers ────────────────────────────────────────────────

// sendKey dispatches a tea.KeyPressMsg through Model.Update and asserts the
// returned value is a Model.
func sendKey(t *testing.T, m Model, key tea.KeyPressMsg) (Model, tea.Cmd) {
	t.Helper()
	result, cmd := m.Update(key)
	updated, ok := result.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want tui.Model", result)
	}
	return updated, cmd
}

// sendKeys dispatches keys in order and returns the final model and command.
func sendKeys(t *testing.T, m Model, keys ...tea.KeyPressMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = sendKey(t, m, k)
	}
	return m, cmd
}

// typeText sends each rune of s as a separate key press.
func typeText(t *testing.T, m Model, s string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, r := range s {
		m, cmd = sendKey(t, m, runeKey(string(r)))
	}
	return m, cmd
}

// sendMsg dispatches any tea.Msg through Model.Update and asserts the
// returned value is a Model.
func sendMsg(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	result, cmd := m.Update(msg)
	updated, ok := result.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want tui.Model", result)
	}
	return updated, cmd
}

// ── Assertion Helpers ───────────────────────────────────────────────

// isQuitCmd checks whether a tea.Cmd produces a tea.QuitMsg.
func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	msg := cmd()
	_, ok := msg.(tea.QuitMsg)
	return ok
}

// assertSelected checks the navigator's current selection.
func assertSelected(t *testing.T, m Model, want string) {
	t.Helper()
	snap := m.nav.Snapshot()
	if !snap.HasSelected {
		t.Fatalf("expected %q selected, got no selection (index %d)", want, snap.Index)
	}
	if snap.Selected != want {
		t.Fatalf("selected = %q, want %q", snap.Selected, want)
	}
}

// assertRenderedLinesFitWidth checks that no ANSI-aware line exceeds width.
func assertRenderedLinesFitWidth(t *testing.T, output string, width int) {
	t.Helper()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	for i, line := range lines {
		if got := ansi.StringWidth(line); got > width {
			t.Fatalf("line %d width=%d exceeds maxWidth=%d: %q", i+1, got, width, line)
		}
	}
}

// renderPlain returns the view content with ANSI codes removed.
func renderPlain(m Model) string {
	return ansi.Strip(m.View().Content)
}
