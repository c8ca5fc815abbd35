package tui

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
)

const (
	previewMaxBytes = 16 * 1024
	previewMaxLines = 200
	previewMinWidth = 90
)

var errBinaryFile = errors.New("binary file")

// previewState tracks the file shown in the preview pane. gen increments on
// every request so a slow load for a previous selection is dropped.
type previewState struct {
	gen     uint64
	path    string
	content string
	err     error
	loading bool
}

type previewLoadedMsg struct {
	gen     uint64
	path    string
	content string
	err     error
}

// previewCmd requests a preview of the current selection if it changed.
// Directories and an empty selection clear the pane.
func (m Model) previewCmd() tea.Cmd {
	if !m.opts.Files {
		return nil
	}
	snap := m.nav.Snapshot()
	if !snap.HasSelected || isDirItem(snap.Selected) {
		if m.preview.path != "" {
			*m.preview = previewState{gen: m.preview.gen + 1}
		}
		return nil
	}
	if snap.Selected == m.preview.path {
		return nil
	}

	m.preview.gen++
	m.preview.path = snap.Selected
	m.preview.content = ""
	m.preview.err = nil
	m.preview.loading = true

	gen := m.preview.gen
	rel := snap.Selected
	full := filepath.Join(m.opts.Root, filepath.FromSlash(rel))
	return func() tea.Msg {
		content, err := readPreview(full)
		return previewLoadedMsg{gen: gen, path: rel, content: content, err: err}
	}
}

func (m Model) handlePreviewLoaded(msg previewLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.preview.gen {
		return m, nil
	}
	m.preview.loading = false
	m.preview.err = msg.err
	if msg.err == nil {
		m.preview.content = highlightCode(msg.content, msg.path)
	}
	return m, nil
}

// readPreview returns the head of a file: at most previewMaxBytes and
// previewMaxLines. Content containing a NUL byte is reported as binary.
func readPreview(path string) (string, error) {
	f, err := os.Open(path) //#nosec G304 -- path comes from the user's own directory walk
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, previewMaxBytes))
	if err != nil {
		return "", err
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return "", errBinaryFile
	}

	lines := strings.SplitAfter(string(data), "\n")
	if len(lines) > previewMaxLines {
		lines = lines[:previewMaxLines]
	}
	return strings.TrimRight(strings.Join(lines, ""), "\n"), nil
}
