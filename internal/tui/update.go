package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"

	"github.com/daptify14/keynav/internal/listnav"
)

// itemsLoadedMsg carries the result of Options.Load.
type itemsLoadedMsg struct {
	items []string
	err   error
}

func (m Model) loadItemsCmd() tea.Cmd {
	load := m.opts.Load
	return func() tea.Msg {
		items, err := load()
		return itemsLoadedMsg{items: items, err: err}
	}
}

// Update implements tea.Model by dispatching messages to the appropriate handler.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.logMsg(msg)

	switch msg := msg.(type) {
	case tea.BackgroundColorMsg:
		SetTheme(ThemeForBackground(msg.IsDark()))
		m.restyleFilterInputForTheme()
		return m, m.previewCmd()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filterInput.SetWidth(max(10, m.effectiveWidth()-len(m.opts.Prompt)-4))
		return m, nil
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case itemsLoadedMsg:
		return m.handleItemsLoaded(msg)
	case typeaheadIdleMsg:
		m.sched.fire(msg.id)
		return m, nil
	case previewLoadedMsg:
		return m.handlePreviewLoaded(msg)
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleItemsLoaded(msg itemsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.loadErr = msg.err
		return m, nil
	}
	m.all = msg.items
	m.applyFilter()
	return m, m.previewCmd()
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, PickerKeys.Quit) {
		return m.abort()
	}
	if m.loading || m.loadErr != nil {
		if key.Matches(msg, PickerKeys.Back) {
			return m.abort()
		}
		return m, nil
	}
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, PickerKeys.Back):
		return m.abort()
	case key.Matches(msg, PickerKeys.Filter):
		m.filtering = true
		cmd := m.filterInput.Focus()
		return m, cmd
	}

	m.emit(msg)
	return m.afterNavigation()
}

// handleFilterKey routes a key while the filter input is focused. Text goes
// to the input and re-filters; every other key reaches the navigator first
// and falls through to the input only when the navigator leaves it alone.
func (m Model) handleFilterKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, PickerKeys.Back) {
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.applyFilter()
		return m.afterNavigation()
	}

	var cmd tea.Cmd
	if !isTextKey(msg) {
		ev := m.emit(msg)
		if ev.prevented || navigatorOwns(ev.key) || m.done() {
			return m.afterNavigation()
		}
	}

	before := m.filterInput.Value()
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.filterInput.Value() != before {
		m.applyFilter()
	}
	next, navCmd := m.afterNavigation()
	return next, tea.Batch(cmd, navCmd)
}

// emit publishes msg on the model's key bus and returns the delivered event.
func (m Model) emit(msg tea.KeyPressMsg) *keyEvent {
	ev := &keyEvent{key: translateKey(msg)}
	m.bus.Emit(listnav.EventKeyDown, ev)
	return ev
}

// afterNavigation quits once an item was committed, otherwise hands queued
// timer ticks and any preview load to bubbletea.
func (m Model) afterNavigation() (tea.Model, tea.Cmd) {
	if m.result.Chosen {
		m.nav.Close()
		return m, tea.Quit
	}
	return m, tea.Batch(m.sched.drain(), m.previewCmd())
}

func (m Model) abort() (tea.Model, tea.Cmd) {
	m.result.Aborted = true
	m.nav.Close()
	return m, tea.Quit
}

// applyFilter narrows the full item list to the fuzzy matches of the filter
// query, best match first, and hands the result to the navigator. A change
// in the number of matches resets navigation.
func (m *Model) applyFilter() {
	query := strings.TrimSpace(m.filterInput.Value())
	if query == "" {
		m.items = m.all
	} else {
		matches := fuzzy.Find(query, m.all)
		items := make([]string, len(matches))
		for i, match := range matches {
			items[i] = match.Str
		}
		m.items = items
	}
	m.nav.SetList(m.items)
}
