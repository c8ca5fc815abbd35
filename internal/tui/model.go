package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/daptify14/keynav/internal/listnav"
)

const (
	defaultHeight = 10
	defaultWidth  = 80
	defaultPrompt = "Select"
)

// Result is the outcome of a picker session.
type Result struct {
	// Value is the committed item.
	Value string
	// Index is the position of Value in the list shown at commit time,
	// which is the filtered list when a filter was active.
	Index int
	// Chosen is true once an item was committed.
	Chosen bool
	// Aborted is true when the user cancelled.
	Aborted bool
}

// Model is a bubbletea picker that hosts a keyboard navigator. Navigation
// state lives behind pointers so that copies of the model made by
// bubbletea share it.
type Model struct {
	opts Options

	nav    *listnav.Navigator[string]
	bus    *listnav.Bus
	sched  *tickScheduler
	result *Result

	all   []string // unfiltered items
	items []string // items currently given to the navigator

	filterInput textinput.Model
	filtering   bool

	loading bool
	loadErr error
	spinner spinner.Model

	preview *previewState

	iconMode IconMode

	width  int
	height int

	debugLog *slog.Logger
}

func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "/"
	s := ti.Styles()
	s.Focused.Prompt = activeTheme.PrimaryFg
	s.Blurred.Prompt = activeTheme.PrimaryFg
	ti.SetStyles(s)
	ti.CharLimit = 120
	ti.SetWidth(40)
	return ti
}

// NewModel creates a picker model. It fails when the navigator options are
// invalid.
func NewModel(opts Options) (Model, error) {
	if opts.Prompt == "" {
		opts.Prompt = defaultPrompt
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	iconMode := opts.IconMode
	if iconMode == "" {
		iconMode = IconModeNerdFont
	}

	m := Model{
		opts:        opts,
		bus:         listnav.NewBus(),
		sched:       newTickScheduler(),
		result:      &Result{Index: -1},
		preview:     &previewState{},
		filterInput: newFilterInput(),
		loading:     opts.Load != nil,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		iconMode:    iconMode,
		debugLog:    opts.DebugLog,
	}
	if !m.loading {
		m.all = opts.Items
		m.items = opts.Items
	}

	result := m.result
	nav, err := listnav.New(listnav.Options[string]{
		List: m.items,
		OnEnter: func(_ listnav.KeyEvent, element string, state listnav.State, index int) {
			if state.Length == 0 {
				return
			}
			*result = Result{Value: element, Index: index, Chosen: true}
		},
		WaitForInteractive: opts.WaitForInteractive,
		DefaultValue:       opts.Default,
		Axis:               opts.Axis,
		TypeaheadInteracts: opts.TypeaheadInteracts,
		TypeaheadTimeout:   opts.TypeaheadTimeout,
		Source:             m.bus,
		Scheduler:          m.sched,
		Logger:             opts.DebugLog,
	})
	if err != nil {
		return Model{}, err
	}
	m.nav = nav
	m.opts.Axis = nav.Axis()
	return m, nil
}

// Init implements tea.Model by returning the initial command batch.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.RequestBackgroundColor}
	if m.loading {
		cmds = append(cmds, m.spinner.Tick, m.loadItemsCmd())
	} else if cmd := m.previewCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Result returns the outcome of the session.
func (m Model) Result() Result {
	return *m.result
}

// Close releases the navigator's subscription and timer.
func (m Model) Close() {
	m.nav.Close()
}

func (m Model) done() bool {
	return m.result.Chosen || m.result.Aborted
}

// restyleFilterInputForTheme updates the filter input prompt styles to match
// the current activeTheme without resetting its value, focus, or cursor state.
func (m *Model) restyleFilterInputForTheme() {
	s := m.filterInput.Styles()
	s.Focused.Prompt = activeTheme.PrimaryFg
	s.Blurred.Prompt = activeTheme.PrimaryFg
	m.filterInput.SetStyles(s)
}

func (m Model) effectiveWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

// listHeight is the number of item rows that fit: the configured height,
// capped by the terminal height minus the prompt, status and help lines.
func (m Model) listHeight() int {
	h := m.opts.Height
	if m.height > 0 {
		h = min(h, m.height-3)
	}
	return max(h, 1)
}
