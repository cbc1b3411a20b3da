// Package tui implements the interactive terminal frontend: a search prompt,
// a result list, a title detail pane, and the cross-country offer comparison.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/EdoardoGruppi/Watch-Movies/internal/domain"
	"github.com/EdoardoGruppi/Watch-Movies/internal/service"
	"github.com/EdoardoGruppi/Watch-Movies/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateSearch ApplicationState = iota
	StateResults
	StateDetails
	StateOffers
	StateHelp
)

// Model is the main Bubble Tea model for the application
type Model struct {
	state ApplicationState
	keys  KeyMap

	// Services and query defaults
	svc       *service.CatalogService
	countries []string // comparison country set
	country   string   // default search country
	language  string

	// Layout
	width  int
	height int

	// Components
	input       textinput.Model
	filterInput textinput.Model
	spin        spinner.Model

	// Data
	query     string
	results   []domain.MediaEntry
	index     *resultIndex
	visible   []domain.MediaEntry
	cursor    int
	filtering bool

	selected    *domain.MediaEntry
	rows        []service.ComparisonRow
	services    []string
	offerCursor int // first visible row in the comparison view

	loading bool
	err     error
}

// NewModel creates the application model
func NewModel(svc *service.CatalogService, countries []string, country, language string) Model {
	input := textinput.New()
	input.Placeholder = "Search for a movie or show..."
	input.CharLimit = 120
	input.Focus()

	filterInput := textinput.New()
	filterInput.Placeholder = "Filter results..."
	filterInput.CharLimit = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.AccentStyle

	return Model{
		state:       StateSearch,
		keys:        DefaultKeyMap(),
		svc:         svc,
		countries:   countries,
		country:     country,
		language:    language,
		input:       input,
		filterInput: filterInput,
		spin:        spin,
		visible:     []domain.MediaEntry{},
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case SearchResultsMsg:
		m.loading = false
		m.err = nil
		m.query = msg.Query
		m.results = msg.Results
		m.index = newResultIndex(msg.Results)
		m.visible = msg.Results
		m.cursor = 0
		m.state = StateResults
		return m, nil

	case DetailsLoadedMsg:
		m.loading = false
		m.err = nil
		if msg.Entry == nil {
			// Title vanished upstream; stay on the list
			m.state = StateResults
			return m, nil
		}
		m.selected = msg.Entry
		m.state = StateDetails
		return m, nil

	case OffersLoadedMsg:
		m.loading = false
		m.err = nil
		m.rows = msg.Rows
		m.services = msg.Services
		m.offerCursor = 0
		m.state = StateOffers
		return m, nil

	case ErrMsg:
		m.loading = false
		m.err = msg
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits, regardless of state
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case StateSearch:
		return m.handleSearchKey(msg)
	case StateResults:
		return m.handleResultsKey(msg)
	case StateDetails:
		return m.handleDetailsKey(msg)
	case StateOffers:
		return m.handleOffersKey(msg)
	case StateHelp:
		m.state = StateResults
		if len(m.results) == 0 {
			m.state = StateSearch
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := m.input.Value()
		if query == "" {
			return m, nil
		}
		m.loading = true
		m.err = nil
		return m, tea.Batch(m.spin.Tick, SearchCmd(m.svc, query, m.country, m.language))
	case "esc":
		if len(m.results) > 0 {
			m.state = StateResults
			return m, nil
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "enter", "esc":
			m.filtering = false
			if msg.String() == "esc" {
				m.filterInput.SetValue("")
				m.visible = m.index.filter("")
			}
			m.clampCursor()
			return m, nil
		}
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.visible = m.index.filter(m.filterInput.Value())
		m.cursor = 0
		return m, cmd
	}

	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.PageUp):
		m.cursor -= m.listHeight()
		m.clampCursor()
	case key.Matches(msg, keys.PageDown):
		m.cursor += m.listHeight()
		m.clampCursor()
	case key.Matches(msg, keys.Home):
		m.cursor = 0
	case key.Matches(msg, keys.End):
		m.cursor = len(m.visible) - 1
		m.clampCursor()
	case key.Matches(msg, keys.Enter):
		if entry, ok := m.currentEntry(); ok {
			m.loading = true
			return m, tea.Batch(m.spin.Tick, LoadDetailsCmd(m.svc, entry.ID, m.country, m.language))
		}
	case key.Matches(msg, keys.Offers):
		if entry, ok := m.currentEntry(); ok {
			m.selected = &entry
			m.loading = true
			return m, tea.Batch(m.spin.Tick, LoadOffersCmd(m.svc, entry.ID, m.countries, m.language, false))
		}
	case key.Matches(msg, keys.Search):
		m.state = StateSearch
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.Filter):
		m.filtering = true
		m.filterInput.SetValue("")
		m.filterInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.Refresh):
		if m.query != "" {
			m.loading = true
			return m, tea.Batch(m.spin.Tick, RefreshSearchCmd(m.svc, m.query, m.country, m.language))
		}
	case key.Matches(msg, keys.Help):
		m.state = StateHelp
	}
	return m, nil
}

func (m Model) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Escape):
		m.state = StateResults
	case key.Matches(msg, keys.Offers), key.Matches(msg, keys.Enter):
		if m.selected != nil {
			m.loading = true
			return m, tea.Batch(m.spin.Tick, LoadOffersCmd(m.svc, m.selected.ID, m.countries, m.language, false))
		}
	case key.Matches(msg, keys.Search):
		m.state = StateSearch
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) handleOffersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Escape):
		m.state = StateDetails
		if m.selected == nil {
			m.state = StateResults
		}
	case key.Matches(msg, keys.Up):
		if m.offerCursor > 0 {
			m.offerCursor--
		}
	case key.Matches(msg, keys.Down):
		if m.offerCursor < maxOfferScroll(len(m.rows), m.height) {
			m.offerCursor++
		}
	case key.Matches(msg, keys.Refresh):
		if m.selected != nil {
			m.loading = true
			return m, tea.Batch(m.spin.Tick, LoadOffersCmd(m.svc, m.selected.ID, m.countries, m.language, true))
		}
	case key.Matches(msg, keys.Search):
		m.state = StateSearch
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) currentEntry() (domain.MediaEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return domain.MediaEntry{}, false
	}
	return m.visible[m.cursor], true
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
