package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/freesound/internal/logging"
	"github.com/five82/freesound/internal/prefs"
	"github.com/five82/freesound/pkg/freesound"
)

// View represents the current active view.
type View int

const (
	ViewResults View = iota
	ViewDetail
)

// Rows taken by the header, search bar and status line.
const chromeHeight = 3

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    freesound.Searcher
	BaseQuery *freesound.SearchQuery // template cloned for every search
	Prefs     prefs.Prefs
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    freesound.Searcher
	base      *freesound.SearchQuery
	prefsPath string
	logger    zerolog.Logger
	keys      keyMap
	now       func() time.Time

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	input          textinput.Model
	detailViewport viewport.Model

	// Query state
	text        string
	searched    bool
	sort        freesound.SortOption
	groupByPack bool

	// Data state
	results  freesound.SearchResponse
	page     int
	selected int
	sound    *freesound.Sound

	// Request state; seq discards responses to superseded requests.
	seq     int
	loading bool
	status  string
	err     error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	base := opts.BaseQuery
	if base == nil {
		base = freesound.NewSearchQuery()
	}

	sort, ok := base.SortValue()
	if !ok {
		sort = opts.Prefs.SortOption()
	}
	group, _ := base.GroupByPackValue()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "search sounds"
	input.CharLimit = 256
	input.Focus()

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		base:        base,
		prefsPath:   prefsPath,
		logger:      logging.Ctx(ctx),
		keys:        defaultKeyMap(),
		now:         time.Now,
		theme:       GetTheme(opts.Prefs.Theme),
		currentView: ViewResults,
		input:       input,
		sort:        sort,
		groupByPack: group,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		return m, nil

	case resultsMsg:
		return m.handleResults(msg), nil

	case soundMsg:
		return m.handleSound(msg), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n")
	if m.currentView == ViewDetail {
		b.WriteString(m.detailViewport.View())
	} else {
		b.WriteString(m.renderResults())
	}
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m Model) contentHeight() int {
	return max(1, m.height-chromeHeight)
}

func (m *Model) resize() {
	m.input.Width = max(10, m.width-6)
	if !m.ready {
		m.detailViewport = viewport.New(m.width, m.contentHeight())
	} else {
		m.detailViewport.Width = m.width
		m.detailViewport.Height = m.contentHeight()
	}
	if m.currentView == ViewDetail {
		m.detailViewport.SetContent(m.renderDetail())
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.input.Focused() {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		return m.cycleTheme(), nil
	case key.Matches(msg, m.keys.Search):
		m.currentView = ViewResults
		cmd := m.input.Focus()
		return m, cmd
	}

	if m.currentView == ViewDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleResultsKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.input.Blur()
		return m.startSearch(strings.TrimSpace(m.input.Value()))
	case key.Matches(msg, m.keys.Escape):
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.results.Results)

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < count-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = max(0, count-1)
	case key.Matches(msg, m.keys.NextPage):
		if m.loading || !m.results.HasNext() {
			return m, nil
		}
		return m.startFetchPage(*m.results.Next, m.page+1)
	case key.Matches(msg, m.keys.PrevPage):
		if m.loading || !m.results.HasPrevious() {
			return m, nil
		}
		return m.startFetchPage(*m.results.Previous, max(1, m.page-1))
	case key.Matches(msg, m.keys.Open):
		if m.loading || count == 0 {
			return m, nil
		}
		id := m.results.Results[m.selected].ID
		m.seq++
		m.loading = true
		m.err = nil
		m.status = fmt.Sprintf("Loading sound %d...", id)
		return m, soundCmd(m.ctx, m.client, id, m.seq)
	case key.Matches(msg, m.keys.CycleSort):
		m.sort = nextSort(m.sort)
		m.status = "Sort: " + m.sort.String()
		if m.searched {
			return m.startSearch(m.text)
		}
	case key.Matches(msg, m.keys.ToggleGroup):
		m.groupByPack = !m.groupByPack
		m.status = fmt.Sprintf("Group by pack: %t", m.groupByPack)
		if m.searched {
			return m.startSearch(m.text)
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewResults
		m.sound = nil
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.detailViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.detailViewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// query builds the request for the current text and options from the
// base template.
func (m Model) query() *freesound.SearchQuery {
	return m.base.Clone().
		Query(m.text).
		Sort(m.sort).
		GroupByPack(m.groupByPack)
}

func (m Model) startSearch(text string) (Model, tea.Cmd) {
	m.text = text
	m.searched = true
	m.currentView = ViewResults
	m.seq++
	m.loading = true
	m.err = nil
	m.status = "Searching..."
	m.logger.Debug().Str(logging.FieldQuery, text).Str("sort", m.sort.String()).Msg("search started")
	return m, searchCmd(m.ctx, m.client, m.query(), m.seq)
}

func (m Model) startFetchPage(link string, page int) (Model, tea.Cmd) {
	m.seq++
	m.loading = true
	m.err = nil
	m.status = fmt.Sprintf("Loading page %d...", page)
	return m, fetchPageCmd(m.ctx, m.client, link, page, m.seq)
}

func (m Model) handleResults(msg resultsMsg) Model {
	if msg.seq != m.seq {
		return m
	}
	m.loading = false
	if msg.err != nil {
		m.err = msg.err
		m.status = ""
		m.logger.Warn().Err(msg.err).Str(logging.FieldQuery, m.text).Msg("search failed")
		return m
	}
	m.results = msg.resp
	m.page = msg.page
	m.selected = 0
	m.status = fmt.Sprintf("%s results", FormatCount(msg.resp.Count))
	m.logger.Info().
		Str(logging.FieldQuery, m.text).
		Int(logging.FieldCount, msg.resp.Count).
		Int("page", msg.page).
		Msg("search completed")
	return m
}

func (m Model) handleSound(msg soundMsg) Model {
	if msg.seq != m.seq {
		return m
	}
	m.loading = false
	if msg.err != nil {
		m.err = msg.err
		m.status = ""
		m.logger.Warn().Err(msg.err).Int64(logging.FieldSound, msg.id).Msg("sound fetch failed")
		return m
	}
	sound := msg.sound
	m.sound = &sound
	m.currentView = ViewDetail
	m.status = ""
	m.detailViewport.SetContent(m.renderDetail())
	m.detailViewport.GotoTop()
	return m
}

func (m Model) cycleTheme() Model {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	stored := prefs.Load(m.prefsPath)
	stored.Theme = m.theme.Name
	if err := prefs.Save(m.prefsPath, stored); err != nil {
		m.logger.Warn().Err(err).Msg("save prefs failed")
	}
	if m.currentView == ViewDetail {
		m.detailViewport.SetContent(m.renderDetail())
	}
	return m
}

func nextSort(current freesound.SortOption) freesound.SortOption {
	opts := freesound.SortOptions()
	for i, opt := range opts {
		if opt == current {
			return opts[(i+1)%len(opts)]
		}
	}
	return opts[0]
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is canceled.
func Run(opts Options) error {
	if opts.Client == nil {
		return fmt.Errorf("ui requires a freesound client")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
