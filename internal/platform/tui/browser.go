package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Browser layout constants
const (
	browserTabWidth = 12
	browserMargin   = 8
)

// LevelSource selects which levels the browser lists.
type LevelSource int

const (
	SourceBuiltin LevelSource = iota
	SourceSaved
)

// String returns the tab title of the source.
func (s LevelSource) String() string {
	if s == SourceSaved {
		return "Saved"
	}
	return "Built-in"
}

// BrowserKeyMap defines the key bindings for the level browser.
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Select, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "built-in/saved"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type browserEntry struct {
	id     string
	title  string
	spawn  string
	blocks int
	date   string
}

// BrowserModel lists built-in layouts and saved level slots and lets the user
// pick one to play.
type BrowserModel struct {
	store    *storage.Store
	source   LevelSource
	entries  []browserEntry
	table    table.Model
	help     help.Model
	keys     BrowserKeyMap
	width    int
	height   int
	err      error
	chosen   *level.Level
	name     string
	quitting bool
}

// NewBrowserModel creates a browser. A nil store lists built-in layouts only.
func NewBrowserModel(store *storage.Store, width, height int) BrowserModel {
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		store:  store,
		keys:   DefaultBrowserKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 16},
		{Title: "Spawn", Width: 12},
		{Title: "Blocks", Width: 8},
		{Title: "Updated", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-browserMargin, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fills the table from the current source.
func (m *BrowserModel) load() {
	m.entries = nil
	m.err = nil

	switch m.source {
	case SourceBuiltin:
		for _, info := range registry.List() {
			l, err := registry.Create(info.ID)
			if err != nil {
				continue
			}
			m.entries = append(m.entries, browserEntry{
				id:     info.ID,
				title:  info.Title,
				spawn:  fmt.Sprintf("%d,%d", l.PlayerInitialPos.X, l.PlayerInitialPos.Y),
				blocks: len(l.Blocks),
				date:   "-",
			})
		}
	case SourceSaved:
		if m.store == nil {
			break
		}
		infos, err := m.store.ListLevels()
		if err != nil {
			m.err = err
			break
		}
		for _, info := range infos {
			m.entries = append(m.entries, browserEntry{
				id:     info.Name,
				title:  info.Name,
				spawn:  fmt.Sprintf("%d,%d", info.Spawn.X, info.Spawn.Y),
				blocks: info.Blocks,
				date:   info.UpdatedAt.Format("Jan 02 15:04"),
			})
		}
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{e.title, e.spawn, fmt.Sprintf("%d", e.blocks), e.date}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// choose loads the highlighted entry and ends the browser.
func (m *BrowserModel) choose() tea.Cmd {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return nil
	}
	e := m.entries[i]

	var (
		l   level.Level
		err error
	)
	if m.source == SourceSaved {
		l, err = m.store.LoadLevel(e.id)
	} else {
		l, err = registry.Create(e.id)
	}
	if err != nil {
		m.err = err
		return nil
	}

	m.chosen = &l
	m.name = e.id
	return tea.Quit
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.source == SourceBuiltin {
				m.source = SourceSaved
			} else {
				m.source = SourceBuiltin
			}
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Select):
			cmd = m.choose()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting || m.chosen != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("LEVELS"))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Width(browserTabWidth)
	activeTabStyle := tabStyle.
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	var tabs []string
	for _, s := range []LevelSource{SourceBuiltin, SourceSaved} {
		if s == m.source {
			tabs = append(tabs, activeTabStyle.Render(" "+s.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(" "+s.String()))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an explanation when it is empty.
func (m BrowserModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render(fmt.Sprintf("Cannot read levels:\n%v", m.err))
	case len(m.entries) == 0 && m.source == SourceSaved:
		return emptyStyle.Render("No saved levels yet.\nOpen the level editor to create one!")
	case len(m.entries) == 0:
		return emptyStyle.Render("No built-in levels.")
	}
	return m.table.View()
}

// Chosen returns the picked level and its name, or nil if the user quit.
func (m BrowserModel) Chosen() (*level.Level, string) {
	return m.chosen, m.name
}

// RunBrowser runs the level browser and returns the picked level, if any.
func RunBrowser(store *storage.Store, width, height int) (*level.Level, string, error) {
	model := NewBrowserModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, "", err
	}

	m, ok := finalModel.(BrowserModel)
	if !ok {
		return nil, "", nil
	}

	l, name := m.Chosen()
	return l, name, nil
}
