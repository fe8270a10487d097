package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/appgrid/internal/catalog"
	"github.com/mmcdole/appgrid/internal/domain"
	"github.com/mmcdole/appgrid/internal/search"
	"github.com/mmcdole/appgrid/internal/tui/components"
	"github.com/mmcdole/appgrid/internal/tui/styles"
)

// Layout heights outside the grid
const (
	TitleHeight     = 2 // title + blank line
	SearchBarHeight = 2 // bar + blank line
	FooterHeight    = 1
	ChromeHeight    = TitleHeight + SearchBarHeight + FooterHeight
)

// Title shown above the search bar
const Title = "Grid Search"

// Model is the main Bubble Tea model for the application.
// It renders the catalog store state and owns the search text; the visible
// entries are recomputed from the latest snapshot on every keystroke and
// every store update.
type Model struct {
	Ready bool

	snapshot catalog.Snapshot
	updates  <-chan catalog.Snapshot
	visible  []domain.CatalogEntry

	Search components.SearchBar
	Grid   components.Grid
	Keys   KeyMap

	width  int
	height int
}

// NewModel creates the model from the store's current snapshot and the
// channel its ChannelObserver writes to
func NewModel(initial catalog.Snapshot, updates <-chan catalog.Snapshot, columns int) Model {
	m := Model{
		snapshot: initial,
		updates:  updates,
		Search:   components.NewSearchBar(),
		Grid:     components.NewGrid(columns),
		Keys:     DefaultKeyMap(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	return ListenStoreCmd(m.updates)
}

// Visible returns the entries currently shown by the grid
func (m Model) Visible() []domain.CatalogEntry {
	return m.visible
}

// Snapshot returns the last store state the model has seen
func (m Model) Snapshot() catalog.Snapshot {
	return m.snapshot
}

// refresh derives the grid content from the snapshot and the search text
func (m *Model) refresh() {
	if !m.snapshot.Loaded {
		m.visible = nil
		m.Grid.SetLoading(m.snapshot.VisibleSlots)
		return
	}
	m.visible = search.Filter(m.snapshot.Entries, m.Search.Value())
	m.Grid.SetEntries(m.visible, m.Search.Value())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.Ready = true
		m.Search.SetWidth(msg.Width)
		m.Grid.SetSize(msg.Width, max(msg.Height-ChromeHeight, 1))
		return m, nil

	case StoreChangedMsg:
		m.snapshot = msg.Snapshot
		m.refresh()
		if m.updates == nil {
			return m, nil
		}
		return m, ListenStoreCmd(m.updates)

	case StoreClosedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.Search.Focused() {
		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.ForceQuit) {
		return m, tea.Quit
	}

	// Typing mode: everything except the search controls goes to the input
	if m.Search.Focused() {
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			m.Search.Cancel()
			m.refresh()
			return m, nil
		case key.Matches(msg, m.Keys.ClearSearch):
			m.Search.Clear()
			m.refresh()
			return m, nil
		case key.Matches(msg, m.Keys.Accept):
			m.Search.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		m.refresh()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Search):
		return m, m.Search.Begin()
	case key.Matches(msg, m.Keys.Cancel):
		if m.Search.Searching() {
			m.Search.Cancel()
			m.refresh()
		}
	case key.Matches(msg, m.Keys.Up):
		m.Grid.Move(0, -1)
	case key.Matches(msg, m.Keys.Down):
		m.Grid.Move(0, 1)
	case key.Matches(msg, m.Keys.Left):
		m.Grid.Move(-1, 0)
	case key.Matches(msg, m.Keys.Right):
		m.Grid.Move(1, 0)
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	sections := []string{
		styles.TitleStyle.Render(Title) + "\n",
		m.Search.View() + "\n",
		lipgloss.NewStyle().Height(max(m.height-ChromeHeight, 1)).Render(m.Grid.View()),
		m.renderFooter(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderFooter renders the status and key help line
func (m Model) renderFooter() string {
	status := "loading"
	if m.snapshot.Loaded {
		status = fmt.Sprintf("%d of %d", len(m.visible), len(m.snapshot.Entries))
	}

	var help []string
	for _, b := range m.Keys.ShortHelp() {
		h := b.Help()
		help = append(help, styles.HelpKeyStyle.Render(h.Key)+" "+styles.HelpDescStyle.Render(h.Desc))
	}

	return styles.DimStyle.Render(status) + "  " + strings.Join(help, "  ")
}
