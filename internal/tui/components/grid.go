package components

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/appgrid/internal/domain"
	"github.com/mmcdole/appgrid/internal/search"
	"github.com/mmcdole/appgrid/internal/tui/styles"
)

// Layout constants for grid cards
const (
	// Border adds 1 char on each side
	BorderWidth  = 2
	BorderHeight = 2

	// Padding(0,1) inside the border
	HorizontalPadding = 2

	// Artwork, name, release date, copyright
	CardContentLines = 4
	CardHeight       = CardContentLines + BorderHeight

	// Space between columns
	ColumnGap = 1

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	MinCardWidth = 12
)

// Grid renders catalog entries as cards in fixed columns. Before the feed
// resolves it renders skeleton cards for the reveal window instead.
type Grid struct {
	entries []domain.CatalogEntry
	query   string // current search text, for highlighting
	loaded  bool
	slots   int // skeleton cards shown while loading

	columns int
	cursor  int
	offset  int // first visible row

	width  int
	height int
}

// NewGrid creates a grid with the given number of columns
func NewGrid(columns int) Grid {
	if columns < 1 {
		columns = 1
	}
	return Grid{columns: columns}
}

// SetLoading shows slots skeleton cards until SetEntries is called
func (g *Grid) SetLoading(slots int) {
	g.loaded = false
	g.slots = slots
	g.entries = nil
	g.cursor = 0
	g.offset = 0
}

// SetEntries sets the visible (already filtered) entries
func (g *Grid) SetEntries(entries []domain.CatalogEntry, query string) {
	queryChanged := query != g.query
	g.loaded = true
	g.entries = entries
	g.query = query

	if queryChanged || g.cursor >= len(entries) {
		g.cursor = 0
		g.offset = 0
	}
}

// SetSize updates the component dimensions
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.ensureVisible()
}

// Columns returns the number of columns
func (g Grid) Columns() int {
	return g.columns
}

// Cursor returns the current cursor position
func (g Grid) Cursor() int {
	return g.cursor
}

// Loaded reports whether the grid is showing entries rather than skeletons
func (g Grid) Loaded() bool {
	return g.loaded
}

// ItemCount returns the number of cards the grid is showing
func (g Grid) ItemCount() int {
	if !g.loaded {
		return g.slots
	}
	return len(g.entries)
}

// SelectedEntry returns the entry under the cursor
func (g Grid) SelectedEntry() (domain.CatalogEntry, bool) {
	if !g.loaded || g.cursor >= len(g.entries) {
		return domain.CatalogEntry{}, false
	}
	return g.entries[g.cursor], true
}

// Move shifts the cursor by dx columns and dy rows, clamped to the content
func (g *Grid) Move(dx, dy int) {
	count := len(g.entries)
	if !g.loaded || count == 0 {
		return
	}
	pos := g.cursor + dx + dy*g.columns
	if pos < 0 {
		pos = 0
	}
	if pos > count-1 {
		pos = count - 1
	}
	g.cursor = pos
	g.ensureVisible()
}

// visibleRows returns how many card rows fit in the height
func (g Grid) visibleRows() int {
	rows := (g.height - ScrollIndicatorLines) / CardHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (g Grid) totalRows() int {
	n := g.ItemCount()
	return (n + g.columns - 1) / g.columns
}

// ensureVisible keeps the cursor row on screen
func (g *Grid) ensureVisible() {
	row := g.cursor / g.columns
	visible := g.visibleRows()
	if row < g.offset {
		g.offset = row
	}
	if row >= g.offset+visible {
		g.offset = row - visible + 1
	}
}

// cardWidth returns the outer width of one card
func (g Grid) cardWidth() int {
	w := (g.width - (g.columns-1)*ColumnGap) / g.columns
	if w < MinCardWidth {
		w = MinCardWidth
	}
	return w
}

// View renders the component
func (g Grid) View() string {
	if g.loaded && len(g.entries) == 0 {
		msg := "No results"
		if g.query != "" {
			msg = fmt.Sprintf("No apps matching %q", g.query)
		}
		return styles.DimStyle.Render(msg)
	}

	total := g.totalRows()
	end := g.offset + g.visibleRows()
	if end > total {
		end = total
	}

	cardWidth := g.cardWidth()
	var rows []string
	for r := g.offset; r < end; r++ {
		var cards []string
		for c := 0; c < g.columns; c++ {
			i := r*g.columns + c
			if i >= g.ItemCount() {
				break
			}
			if c > 0 {
				cards = append(cards, strings.Repeat(" ", ColumnGap))
			}
			cards = append(cards, g.renderCard(i, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	// Always reserve the indicator lines to prevent layout shifts
	header := " "
	if g.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < total {
		footer = styles.DimStyle.Render("↓ more")
	}

	return header + "\n" + strings.Join(rows, "\n") + "\n" + footer
}

func (g Grid) renderCard(i, width int) string {
	inner := width - BorderWidth - HorizontalPadding
	if !g.loaded {
		return styles.CardStyle.Width(width - BorderWidth).Render(renderSkeleton(inner))
	}

	style := styles.CardStyle
	if i == g.cursor {
		style = styles.CardSelectedStyle
	}
	return style.Width(width - BorderWidth).Render(g.renderEntry(g.entries[i], inner))
}

// renderSkeleton renders the placeholder body of a loading card
func renderSkeleton(width int) string {
	lines := []string{
		styles.Bar(min(width, 4)),
		styles.Bar(width),
		styles.Bar(width * 2 / 3),
		styles.Bar(width / 2),
	}
	return strings.Join(lines, "\n")
}

// renderEntry renders the body of an entry card. Artwork is not loaded in the
// terminal; the card shows a placeholder glyph and the artwork host.
func (g Grid) renderEntry(e domain.CatalogEntry, width int) string {
	artwork := styles.ArtworkStyle.Render(styles.Truncate(styles.ArtworkGlyph+" "+artworkHost(e.ArtworkURL), width))
	lines := []string{
		artwork,
		renderName(e.Name, g.query, width),
		styles.SubtitleStyle.Render(styles.Truncate(e.ReleaseDate, width)),
		styles.DimStyle.Render(styles.Truncate(e.Copyright, width)),
	}
	return strings.Join(lines, "\n")
}

// renderName renders the entry name with the search match highlighted
func renderName(name, query string, width int) string {
	name = styles.Truncate(name, width)
	start, end, ok := search.MatchRange(name, query)
	if !ok {
		return styles.CardTitleStyle.Render(name)
	}
	runes := []rune(name)
	return styles.CardTitleStyle.Render(string(runes[:start])) +
		styles.MatchHighlightStyle.Render(string(runes[start:end])) +
		styles.CardTitleStyle.Render(string(runes[end:]))
}

// artworkHost returns the host part of an artwork URL for the card caption
func artworkHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "artwork"
	}
	return u.Host
}
