package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/appgrid/internal/tui/styles"
)

// SearchBar owns the search text and the cosmetic "searching" toggle.
// The toggle only changes chrome; the query alone drives filtering.
type SearchBar struct {
	input     textinput.Model
	searching bool
	width     int
}

// NewSearchBar creates an idle search bar
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Type to search..."
	ti.Prompt = styles.SearchGlyph + " "
	ti.PromptStyle = styles.SearchPromptStyle
	ti.TextStyle = styles.SearchTextStyle

	return SearchBar{input: ti}
}

// Value returns the current search text
func (s SearchBar) Value() string {
	return s.input.Value()
}

// Searching reports whether the bar is in searching mode
func (s SearchBar) Searching() bool {
	return s.searching
}

// Focused reports whether keystrokes go to the text input
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// SetWidth updates the component width
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	// Leave room for the prompt, clear glyph and the Cancel label
	s.input.Width = max(width-16, 1)
}

// Begin enters searching mode and focuses the input
func (s *SearchBar) Begin() tea.Cmd {
	s.searching = true
	return s.input.Focus()
}

// Clear empties the search text, staying in searching mode
func (s *SearchBar) Clear() {
	s.input.SetValue("")
}

// Cancel leaves searching mode and empties the search text
func (s *SearchBar) Cancel() {
	s.searching = false
	s.input.SetValue("")
	s.input.Blur()
}

// Blur keeps the text but returns keystrokes to the grid
func (s *SearchBar) Blur() {
	s.input.Blur()
}

// Update routes a message to the text input
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the component
func (s SearchBar) View() string {
	field := s.input.View()
	if s.searching {
		field += " " + styles.DimStyle.Render(styles.ClearGlyph)
	}
	bar := styles.SearchBarStyle.Render(field)
	if !s.searching {
		return bar
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, bar, styles.CancelStyle.Render("Cancel"))
}
