package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/appgrid/internal/domain"
)

func makeEntries(n int) []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, n)
	for i := range out {
		out[i] = domain.CatalogEntry{
			Name:        fmt.Sprintf("App %02d", i),
			Copyright:   "© Example",
			ArtworkURL:  "https://is1.example.com/a.png",
			ReleaseDate: "2021-01-01",
		}
	}
	return out
}

func TestGrid_Loading(t *testing.T) {
	g := NewGrid(3)
	g.SetSize(60, 40)
	g.SetLoading(5)

	assert.False(t, g.Loaded())
	assert.Equal(t, 5, g.ItemCount())
	_, ok := g.SelectedEntry()
	assert.False(t, ok)
	assert.Contains(t, g.View(), "░")
}

func TestGrid_MoveClamps(t *testing.T) {
	g := NewGrid(3)
	g.SetSize(60, 100)
	g.SetEntries(makeEntries(7), "")

	g.Move(0, 1)
	assert.Equal(t, 3, g.Cursor())
	g.Move(1, 0)
	assert.Equal(t, 4, g.Cursor())
	g.Move(0, 5)
	assert.Equal(t, 6, g.Cursor())
	g.Move(0, -10)
	assert.Equal(t, 0, g.Cursor())

	e, ok := g.SelectedEntry()
	require.True(t, ok)
	assert.Equal(t, "App 00", e.Name)
}

func TestGrid_QueryChangeResetsCursor(t *testing.T) {
	g := NewGrid(2)
	g.SetSize(40, 100)
	entries := makeEntries(6)
	g.SetEntries(entries, "")
	g.Move(0, 2)
	require.Equal(t, 4, g.Cursor())

	// Same query keeps the cursor
	g.SetEntries(entries, "")
	assert.Equal(t, 4, g.Cursor())

	g.SetEntries(entries[:2], "app")
	assert.Equal(t, 0, g.Cursor())
}

func TestGrid_ScrollIndicators(t *testing.T) {
	g := NewGrid(2)
	// Room for exactly two card rows
	g.SetSize(40, 2*CardHeight+ScrollIndicatorLines)
	g.SetEntries(makeEntries(10), "")

	view := g.View()
	assert.Contains(t, view, "↓ more")
	assert.NotContains(t, view, "↑ more")
	assert.Contains(t, view, "App 03")
	assert.NotContains(t, view, "App 04")

	g.Move(0, 4)
	view = g.View()
	assert.Contains(t, view, "↑ more")
	assert.Contains(t, view, "App 08")
}

func TestGrid_EmptyResults(t *testing.T) {
	g := NewGrid(3)
	g.SetSize(60, 40)

	g.SetEntries(nil, "")
	assert.Equal(t, "No results", stripANSI(g.View()))

	g.SetEntries(nil, "zzz")
	assert.Contains(t, g.View(), `No apps matching "zzz"`)
}

func TestArtworkHost(t *testing.T) {
	assert.Equal(t, "is1.example.com", artworkHost("https://is1.example.com/a.png"))
	assert.Equal(t, "artwork", artworkHost("not a url"))
}

func TestRenderName_Highlight(t *testing.T) {
	plain := stripANSI(renderName("MyApp", "app", 20))
	assert.Equal(t, "MyApp", plain)
}

// stripANSI removes SGR escape sequences so assertions see plain text
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
