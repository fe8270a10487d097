package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Accent     = lipgloss.Color("#0A84FF")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent)
)

// Search bar styles
var (
	SearchBarStyle = lipgloss.NewStyle().
			Background(SlateDark).
			Padding(0, 1)

	SearchPromptStyle = lipgloss.NewStyle().
				Foreground(DimGray)

	SearchTextStyle = lipgloss.NewStyle().
			Foreground(White)

	CancelStyle = lipgloss.NewStyle().
			Foreground(Accent).
			PaddingLeft(1)
)

// Grid card styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Accent).
				Padding(0, 1)

	SkeletonStyle = lipgloss.NewStyle().
			Foreground(SlateLight)

	ArtworkStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)
)

// Match highlight style for search results
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(Accent).
				Bold(true)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Accent)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Raw glyphs
const (
	ArtworkGlyph  = "▣"
	SkeletonBlock = "░"
	SearchGlyph   = "⌕"
	ClearGlyph    = "⊗"
)

// Helper functions

// Truncate truncates a string to the given display width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		return string(runes[:min(width, len(runes))])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-3 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// Bar renders a skeleton placeholder bar of the given width
func Bar(width int) string {
	if width <= 0 {
		return ""
	}
	return SkeletonStyle.Render(strings.Repeat(SkeletonBlock, width))
}
