package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette shared by the text views and the TUI.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Theme holds the styles for one output stream.
type Theme struct {
	Header lipgloss.Style
	Dim    lipgloss.Style
	Bold   lipgloss.Style
	Profit lipgloss.Style
	Loss   lipgloss.Style
	Warn   lipgloss.Style
	Accent lipgloss.Style
}

// NewTheme builds styles bound to out. With color false every style renders
// plain text, which is what pipes and tests get.
func NewTheme(out io.Writer, color bool) *Theme {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Theme{
		Header: r.NewStyle().Foreground(ColorHeader).Bold(true),
		Dim:    r.NewStyle().Foreground(ColorDim),
		Bold:   r.NewStyle().Foreground(ColorFg).Bold(true),
		Profit: r.NewStyle().Foreground(ColorGreen),
		Loss:   r.NewStyle().Foreground(ColorRed),
		Warn:   r.NewStyle().Foreground(ColorYellow),
		Accent: r.NewStyle().Foreground(ColorBlue),
	}
}

// Plain returns a theme that never emits escape sequences.
func Plain() *Theme {
	return NewTheme(io.Discard, false)
}
