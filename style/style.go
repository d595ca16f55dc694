// Package style holds the palette and the small rendering helpers shared by the terminal interfaces.
package style

import "github.com/charmbracelet/lipgloss"

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer that paints text in c.
func Fg(c lipgloss.Color) func(string) string {
	s := New().Foreground(c)
	return func(text string) string { return s.Render(text) }
}

// Truncate returns a renderer that pads or wraps text to width.
func Truncate(width int) func(string) string {
	s := New().Width(width)
	return func(text string) string { return s.Render(text) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders a screen heading.
func Title(s string) string {
	return New().Foreground(Cream).Background(TitleColor).Padding(0, 1).Render(s)
}

// ErrorTitle renders the heading of the failure screen.
func ErrorTitle(s string) string {
	return New().Foreground(Cream).Background(Red).Bold(true).Padding(0, 1).Render(s)
}
