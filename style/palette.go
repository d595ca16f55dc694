package style

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, limited to the shades the interfaces draw with.
var (
	Base    = lipgloss.Color("#1e1e2e")
	Text    = lipgloss.Color("#cdd6f4")
	Overlay = lipgloss.Color("#6c7086")
	Cream   = lipgloss.Color("#fff8dc")

	Mauve    = lipgloss.Color("#cba6f7")
	Red      = lipgloss.Color("#f38ba8")
	Maroon   = lipgloss.Color("#eba0ac")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Green    = lipgloss.Color("#a6e3a1")
	Sky      = lipgloss.Color("#89dceb")
	Sapphire = lipgloss.Color("#74c7ec")
	Blue     = lipgloss.Color("#89b4fa")
	Lavender = lipgloss.Color("#b4befe")
)

// Roles
var (
	AccentColor = Mauve
	HiRed       = Red

	// TitleColor backs screen titles. Results and episode lists use their own shade.
	TitleColor = lipgloss.Color("62")
)
