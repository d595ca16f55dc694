package tui

import (
	"github.com/animeflow/animeflow/nav"
	tea "github.com/charmbracelet/bubbletea"
)

// Init loads the landing view, or the results of the query given on start.
func (b *statefulBubble) Init() tea.Cmd {
	if b.options.Query != "" {
		return b.dispatch("Searching for "+b.options.Query+"...", nav.SubmitSearch{Query: b.options.Query})
	}

	return b.reload("Loading catalog...")
}
