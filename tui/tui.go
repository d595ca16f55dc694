package tui

import (
	"context"

	"github.com/animeflow/animeflow/session"
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Service *session.Service

	// Query, when set, is submitted as a search on start.
	Query string
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(ctx context.Context, options *Options) error {
	bubble := newBubble(ctx, options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
