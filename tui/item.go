package tui

import (
	"fmt"

	"github.com/animeflow/animeflow/icon"
	"github.com/animeflow/animeflow/session"
	"github.com/animeflow/animeflow/source"
	"github.com/animeflow/animeflow/style"
	"github.com/charmbracelet/lipgloss"
)

// continued is a title from the continue-watching row.
type continued struct {
	anime source.AnimeSummary
}

// listItem implements the list.Item interface, wrapping various domain models for terminal display.
type listItem struct {
	internal interface{}
}

// anime returns the title behind home and result rows.
func (t *listItem) anime() (source.AnimeSummary, bool) {
	switch e := t.internal.(type) {
	case *continued:
		return e.anime, true
	case source.AnimeSummary:
		return e, true
	default:
		return source.AnimeSummary{}, false
	}
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case *continued:
		return fmt.Sprintf("%s %s", icon.Get(icon.History), e.anime.Title)
	case source.AnimeSummary:
		return e.Title
	case session.EpisodeItem:
		switch e.Status {
		case session.Next:
			return lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).
				Render(fmt.Sprintf("%s (Next) %s", e.Episode, icon.Get(icon.Next)))
		case session.Watched:
			return style.Faint(fmt.Sprintf("%s (Watched) %s", e.Episode, icon.Get(icon.Watched)))
		default:
			return e.Episode.String()
		}
	default:
		return t.FilterValue()
	}
}

// Description retrieves the secondary line for the list item.
func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case *continued:
		return lipgloss.NewStyle().Foreground(style.Yellow).Render("Continue watching")
	case source.AnimeSummary:
		return style.Faint(e.URL)
	case session.EpisodeItem:
		return style.Faint(e.Title)
	default:
		return ""
	}
}

// FilterValue returns the string used for real-time list filtering and searching.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *continued:
		return e.anime.Title
	case source.AnimeSummary:
		return e.Title
	case session.EpisodeItem:
		return e.Episode.String()
	case string:
		return e
	default:
		return ""
	}
}
