// Package nav implements the navigation state machine of a browsing session.
//
// State is a plain value. Transition never mutates its input; the caller owns
// the only mutable copy and replaces it with whatever Transition returns.
package nav

import (
	"github.com/animeflow/animeflow/source"
	"github.com/samber/mo"
)

// View is the screen a session is showing.
type View int

const (
	Home View = iota
	SearchResults
	AnimeDetail
	Player
)

func (v View) String() string {
	switch v {
	case Home:
		return "home"
	case SearchResults:
		return "search_results"
	case AnimeDetail:
		return "anime"
	case Player:
		return "player"
	default:
		return "unknown"
	}
}

// MarshalText encodes the view by name.
func (v View) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// State is everything navigation depends on.
type State struct {
	View           View                           `json:"view"`
	SelectedAnime  mo.Option[source.AnimeSummary] `json:"selected_anime"`
	CurrentEpisode mo.Option[source.Episode]      `json:"current_episode"`
	EpisodeList    []source.Episode               `json:"episode_list"`
	SearchQuery    string                         `json:"search_query"`

	// Origin is the listing AnimeDetail was entered from; GoBack returns there.
	Origin View `json:"origin"`
}

// Initial returns the state a session starts in.
func Initial() State {
	return State{
		View:           Home,
		SelectedAnime:  mo.None[source.AnimeSummary](),
		CurrentEpisode: mo.None[source.Episode](),
		Origin:         Home,
	}
}

// HasPrevious reports whether NavigateEpisode(Previous) would move.
func (s State) HasPrevious() bool {
	episode, ok := s.CurrentEpisode.Get()
	return s.View == Player && ok && episode.Index > 0
}

// HasNext reports whether NavigateEpisode(Next) would move.
func (s State) HasNext() bool {
	episode, ok := s.CurrentEpisode.Get()
	return s.View == Player && ok && episode.Index < len(s.EpisodeList)-1
}
