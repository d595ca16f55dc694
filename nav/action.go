package nav

import (
	"github.com/animeflow/animeflow/source"
	"github.com/samber/mo"
)

// Action is a user intent applied by Transition.
type Action interface {
	apply(State) State
}

// Direction of an episode step.
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

// OpenHome returns to the landing view, dropping the selection.
type OpenHome struct{}

func (OpenHome) apply(s State) State {
	s.View = Home
	s.SelectedAnime = mo.None[source.AnimeSummary]()
	s.CurrentEpisode = mo.None[source.Episode]()
	return s
}

// SubmitSearch replaces the pending query. An empty query releases the search pin.
type SubmitSearch struct {
	Query string
}

func (a SubmitSearch) apply(s State) State {
	s.SearchQuery = a.Query
	return s
}

// SelectAnime opens the detail view of an anime.
type SelectAnime struct {
	Anime source.AnimeSummary
}

func (a SelectAnime) apply(s State) State {
	if s.View == Home || s.View == SearchResults {
		s.Origin = s.View
	}
	s.View = AnimeDetail
	s.SelectedAnime = mo.Some(a.Anime)
	s.CurrentEpisode = mo.None[source.Episode]()
	return s
}

// SelectEpisode starts playback of Episode from Episodes.
type SelectEpisode struct {
	Episode  source.Episode
	Episodes []source.Episode
}

func (a SelectEpisode) apply(s State) State {
	s.View = Player
	s.CurrentEpisode = mo.Some(a.Episode)
	s.EpisodeList = a.Episodes
	return s
}

// NavigateEpisode steps to the neighbouring episode while playing.
// Steps past either end are ignored.
type NavigateEpisode struct {
	Direction Direction
}

func (a NavigateEpisode) apply(s State) State {
	episode, ok := s.CurrentEpisode.Get()
	if s.View != Player || !ok {
		return s
	}

	target := episode.Index + int(a.Direction)
	if target < 0 || target >= len(s.EpisodeList) {
		return s
	}

	s.CurrentEpisode = mo.Some(s.EpisodeList[target])
	return s
}

// GoBack leaves the current view: Player returns to AnimeDetail, AnimeDetail
// to the listing it was opened from, and SearchResults to Home, dropping the
// query.
type GoBack struct{}

func (GoBack) apply(s State) State {
	switch s.View {
	case Player:
		s.View = AnimeDetail
		s.CurrentEpisode = mo.None[source.Episode]()
	case AnimeDetail:
		s.View = s.Origin
		s.SelectedAnime = mo.None[source.AnimeSummary]()
	case SearchResults:
		s.View = Home
		s.SearchQuery = ""
	}
	return s
}
