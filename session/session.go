package session

import (
	"context"

	"github.com/animeflow/animeflow/log"
	"github.com/animeflow/animeflow/nav"
	"github.com/animeflow/animeflow/source"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Session is one user's walk through the views. It holds the only mutable
// navigation state and is not safe for concurrent use.
type Session struct {
	ID string

	service *Service
	state   nav.State
}

// NewSession starts a session at the home view.
func (s *Service) NewSession() *Session {
	id := uuid.NewString()
	return &Session{
		ID:      id,
		service: s.with(log.Fields{"session": id}),
		state:   nav.Initial(),
	}
}

// State returns the current navigation state.
func (s *Session) State() nav.State {
	return s.state
}

// Dispatch applies action and loads the page of the resulting view.
func (s *Session) Dispatch(ctx context.Context, action nav.Action) Page {
	before := s.state.View
	s.state = nav.Transition(s.state, action)
	s.service.log.WithFields(log.Fields{
		"from": before.String(),
		"to":   s.state.View.String(),
	}).Debugf("%T", action)

	return s.Load(ctx)
}

// Load builds the page of the current view. Entering the player resolves the
// video, which records progress when it succeeds.
func (s *Session) Load(ctx context.Context) Page {
	state := s.state
	page := Page{View: state.View, Query: state.SearchQuery}

	switch state.View {
	case nav.Home:
		page.Continue = s.service.ContinueWatching()
		page.Catalog = s.service.Catalog(ctx)

	case nav.SearchResults:
		if state.SearchQuery == "" {
			page.Message = MessageEmptyQuery
			break
		}
		page.Results = s.service.Search(ctx, state.SearchQuery)
		if len(page.Results) == 0 {
			page.Message = MessageNoResults
		}

	case nav.AnimeDetail:
		anime := state.SelectedAnime.MustGet()
		page.Anime = anime
		page.LastEpisode = s.service.LastWatched(anime.Title)

		episodes := s.service.Episodes(ctx, anime.URL)
		if len(episodes) == 0 {
			page.Message = MessageEpisodesUnavailable
			break
		}
		for _, episode := range episodes {
			page.Episodes = append(page.Episodes, EpisodeItem{
				Episode: episode,
				Status:  StatusOf(episode.Num, page.LastEpisode),
			})
		}

	case nav.Player:
		anime := state.SelectedAnime.MustGet()
		episode := state.CurrentEpisode.MustGet()
		page.Anime = anime
		page.Episode = episode
		page.HasPrevious = state.HasPrevious()
		page.HasNext = state.HasNext()

		page.Video = s.service.Watch(ctx, anime, episode)
		if page.Video.IsAbsent() {
			page.Message = MessageVideoUnavailable
			page.Fallback = episode.URL
		}

		page.LastEpisode = s.service.LastWatched(anime.Title)
		page.Episodes = lo.Map(state.EpisodeList, func(e source.Episode, _ int) EpisodeItem {
			return EpisodeItem{Episode: e, Status: StatusOf(e.Num, page.LastEpisode)}
		})
	}

	return page
}
