// Package session connects the navigation state machine to the resolvers and
// the history store.
//
// Resolvers report typed failures. This package is the one place that turns
// them into degraded values: every failure is logged with its kind and the
// caller receives an empty result instead of an error.
package session

import (
	"context"

	"github.com/animeflow/animeflow/history"
	"github.com/animeflow/animeflow/key"
	"github.com/animeflow/animeflow/log"
	"github.com/animeflow/animeflow/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Options tune a Service.
type Options struct {
	// ContinueLimit caps the continue-watching row.
	ContinueLimit int
	// SaveOnWatch disables history writes when false.
	SaveOnWatch bool
}

// DefaultOptions reads the options from configuration.
func DefaultOptions() Options {
	return Options{
		ContinueLimit: viper.GetInt(key.HistoryContinueLimit),
		SaveOnWatch:   viper.GetBool(key.HistorySaveOnWatch),
	}
}

// Service performs resolver calls on behalf of every interface.
type Service struct {
	source  source.Source
	history *history.Store
	options Options
	log     *log.Entry
}

// NewService creates a service over src that records progress in store.
func NewService(src source.Source, store *history.Store, options Options) *Service {
	return &Service{
		source:  src,
		history: store,
		options: options,
		log:     log.WithFields(log.Fields{"source": src.ID()}),
	}
}

// Source returns the underlying source.
func (s *Service) Source() source.Source {
	return s.source
}

// History returns the store progress is written to.
func (s *Service) History() *history.Store {
	return s.history
}

func (s *Service) with(fields log.Fields) *Service {
	clone := *s
	clone.log = s.log.WithFields(fields)
	return &clone
}

func (s *Service) failed(op, url string, err error) {
	s.log.WithFields(log.Fields{
		"op":   op,
		"url":  url,
		"kind": source.KindOf(err),
	}).Warn(err)
}

// Catalog returns the featured titles, or nothing.
func (s *Service) Catalog(ctx context.Context) []source.AnimeSummary {
	catalog, err := s.source.Catalog(ctx)
	if err != nil {
		s.failed("catalog", "", err)
		return nil
	}
	return catalog
}

// Search returns the titles matching query, or nothing.
func (s *Service) Search(ctx context.Context, query string) []source.AnimeSummary {
	results, err := s.source.Search(ctx, query)
	if err != nil {
		s.failed("search", query, err)
		return nil
	}
	return results
}

// Episodes returns the episodes of an anime page. An empty result means the
// list is unavailable; it does not tell a failure from an anime without episodes.
func (s *Service) Episodes(ctx context.Context, animeURL string) []source.Episode {
	episodes, err := s.source.EpisodesOf(ctx, animeURL)
	if err != nil {
		s.failed("episodes", animeURL, err)
		return nil
	}
	return episodes
}

// Video resolves an episode page without touching history.
func (s *Service) Video(ctx context.Context, episodeURL string) mo.Option[source.Video] {
	video, err := s.source.VideoOf(ctx, episodeURL)
	if err != nil {
		s.failed("video", episodeURL, err)
		return mo.None[source.Video]()
	}
	return mo.Some(video)
}

// Watch resolves the video of episode and, only when that succeeds, records
// it as the last watched episode of anime. History errors are logged and
// never affect the result.
func (s *Service) Watch(ctx context.Context, anime source.AnimeSummary, episode source.Episode) mo.Option[source.Video] {
	video := s.Video(ctx, episode.URL)
	if video.IsAbsent() || !s.options.SaveOnWatch {
		return video
	}

	if err := s.history.Save(anime, episode.Num); err != nil {
		s.log.WithFields(log.Fields{"op": "history", "title": anime.Title}).Warn(err)
	}

	return video
}

// ContinueWatching returns the most recently watched titles.
func (s *Service) ContinueWatching() []source.AnimeSummary {
	return lo.Map(s.history.Recent(s.options.ContinueLimit), func(entry history.Entry, _ int) source.AnimeSummary {
		return entry.Anime()
	})
}

// LastWatched returns the last watched episode number of title.
func (s *Service) LastWatched(title string) mo.Option[int] {
	entry, ok := s.history.Get(title).Get()
	if !ok {
		return mo.None[int]()
	}
	return mo.Some(entry.LastEpisode)
}
