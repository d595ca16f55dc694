package session

import (
	"github.com/animeflow/animeflow/nav"
	"github.com/animeflow/animeflow/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Messages shown in place of content that could not be loaded.
const (
	MessageEmptyQuery          = "type something to search"
	MessageNoResults           = "no results"
	MessageEpisodesUnavailable = "episodes unavailable"
	MessageVideoUnavailable    = "video unavailable"
)

// EpisodeStatus relates an episode to the saved progress of its anime.
type EpisodeStatus int

const (
	Unwatched EpisodeStatus = iota
	Next
	Watched
)

func (s EpisodeStatus) String() string {
	switch s {
	case Next:
		return "next"
	case Watched:
		return "watched"
	default:
		return ""
	}
}

// MarshalText encodes the status by name.
func (s EpisodeStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// StatusOf classifies an episode number against the last watched one.
// Without saved progress episode 1 is next and nothing is watched.
func StatusOf(num int, last mo.Option[int]) EpisodeStatus {
	watched, ok := last.Get()
	switch {
	case !ok && num == 1:
		return Next
	case !ok:
		return Unwatched
	case num == watched+1:
		return Next
	case num <= watched:
		return Watched
	default:
		return Unwatched
	}
}

// EpisodeItem is an episode as listed on the detail view.
type EpisodeItem struct {
	source.Episode
	Status EpisodeStatus `json:"status"`
}

// Page is what the current view displays.
type Page struct {
	View    nav.View `json:"view"`
	Query   string   `json:"query,omitempty"`
	Message string   `json:"message,omitempty"`

	// Home
	Continue []source.AnimeSummary `json:"continue,omitempty"`
	Catalog  []source.AnimeSummary `json:"catalog,omitempty"`

	// SearchResults
	Results []source.AnimeSummary `json:"results,omitempty"`

	// AnimeDetail and Player
	Anime       source.AnimeSummary `json:"anime,omitempty"`
	LastEpisode mo.Option[int]      `json:"last_episode"`
	Episodes    []EpisodeItem       `json:"episodes,omitempty"`

	// Player
	Episode     source.Episode          `json:"episode,omitempty"`
	Video       mo.Option[source.Video] `json:"video"`
	Fallback    string                  `json:"fallback,omitempty"`
	HasPrevious bool                    `json:"has_previous"`
	HasNext     bool                    `json:"has_next"`
}

// EpisodeList returns the plain episodes of the page.
func (p Page) EpisodeList() []source.Episode {
	return lo.Map(p.Episodes, func(item EpisodeItem, _ int) source.Episode {
		return item.Episode
	})
}
