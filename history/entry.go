package history

import (
	"fmt"
	"time"

	"github.com/animeflow/animeflow/source"
)

// TimestampLayout is the layout of Entry.Timestamp. It sorts lexically in
// chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Entry is the progress record of one title.
type Entry struct {
	LastEpisode int    `json:"last_episode"`
	AnimeTitle  string `json:"anime_title"`
	CoverImage  string `json:"cover_image"`
	AnimeURL    string `json:"anime_url"`
	Timestamp   string `json:"timestamp"`
}

func newEntry(anime source.AnimeSummary, num int, at time.Time) Entry {
	return Entry{
		LastEpisode: num,
		AnimeTitle:  anime.Title,
		CoverImage:  anime.Img,
		AnimeURL:    anime.URL,
		Timestamp:   at.Format(TimestampLayout),
	}
}

// Anime rebuilds the summary the entry was saved from.
func (e Entry) Anime() source.AnimeSummary {
	return source.AnimeSummary{
		Title: e.AnimeTitle,
		URL:   e.AnimeURL,
		Img:   e.CoverImage,
	}
}

// Time parses the timestamp. Entries written by other tools may carry a
// different precision, so the seconds-only layout is tried as well.
func (e Entry) Time() (time.Time, error) {
	t, err := time.Parse(TimestampLayout, e.Timestamp)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", e.Timestamp)
}

func (e Entry) String() string {
	return fmt.Sprintf("%s : episode %d", e.AnimeTitle, e.LastEpisode)
}
