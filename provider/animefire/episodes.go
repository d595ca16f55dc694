package animefire

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/animeflow/animeflow/source"
	"golang.org/x/exp/slices"
)

const episodeSelector = "a.lEp"

var digits = regexp.MustCompile(`\d+`)

// EpisodeNumber returns the first run of decimal digits in label, or 0 when
// there is none or it does not fit an int.
func EpisodeNumber(label string) int {
	match := digits.FindString(label)
	if match == "" {
		return 0
	}

	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}

	return n
}

// EpisodesOf lists the episodes linked from an anime page, ordered by number.
// Episodes sharing a number keep their page order. Either the whole list is
// returned or an error; an anchor without a link fails the enumeration.
func (a *Animefire) EpisodesOf(ctx context.Context, animeURL string) ([]source.Episode, error) {
	doc, err := a.document(ctx, animeURL)
	if err != nil {
		return nil, err
	}

	var (
		episodes []source.Episode
		broken   error
	)

	doc.Find(episodeSelector).EachWithBreak(func(i int, anchor *goquery.Selection) bool {
		href, ok := anchor.Attr("href")
		if !ok {
			broken = fmt.Errorf("episode anchor %d without link: %w", i, source.ErrShapeMismatch)
			return false
		}

		label := anchor.Text()
		episodes = append(episodes, source.Episode{
			Title: strings.TrimSpace(label),
			URL:   a.absolute(href),
			Num:   EpisodeNumber(label),
		})
		return true
	})

	if broken != nil {
		return nil, broken
	}

	slices.SortStableFunc(episodes, func(x, y source.Episode) int {
		return x.Num - y.Num
	})

	for i := range episodes {
		episodes[i].Index = i
	}

	return episodes, nil
}
