package animefire

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/animeflow/animeflow/source"
)

// parseCard extracts a summary from a result card. The first title selector
// that matches wins. The card needs a title element, an anchor carrying an
// href and an image element; anything less is a shape mismatch for that card.
func (a *Animefire) parseCard(card *goquery.Selection, titleSelectors ...string) (source.AnimeSummary, error) {
	var title *goquery.Selection
	for _, selector := range titleSelectors {
		if found := card.Find(selector).First(); found.Length() > 0 {
			title = found
			break
		}
	}
	if title == nil {
		return source.AnimeSummary{}, fmt.Errorf("card without title: %w", source.ErrShapeMismatch)
	}

	link, ok := card.Find("a").First().Attr("href")
	if !ok {
		return source.AnimeSummary{}, fmt.Errorf("card without link: %w", source.ErrShapeMismatch)
	}

	img := card.Find("img").First()
	if img.Length() == 0 {
		return source.AnimeSummary{}, fmt.Errorf("card without image: %w", source.ErrShapeMismatch)
	}

	return source.AnimeSummary{
		Title: strings.TrimSpace(title.Text()),
		URL:   a.absolute(link),
		Img:   imageSource(img),
	}, nil
}

// imageSource prefers the lazy-load attribute over the eager one.
func imageSource(img *goquery.Selection) string {
	if lazy, ok := img.Attr("data-src"); ok && lazy != "" {
		return lazy
	}
	src, _ := img.Attr("src")
	return src
}
