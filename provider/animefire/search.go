package animefire

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/animeflow/animeflow/log"
	"github.com/animeflow/animeflow/source"
)

const searchCardSelector = ".divCardUltimosEps"

// Slug normalizes a query into the path segment used by the search page:
// lower-cased, trimmed, with runs of Unicode whitespace collapsed into one hyphen.
func Slug(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), "-")
}

// SearchURL returns the page fetched for query.
func (a *Animefire) SearchURL(query string) string {
	return a.base + "/pesquisar/" + url.PathEscape(Slug(query))
}

// Search fetches the results page for query. Malformed cards are skipped so a
// single broken card never hides the rest of the results.
func (a *Animefire) Search(ctx context.Context, query string) ([]source.AnimeSummary, error) {
	if Slug(query) == "" {
		return nil, nil
	}

	doc, err := a.document(ctx, a.SearchURL(query))
	if err != nil {
		return nil, err
	}

	var results []source.AnimeSummary
	doc.Find(searchCardSelector).Each(func(i int, card *goquery.Selection) {
		anime, err := a.parseCard(card, ".animeTitle")
		if err != nil {
			log.WithFields(log.Fields{"card": i, "kind": source.KindOf(err)}).Debug("skipping search card: ", err)
			return
		}
		results = append(results, anime)
	})

	return results, nil
}
