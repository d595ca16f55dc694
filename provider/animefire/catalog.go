package animefire

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/animeflow/animeflow/log"
	"github.com/animeflow/animeflow/source"
	cache "github.com/patrickmn/go-cache"
	"golang.org/x/exp/slices"
)

const catalogCacheKey = "catalog"

var catalogSelectors = []string{".divCardUltimosEps", "article.imgAnimes"}

// Catalog returns the titles featured on the landing page. A successful fetch
// is kept for the configured TTL; expiry is the only invalidation.
func (a *Animefire) Catalog(ctx context.Context) ([]source.AnimeSummary, error) {
	if cached, found := a.catalog.Get(catalogCacheKey); found {
		return slices.Clone(cached.([]source.AnimeSummary)), nil
	}

	doc, err := a.document(ctx, a.base)
	if err != nil {
		return nil, err
	}

	var cards *goquery.Selection
	for _, selector := range catalogSelectors {
		if cards = doc.Find(selector); cards.Length() > 0 {
			break
		}
	}

	var results []source.AnimeSummary
	cards.Slice(0, min(cards.Length(), a.catalogLimit)).Each(func(i int, card *goquery.Selection) {
		anime, err := a.parseCard(card, ".animeTitle", ".title")
		if err != nil {
			log.WithFields(log.Fields{"card": i, "kind": source.KindOf(err)}).Debug("skipping catalog card: ", err)
			return
		}
		results = append(results, anime)
	})

	a.catalog.Set(catalogCacheKey, results, cache.DefaultExpiration)
	return slices.Clone(results), nil
}
