// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

import "context"

// Source defines the capabilities of a scraping provider.
//
// Every method performs blocking network IO and reports failures through the
// error kinds declared in errors.go. Callers decide whether to degrade.
type Source interface {
	// Name returns the human readable provider name.
	Name() string

	// ID returns the unique identifier of the source.
	ID() string

	// Search discovers titles matching a free-text query.
	Search(ctx context.Context, query string) ([]AnimeSummary, error)

	// Catalog lists the titles currently featured on the site's landing page.
	Catalog(ctx context.Context) ([]AnimeSummary, error)

	// EpisodesOf enumerates the episodes linked from an anime detail page, ordered by number.
	EpisodesOf(ctx context.Context, animeURL string) ([]Episode, error)

	// VideoOf resolves an episode page to a single playable stream.
	VideoOf(ctx context.Context, episodeURL string) (Video, error)
}
