// Package animefire scrapes animefire.plus: search results, the landing-page
// catalog, episode lists and the two-hop video resolution.
//
// The selectors used here are fixed contracts with the remote markup. When the
// site changes its structure the resolvers fail with source.ErrShapeMismatch
// rather than guessing.
package animefire

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/animeflow/animeflow/constant"
	"github.com/animeflow/animeflow/source"
	cache "github.com/patrickmn/go-cache"
)

const (
	ID   = "animefire"
	Name = "AnimeFire"
)

// DefaultCatalogTTL is how long a fetched catalog is served from memory.
const DefaultCatalogTTL = time.Hour

// DefaultCatalogLimit caps the number of catalog cards considered.
const DefaultCatalogLimit = 12

// Fetcher retrieves raw response bodies. network.Client satisfies it.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Options configures an Animefire source.
type Options struct {
	BaseURL      string
	Fetcher      Fetcher
	CatalogTTL   time.Duration
	CatalogLimit int
}

// Animefire implements source.Source.
type Animefire struct {
	base    string
	fetcher Fetcher

	catalog      *cache.Cache
	catalogLimit int
}

var _ source.Source = (*Animefire)(nil)

// New creates the source. Zero option values fall back to the package defaults.
func New(options Options) *Animefire {
	base := strings.TrimRight(options.BaseURL, "/")
	if base == "" {
		base = constant.DefaultBaseURL
	}

	ttl := options.CatalogTTL
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}

	limit := options.CatalogLimit
	if limit <= 0 {
		limit = DefaultCatalogLimit
	}

	return &Animefire{
		base:         base,
		fetcher:      options.Fetcher,
		catalog:      cache.New(ttl, 2*ttl),
		catalogLimit: limit,
	}
}

func (*Animefire) ID() string   { return ID }
func (*Animefire) Name() string { return Name }

// BaseURL returns the origin every relative link is resolved against.
func (a *Animefire) BaseURL() string {
	return a.base
}

func (a *Animefire) document(ctx context.Context, url string) (*goquery.Document, error) {
	body, err := a.fetcher.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", url, source.ErrShapeMismatch, err)
	}

	return doc, nil
}

// absolute resolves a link found on the site against its origin.
func (a *Animefire) absolute(link string) string {
	switch {
	case link == "":
		return ""
	case strings.HasPrefix(link, "http://"), strings.HasPrefix(link, "https://"):
		return link
	case strings.HasPrefix(link, "/"):
		return a.base + link
	default:
		return a.base + "/" + link
	}
}
