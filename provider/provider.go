// Package provider manages the built-in scraping providers.
package provider

import (
	"strings"
	"time"

	"github.com/animeflow/animeflow/key"
	"github.com/animeflow/animeflow/network"
	"github.com/animeflow/animeflow/provider/animefire"
	"github.com/animeflow/animeflow/source"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Provider represents a source provider.
type Provider struct {
	ID           string
	Name         string
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

var builtins = []*Provider{
	{
		ID:   animefire.ID,
		Name: animefire.Name,
		CreateSource: func() (source.Source, error) {
			return animefire.New(animefire.Options{
				BaseURL:      viper.GetString(key.SiteBaseURL),
				Fetcher:      network.FromConfig(),
				CatalogTTL:   time.Duration(viper.GetInt(key.CatalogTTL)) * time.Minute,
				CatalogLimit: viper.GetInt(key.CatalogLimit),
			}), nil
		},
	},
}

// Builtins returns built-in providers.
func Builtins() []*Provider {
	return builtins
}

// Get finds a provider by ID or name, ignoring case.
func Get(name string) (*Provider, bool) {
	return lo.Find(Builtins(), func(p *Provider) bool {
		return strings.EqualFold(p.ID, name) || strings.EqualFold(p.Name, name)
	})
}

// Default returns the provider selected by configuration.
func Default() (*Provider, bool) {
	return Get(viper.GetString(key.DefaultSources))
}
