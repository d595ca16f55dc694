// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// AnimeFlow is the canonical application identifier used for filesystem paths and CLI branding.
	AnimeFlow = "animeflow"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is the desktop browser identity presented to the streaming site.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// DefaultBaseURL is the origin of the scraped streaming site.
	DefaultBaseURL = "https://animefire.plus"

	// Repository is the upstream project path used for release checks.
	Repository = "animeflow/animeflow"
)
