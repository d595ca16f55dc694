// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Provider selection.
const (
	DefaultSources = "sources.default"
)

// Remote site - these keys describe the scraped origin and how it is reached.
const (
	SiteBaseURL = "site.base_url"

	NetworkTimeout        = "network.timeout"
	NetworkRatePerSecond  = "network.rate_per_second"
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Catalog - these keys bound the landing-page suggestion list.
const (
	CatalogLimit = "catalog.limit"
	CatalogTTL   = "catalog.ttl"
)

// History Tracking - these keys configure the persistence of watch progress.
const (
	HistorySaveOnWatch   = "history.save_on_watch"
	HistoryContinueLimit = "history.continue_limit"
)

// Search Interaction.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Media Playback.
const (
	Player = "player.default"
)

// HTTP API server.
const (
	ServerAddr           = "server.addr"
	ServerAllowedOrigins = "server.allowed_origins"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
