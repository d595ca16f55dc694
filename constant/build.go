package constant

// Build metadata, injected with -ldflags "-X github.com/animeflow/animeflow/constant.Revision=..." at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
