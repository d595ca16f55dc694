package source

// Video is the outcome of resolving an episode page.
type Video struct {
	// URL is the chosen playable stream.
	URL string `json:"url"`
	// Page is the episode page the stream was resolved from. Interfaces offer it
	// as a fallback link when playback is not possible.
	Page string `json:"page"`
}
