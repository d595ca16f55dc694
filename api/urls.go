package api

const (
	baseURL = "/api"

	catalogURL  = baseURL + "/catalog"
	searchURL   = baseURL + "/search"
	episodesURL = baseURL + "/episodes"
	videoURL    = baseURL + "/video"
	watchURL    = baseURL + "/watch"

	historyURL      = baseURL + "/history"
	historyTitleURL = historyURL + "/:title"
)
