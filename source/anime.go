package source

// AnimeSummary is a title as listed by a search or catalog page.
// It has no identity beyond the Title and URL pair.
type AnimeSummary struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Img   string `json:"img"`
}

func (a AnimeSummary) String() string {
	return a.Title
}

// Equal reports whether both summaries point at the same title.
func (a AnimeSummary) Equal(other AnimeSummary) bool {
	return a.Title == other.Title && a.URL == other.URL
}
