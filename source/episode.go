package source

import "fmt"

// Episode is one entry of an anime's episode list.
type Episode struct {
	// Title is the raw label of the episode link.
	Title string `json:"title"`
	// URL is the episode page.
	URL string `json:"url"`
	// Num is the first number found in the label, 0 when there is none.
	Num int `json:"num"`
	// Index is the position inside the enumerated list, assigned after sorting.
	Index int `json:"index"`
}

// String returns the display label used by the interfaces.
func (e Episode) String() string {
	return fmt.Sprintf("Episode %d", e.Num)
}
