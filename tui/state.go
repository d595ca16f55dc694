// Package tui provides the primary terminal user interface implementation.
package tui

import "github.com/animeflow/animeflow/nav"

type state int

const (
	loadingState state = iota
	errorState
	homeState
	searchState
	resultsState
	animeState
	playerState
)

// stateOf maps a navigation view to the screen that renders it.
func stateOf(view nav.View) state {
	switch view {
	case nav.SearchResults:
		return resultsState
	case nav.AnimeDetail:
		return animeState
	case nav.Player:
		return playerState
	default:
		return homeState
	}
}
