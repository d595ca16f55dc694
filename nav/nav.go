package nav

// Transition applies action to state and returns the resulting state.
// It is total: any action in any state yields a valid state.
func Transition(state State, action Action) State {
	if action == nil {
		return Normalize(state)
	}
	return pin(Normalize(action.apply(state)))
}

// Normalize routes a state whose view lacks what it needs to the nearest view
// that can be shown: AnimeDetail needs a selected anime, Player needs a
// current episode whose index is valid within the episode list.
func Normalize(s State) State {
	if s.View == Player && !playable(s) {
		s.View = AnimeDetail
	}

	if s.View == AnimeDetail && s.SelectedAnime.IsAbsent() {
		s.View = Home
	}

	if s.View != Home && s.View != SearchResults && s.View != AnimeDetail && s.View != Player {
		s.View = Home
	}

	if s.Origin != Home && s.Origin != SearchResults {
		s.Origin = Home
	}

	return s
}

// pin forces the search view while a query is pending, except during detail
// and playback.
func pin(s State) State {
	if s.SearchQuery != "" && s.View != Player && s.View != AnimeDetail {
		s.View = SearchResults
	}
	return s
}

func playable(s State) bool {
	episode, ok := s.CurrentEpisode.Get()
	if !ok || s.SelectedAnime.IsAbsent() {
		return false
	}

	if episode.Index < 0 || episode.Index >= len(s.EpisodeList) {
		return false
	}

	return s.EpisodeList[episode.Index].URL == episode.URL
}
