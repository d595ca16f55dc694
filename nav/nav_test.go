package nav

import (
	"testing"

	"github.com/animeflow/animeflow/source"
	. "github.com/smartystreets/goconvey/convey"
)

var (
	frieren = source.AnimeSummary{Title: "Frieren", URL: "https://animefire.test/animes/frieren", Img: "f.jpg"}
	e0      = source.Episode{Title: "Episódio 1", URL: "https://animefire.test/animes/frieren/1", Num: 1, Index: 0}
	e1      = source.Episode{Title: "Episódio 2", URL: "https://animefire.test/animes/frieren/2", Num: 2, Index: 1}
)

func run(state State, actions ...Action) State {
	for _, action := range actions {
		state = Transition(state, action)
	}
	return state
}

func TestInitial(t *testing.T) {
	Convey("A new session starts at Home with nothing selected", t, func() {
		s := Initial()
		So(s.View, ShouldEqual, Home)
		So(s.SelectedAnime.IsAbsent(), ShouldBeTrue)
		So(s.CurrentEpisode.IsAbsent(), ShouldBeTrue)
		So(s.EpisodeList, ShouldBeEmpty)
		So(s.SearchQuery, ShouldBeEmpty)
	})
}

func TestEpisodeNavigation(t *testing.T) {
	Convey("Given playback of the first of two episodes", t, func() {
		s := run(Initial(),
			SelectAnime{Anime: frieren},
			SelectEpisode{Episode: e0, Episodes: []source.Episode{e0, e1}},
		)
		So(s.View, ShouldEqual, Player)
		So(s.HasPrevious(), ShouldBeFalse)
		So(s.HasNext(), ShouldBeTrue)

		Convey("Next lands on the second episode", func() {
			s = Transition(s, NavigateEpisode{Direction: Next})
			So(s.CurrentEpisode.MustGet(), ShouldResemble, e1)
			So(s.HasNext(), ShouldBeFalse)

			Convey("Next again is a no-op", func() {
				again := Transition(s, NavigateEpisode{Direction: Next})
				So(again, ShouldResemble, s)
			})

			Convey("Previous goes back to the first", func() {
				s = Transition(s, NavigateEpisode{Direction: Previous})
				So(s.CurrentEpisode.MustGet(), ShouldResemble, e0)
			})
		})

		Convey("Previous from the first episode is a no-op", func() {
			So(Transition(s, NavigateEpisode{Direction: Previous}), ShouldResemble, s)
		})

		Convey("GoBack returns to the detail view", func() {
			s = Transition(s, GoBack{})
			So(s.View, ShouldEqual, AnimeDetail)
			So(s.SelectedAnime.MustGet(), ShouldResemble, frieren)
			So(s.CurrentEpisode.IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("NavigateEpisode outside the player does nothing", t, func() {
		s := run(Initial(), SelectAnime{Anime: frieren})
		So(Transition(s, NavigateEpisode{Direction: Next}), ShouldResemble, s)
	})
}

func TestSelection(t *testing.T) {
	Convey("SelectAnime opens the detail view and drops the current episode", t, func() {
		s := run(Initial(), SelectAnime{Anime: frieren})
		So(s.View, ShouldEqual, AnimeDetail)
		So(s.SelectedAnime.MustGet(), ShouldResemble, frieren)
		So(s.CurrentEpisode.IsAbsent(), ShouldBeTrue)
	})

	Convey("OpenHome clears the selection", t, func() {
		s := run(Initial(),
			SelectAnime{Anime: frieren},
			SelectEpisode{Episode: e0, Episodes: []source.Episode{e0, e1}},
			OpenHome{},
		)
		So(s.View, ShouldEqual, Home)
		So(s.SelectedAnime.IsAbsent(), ShouldBeTrue)
		So(s.CurrentEpisode.IsAbsent(), ShouldBeTrue)
	})
}

func TestSearchPin(t *testing.T) {
	Convey("Given a pending query", t, func() {
		s := run(Initial(), SubmitSearch{Query: "frieren"})

		Convey("The view is pinned to the results", func() {
			So(s.View, ShouldEqual, SearchResults)
			So(s.SearchQuery, ShouldEqual, "frieren")
		})

		Convey("OpenHome keeps the query so the pin still applies", func() {
			s = Transition(s, OpenHome{})
			So(s.View, ShouldEqual, SearchResults)
		})

		Convey("Opening an anime is not overridden", func() {
			s = Transition(s, SelectAnime{Anime: frieren})
			So(s.View, ShouldEqual, AnimeDetail)

			Convey("Nor is playback", func() {
				s = Transition(s, SelectEpisode{Episode: e0, Episodes: []source.Episode{e0}})
				So(s.View, ShouldEqual, Player)
			})

			Convey("GoBack returns to the results it came from", func() {
				s = Transition(s, GoBack{})
				So(s.View, ShouldEqual, SearchResults)
				So(s.SelectedAnime.IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("GoBack from the results clears the query", func() {
			s = Transition(s, GoBack{})
			So(s.View, ShouldEqual, Home)
			So(s.SearchQuery, ShouldBeEmpty)
		})

		Convey("An empty query releases the pin", func() {
			s = Transition(s, SubmitSearch{Query: ""})
			s = Transition(s, OpenHome{})
			So(s.View, ShouldEqual, Home)
		})
	})

	Convey("Submitting during playback keeps the player", t, func() {
		s := run(Initial(),
			SelectAnime{Anime: frieren},
			SelectEpisode{Episode: e0, Episodes: []source.Episode{e0, e1}},
			SubmitSearch{Query: "naruto"},
		)
		So(s.View, ShouldEqual, Player)
		So(s.SearchQuery, ShouldEqual, "naruto")

		Convey("And leaving the detail view lands on the results", func() {
			s = run(s, GoBack{}, GoBack{})
			So(s.View, ShouldEqual, SearchResults)
		})
	})
}

func TestGoBackFromDetail(t *testing.T) {
	Convey("GoBack from a detail opened at Home returns Home", t, func() {
		s := run(Initial(), SelectAnime{Anime: frieren}, GoBack{})
		So(s.View, ShouldEqual, Home)
	})

	Convey("GoBack at Home stays there", t, func() {
		So(Transition(Initial(), GoBack{}), ShouldResemble, Initial())
	})
}

func TestNormalize(t *testing.T) {
	Convey("A detail view without an anime falls back to Home", t, func() {
		s := Initial()
		s.View = AnimeDetail
		So(Normalize(s).View, ShouldEqual, Home)
	})

	Convey("A player whose episode index is outside the list falls back to the detail view", t, func() {
		bad := e1
		bad.Index = 5
		s := run(Initial(), SelectAnime{Anime: frieren}, SelectEpisode{Episode: bad, Episodes: []source.Episode{e0, e1}})
		So(s.View, ShouldEqual, AnimeDetail)
	})

	Convey("A player with an empty list falls back to the detail view", t, func() {
		s := run(Initial(), SelectAnime{Anime: frieren}, SelectEpisode{Episode: e0})
		So(s.View, ShouldEqual, AnimeDetail)
	})

	Convey("A player without an anime falls all the way back to Home", t, func() {
		s := Transition(Initial(), SelectEpisode{Episode: e0, Episodes: []source.Episode{e0}})
		So(s.View, ShouldEqual, Home)
	})

	Convey("A nil action only normalizes", t, func() {
		So(Transition(Initial(), nil), ShouldResemble, Initial())
	})
}

func TestViewString(t *testing.T) {
	Convey("Views are named", t, func() {
		So(Home.String(), ShouldEqual, "home")
		So(Player.String(), ShouldEqual, "player")
		So(View(42).String(), ShouldEqual, "unknown")
	})
}
