package tui

import (
	"context"
	"testing"

	"github.com/animeflow/animeflow/filesystem"
	"github.com/animeflow/animeflow/history"
	"github.com/animeflow/animeflow/nav"
	"github.com/animeflow/animeflow/session"
	"github.com/animeflow/animeflow/source"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type stubSource struct{}

func (stubSource) ID() string   { return "stub" }
func (stubSource) Name() string { return "Stub" }

func (stubSource) Catalog(context.Context) ([]source.AnimeSummary, error) {
	return nil, source.ErrTransport
}

func (stubSource) Search(context.Context, string) ([]source.AnimeSummary, error) {
	return nil, source.ErrTransport
}

func (stubSource) EpisodesOf(context.Context, string) ([]source.Episode, error) {
	return nil, source.ErrTransport
}

func (stubSource) VideoOf(context.Context, string) (source.Video, error) {
	return source.Video{}, source.ErrDataAbsent
}

var (
	frieren = source.AnimeSummary{Title: "Frieren", URL: "/animes/frieren"}
	naruto  = source.AnimeSummary{Title: "Naruto", URL: "/animes/naruto"}
	ep1     = source.Episode{Title: "Episódio 1", URL: "/animes/frieren/1", Num: 1, Index: 0}
	ep2     = source.Episode{Title: "Episódio 2", URL: "/animes/frieren/2", Num: 2, Index: 1}
)

func newTestBubble() *statefulBubble {
	store := history.New("/tui/history.json")
	service := session.NewService(stubSource{}, store, session.Options{ContinueLimit: 4, SaveOnWatch: true})
	return newBubble(context.Background(), &Options{Service: service})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStateOf(t *testing.T) {
	Convey("Every view should map to its screen", t, func() {
		So(stateOf(nav.Home), ShouldEqual, homeState)
		So(stateOf(nav.SearchResults), ShouldEqual, resultsState)
		So(stateOf(nav.AnimeDetail), ShouldEqual, animeState)
		So(stateOf(nav.Player), ShouldEqual, playerState)
	})
}

func TestApplyPage(t *testing.T) {
	Convey("Given a bubble", t, func() {
		b := newTestBubble()

		Convey("When the home page arrives", func() {
			b.applyPage(session.Page{
				View:     nav.Home,
				Continue: []source.AnimeSummary{frieren},
				Catalog:  []source.AnimeSummary{naruto},
			})

			Convey("It should list continued titles before the catalog", func() {
				So(b.state, ShouldEqual, homeState)
				So(b.homeC.Items(), ShouldHaveLength, 2)

				first := b.homeC.Items()[0].(*listItem)
				_, ok := first.internal.(*continued)
				So(ok, ShouldBeTrue)

				anime, ok := first.anime()
				So(ok, ShouldBeTrue)
				So(anime, ShouldResemble, frieren)
			})
		})

		Convey("When a detail page with progress arrives", func() {
			b.applyPage(session.Page{
				View:        nav.AnimeDetail,
				Anime:       frieren,
				LastEpisode: mo.Some(1),
				Episodes: []session.EpisodeItem{
					{Episode: ep1, Status: session.Watched},
					{Episode: ep2, Status: session.Next},
				},
			})

			Convey("The cursor should rest on the next episode", func() {
				So(b.state, ShouldEqual, animeState)
				So(b.episodesC.Index(), ShouldEqual, 1)
			})
		})

		Convey("When a player page without video arrives", func() {
			cmd := b.applyPage(session.Page{
				View:     nav.Player,
				Anime:    frieren,
				Episode:  ep1,
				Message:  session.MessageVideoUnavailable,
				Fallback: ep1.URL,
			})

			Convey("It should point at the episode page instead of playing", func() {
				So(cmd, ShouldBeNil)
				So(b.state, ShouldEqual, playerState)
				So(b.playerStatus, ShouldContainSubstring, session.MessageVideoUnavailable)
			})
		})

		Convey("When a player page with video arrives", func() {
			cmd := b.applyPage(session.Page{
				View:    nav.Player,
				Anime:   frieren,
				Episode: ep1,
				Video:   mo.Some(source.Video{URL: "https://cdn.example/1.mp4", Page: ep1.URL}),
			})

			Convey("It should start playback", func() {
				So(cmd, ShouldNotBeNil)
				So(b.playerStatus, ShouldContainSubstring, "Starting player")
			})
		})
	})
}

func TestSearchOverlay(t *testing.T) {
	Convey("Given the home screen", t, func() {
		b := newTestBubble()
		b.applyPage(session.Page{View: nav.Home})

		Convey("Pressing s should open the search input above it", func() {
			b.Update(runes("s"))
			So(b.state, ShouldEqual, searchState)
			So(b.statesHistory.Peek().MustGet(), ShouldEqual, homeState)

			Convey("And esc should close it again", func() {
				b.Update(tea.KeyMsg{Type: tea.KeyEsc})
				So(b.state, ShouldEqual, homeState)
				So(b.statesHistory.Len(), ShouldEqual, 0)
			})
		})

		Convey("Keys should be ignored while a page is loading", func() {
			b.startLoading("Loading...")
			b.Update(runes("s"))
			So(b.state, ShouldEqual, loadingState)

			b.applyPage(session.Page{View: nav.Home})
			So(b.busy, ShouldBeFalse)
			So(b.state, ShouldEqual, homeState)
		})
	})
}

func TestListItem(t *testing.T) {
	Convey("Episode rows should carry their watch status", t, func() {
		next := &listItem{internal: session.EpisodeItem{Episode: ep2, Status: session.Next}}
		watched := &listItem{internal: session.EpisodeItem{Episode: ep1, Status: session.Watched}}
		plain := &listItem{internal: session.EpisodeItem{Episode: ep1}}

		So(next.Title(), ShouldContainSubstring, "(Next)")
		So(watched.Title(), ShouldContainSubstring, "(Watched)")
		So(plain.Title(), ShouldEqual, ep1.String())
		So(plain.FilterValue(), ShouldEqual, ep1.String())
	})

	Convey("Anime rows should expose their title", t, func() {
		item := &listItem{internal: naruto}
		So(item.Title(), ShouldEqual, "Naruto")
		So(item.FilterValue(), ShouldEqual, "Naruto")

		anime, ok := item.anime()
		So(ok, ShouldBeTrue)
		So(anime, ShouldResemble, naruto)
	})
}
