package mini

import (
	"testing"

	"github.com/animeflow/animeflow/session"
	"github.com/animeflow/animeflow/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestOptions(t *testing.T) {
	Convey("Given a catalog title", t, func() {
		anime := source.AnimeSummary{Title: "Frieren", URL: "https://animefire.plus/animes/frieren-todos-os-episodios"}

		Convey("It should be listed by its title", func() {
			So(homeOption{anime: anime}.String(), ShouldEqual, "Frieren")
		})

		Convey("When it comes from history it should keep its title", func() {
			So(homeOption{anime: anime, continued: true}.String(), ShouldEndWith, "Frieren")
		})
	})

	Convey("Given episodes with a watch status", t, func() {
		episode := source.Episode{Title: "Episódio 3", Num: 3}

		Convey("The next one should be labelled", func() {
			o := episodeOption{session.EpisodeItem{Episode: episode, Status: session.Next}}
			So(o.String(), ShouldContainSubstring, "(Next)")
		})

		Convey("A watched one should be labelled", func() {
			o := episodeOption{session.EpisodeItem{Episode: episode, Status: session.Watched}}
			So(o.String(), ShouldContainSubstring, "(Watched)")
		})

		Convey("An unwatched one should carry no label", func() {
			o := episodeOption{session.EpisodeItem{Episode: episode}}
			So(o.String(), ShouldEqual, episode.String())
		})
	})
}

func TestBinds(t *testing.T) {
	Convey("Binds should compare by identity", t, func() {
		So(quit.eq(quit), ShouldBeTrue)
		So(quit.eq(back), ShouldBeFalse)
		So(search.String(), ShouldEqual, "Search")
	})
}
