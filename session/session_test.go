package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/animeflow/animeflow/filesystem"
	"github.com/animeflow/animeflow/history"
	"github.com/animeflow/animeflow/nav"
	"github.com/animeflow/animeflow/source"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type fakeSource struct {
	catalog  []source.AnimeSummary
	results  map[string][]source.AnimeSummary
	episodes map[string][]source.Episode
	videos   map[string]source.Video
	calls    []string
}

func (*fakeSource) ID() string   { return "fake" }
func (*fakeSource) Name() string { return "Fake" }

func (f *fakeSource) Catalog(context.Context) ([]source.AnimeSummary, error) {
	f.calls = append(f.calls, "catalog")
	if f.catalog == nil {
		return nil, fmt.Errorf("get /: %w", source.ErrTransport)
	}
	return f.catalog, nil
}

func (f *fakeSource) Search(_ context.Context, query string) ([]source.AnimeSummary, error) {
	f.calls = append(f.calls, "search:"+query)
	results, ok := f.results[query]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", query, source.ErrTransport)
	}
	return results, nil
}

func (f *fakeSource) EpisodesOf(_ context.Context, animeURL string) ([]source.Episode, error) {
	f.calls = append(f.calls, "episodes:"+animeURL)
	episodes, ok := f.episodes[animeURL]
	if !ok {
		return nil, fmt.Errorf("anchor without link: %w", source.ErrShapeMismatch)
	}
	return episodes, nil
}

func (f *fakeSource) VideoOf(_ context.Context, episodeURL string) (source.Video, error) {
	f.calls = append(f.calls, "video:"+episodeURL)
	video, ok := f.videos[episodeURL]
	if !ok {
		return source.Video{}, fmt.Errorf("no sources: %w", source.ErrDataAbsent)
	}
	return video, nil
}

var (
	frieren = source.AnimeSummary{Title: "Frieren", URL: "/animes/frieren", Img: "f.jpg"}
	naruto  = source.AnimeSummary{Title: "Naruto", URL: "/animes/naruto", Img: "n.jpg"}
	ep1     = source.Episode{Title: "Episódio 1", URL: "/animes/frieren/1", Num: 1, Index: 0}
	ep2     = source.Episode{Title: "Episódio 2", URL: "/animes/frieren/2", Num: 2, Index: 1}
	ep3     = source.Episode{Title: "Episódio 3", URL: "/animes/frieren/3", Num: 3, Index: 2}
)

func newFixture() (*fakeSource, *history.Store, *Service) {
	_ = filesystem.API().RemoveAll("/session")

	src := &fakeSource{
		catalog:  []source.AnimeSummary{naruto},
		results:  map[string][]source.AnimeSummary{"frieren": {frieren}, "nada": {}},
		episodes: map[string][]source.Episode{frieren.URL: {ep1, ep2, ep3}},
		videos: map[string]source.Video{
			ep1.URL: {URL: "https://cdn.test/1.mp4", Page: ep1.URL},
			ep2.URL: {URL: "https://cdn.test/2.mp4", Page: ep2.URL},
		},
	}
	store := history.New("/session/watch_history.json")
	service := NewService(src, store, Options{ContinueLimit: 4, SaveOnWatch: true})

	return src, store, service
}

func TestStatusOf(t *testing.T) {
	Convey("StatusOf", t, func() {
		last := mo.Some(4)
		So(StatusOf(5, last), ShouldEqual, Next)
		So(StatusOf(4, last), ShouldEqual, Watched)
		So(StatusOf(1, last), ShouldEqual, Watched)
		So(StatusOf(6, last), ShouldEqual, Unwatched)

		Convey("Without progress episode 1 is next and nothing is watched", func() {
			So(StatusOf(1, mo.None[int]()), ShouldEqual, Next)
			So(StatusOf(0, mo.None[int]()), ShouldEqual, Unwatched)
			So(StatusOf(2, mo.None[int]()), ShouldEqual, Unwatched)
		})

		Convey("Progress at 0 also points at episode 1", func() {
			So(StatusOf(1, mo.Some(0)), ShouldEqual, Next)
			So(StatusOf(0, mo.Some(0)), ShouldEqual, Watched)
		})
	})
}

func TestHome(t *testing.T) {
	Convey("Given a fresh session", t, func() {
		_, store, service := newFixture()
		s := service.NewSession()

		Convey("Home shows the catalog and an empty continue row", func() {
			page := s.Load(context.Background())
			So(page.View, ShouldEqual, nav.Home)
			So(page.Catalog, ShouldResemble, []source.AnimeSummary{naruto})
			So(page.Continue, ShouldBeEmpty)
		})

		Convey("Continue watching lists saved titles newest first", func() {
			So(store.Save(naruto, 3), ShouldBeNil)
			So(store.Save(frieren, 1), ShouldBeNil)

			page := s.Load(context.Background())
			So(page.Continue, ShouldHaveLength, 2)
			So(page.Continue[0].Title, ShouldBeIn, []string{frieren.Title, naruto.Title})
		})

		Convey("Sessions get distinct ids", func() {
			So(s.ID, ShouldNotBeEmpty)
			So(service.NewSession().ID, ShouldNotEqual, s.ID)
		})
	})

	Convey("Given a catalog that fails to load", t, func() {
		src, _, service := newFixture()
		src.catalog = nil

		page := service.NewSession().Load(context.Background())
		So(page.Catalog, ShouldBeEmpty)
		So(page.Message, ShouldBeEmpty)
	})
}

func TestSearch(t *testing.T) {
	Convey("Given a session", t, func() {
		_, _, service := newFixture()
		s := service.NewSession()
		ctx := context.Background()

		Convey("Submitting a query shows its results", func() {
			page := s.Dispatch(ctx, nav.SubmitSearch{Query: "frieren"})
			So(page.View, ShouldEqual, nav.SearchResults)
			So(page.Results, ShouldResemble, []source.AnimeSummary{frieren})
			So(page.Message, ShouldBeEmpty)
		})

		Convey("A query without matches says so", func() {
			page := s.Dispatch(ctx, nav.SubmitSearch{Query: "nada"})
			So(page.Message, ShouldEqual, MessageNoResults)
		})

		Convey("A failing search degrades to no results", func() {
			page := s.Dispatch(ctx, nav.SubmitSearch{Query: "offline"})
			So(page.Results, ShouldBeEmpty)
			So(page.Message, ShouldEqual, MessageNoResults)
		})
	})
}

func TestDetailAndPlayback(t *testing.T) {
	Convey("Given a session on the detail view", t, func() {
		src, store, service := newFixture()
		s := service.NewSession()
		ctx := context.Background()

		page := s.Dispatch(ctx, nav.SelectAnime{Anime: frieren})
		So(page.View, ShouldEqual, nav.AnimeDetail)
		So(page.EpisodeList(), ShouldResemble, []source.Episode{ep1, ep2, ep3})
		So(page.LastEpisode.IsAbsent(), ShouldBeTrue)

		Convey("A title never watched starts at episode 1", func() {
			So(page.Episodes[0].Status, ShouldEqual, Next)
			So(page.Episodes[1].Status, ShouldEqual, Unwatched)
			So(page.Episodes[2].Status, ShouldEqual, Unwatched)
		})

		Convey("Playing an episode records it once the video resolves", func() {
			page = s.Dispatch(ctx, nav.SelectEpisode{Episode: ep1, Episodes: page.EpisodeList()})
			So(page.View, ShouldEqual, nav.Player)
			So(page.Video.MustGet().URL, ShouldEqual, "https://cdn.test/1.mp4")
			So(page.HasPrevious, ShouldBeFalse)
			So(page.HasNext, ShouldBeTrue)
			So(store.Get(frieren.Title).MustGet().LastEpisode, ShouldEqual, 1)

			Convey("Stepping forward records the next one", func() {
				page = s.Dispatch(ctx, nav.NavigateEpisode{Direction: nav.Next})
				So(page.Episode, ShouldResemble, ep2)
				So(store.Get(frieren.Title).MustGet().LastEpisode, ShouldEqual, 2)
			})

			Convey("Going back lists statuses against the saved progress", func() {
				page = s.Dispatch(ctx, nav.GoBack{})
				So(page.View, ShouldEqual, nav.AnimeDetail)
				So(page.LastEpisode.MustGet(), ShouldEqual, 1)
				So(page.Episodes[0].Status, ShouldEqual, Watched)
				So(page.Episodes[1].Status, ShouldEqual, Next)
				So(page.Episodes[2].Status, ShouldEqual, Unwatched)
			})
		})

		Convey("An unresolvable video offers the page and leaves history alone", func() {
			page = s.Dispatch(ctx, nav.SelectEpisode{Episode: ep3, Episodes: page.EpisodeList()})
			So(page.View, ShouldEqual, nav.Player)
			So(page.Video.IsAbsent(), ShouldBeTrue)
			So(page.Message, ShouldEqual, MessageVideoUnavailable)
			So(page.Fallback, ShouldEqual, ep3.URL)
			So(store.Get(frieren.Title).IsAbsent(), ShouldBeTrue)
		})

		Convey("Playback resolves the selected episode", func() {
			s.Dispatch(ctx, nav.SelectEpisode{Episode: ep2, Episodes: page.EpisodeList()})
			So(src.calls[len(src.calls)-1], ShouldEqual, "video:"+ep2.URL)
		})
	})

	Convey("Given an anime whose episodes cannot be listed", t, func() {
		_, _, service := newFixture()
		page := service.NewSession().Dispatch(context.Background(), nav.SelectAnime{Anime: naruto})

		So(page.Episodes, ShouldBeEmpty)
		So(page.Message, ShouldEqual, MessageEpisodesUnavailable)
	})

	Convey("Given history writes disabled", t, func() {
		src, store, _ := newFixture()
		service := NewService(src, store, Options{SaveOnWatch: false})
		s := service.NewSession()

		s.Dispatch(context.Background(), nav.SelectAnime{Anime: frieren})
		page := s.Dispatch(context.Background(), nav.SelectEpisode{Episode: ep1, Episodes: []source.Episode{ep1, ep2, ep3}})

		So(page.Video.IsPresent(), ShouldBeTrue)
		So(store.Load(), ShouldBeEmpty)
	})
}
