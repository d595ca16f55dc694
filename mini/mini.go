// Package mini implements a lightweight, prompt-driven interface for anime search and playback.
package mini

import (
	"context"
	"errors"
	"fmt"

	"github.com/animeflow/animeflow/icon"
	"github.com/animeflow/animeflow/nav"
	"github.com/animeflow/animeflow/player"
	"github.com/animeflow/animeflow/query"
	"github.com/animeflow/animeflow/session"
	"github.com/animeflow/animeflow/source"
	"github.com/animeflow/animeflow/style"
	"github.com/animeflow/animeflow/util"
	"github.com/samber/lo"
)

var (
	truncateAt = 100

	errInterrupted = errors.New("interrupted")
)

// Options configures a prompt session.
type Options struct {
	Service *session.Service

	// Continue starts from the continue-watching list instead of the catalog.
	Continue bool
}

type mini struct {
	ctx     context.Context
	session *session.Session
	page    session.Page
	done    bool

	// fresh is set until the player view of a newly loaded page has started playback.
	fresh bool
}

// homeOption is a landing-page title, marked when it comes from history.
type homeOption struct {
	anime     source.AnimeSummary
	continued bool
}

func (o homeOption) String() string {
	if o.continued {
		return fmt.Sprintf("%s %s", icon.Get(icon.History), o.anime.Title)
	}
	return o.anime.Title
}

// episodeOption is an episode labelled with its watch status.
type episodeOption struct {
	session.EpisodeItem
}

func (o episodeOption) String() string {
	switch o.Status {
	case session.Next:
		return fmt.Sprintf("%s (Next) %s", o.Episode, icon.Get(icon.Next))
	case session.Watched:
		return style.Faint(fmt.Sprintf("%s (Watched)", o.Episode))
	default:
		return o.Episode.String()
	}
}

// Run drives the navigation with terminal prompts until the user quits.
func Run(ctx context.Context, options *Options) error {
	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w
	}

	m := &mini{
		ctx:     ctx,
		session: options.Service.NewSession(),
	}

	erase := progress("Loading catalog..")
	m.page = m.session.Load(ctx)
	erase()

	if options.Continue {
		if err := m.handleContinue(); err != nil {
			return err
		}
	}

	for !m.done {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := m.handlePage(); err != nil {
			if errors.Is(err, errInterrupted) {
				return nil
			}
			return err
		}
	}

	return nil
}

func (m *mini) dispatch(status string, action nav.Action) {
	erase := progress(status)
	m.page = m.session.Dispatch(m.ctx, action)
	m.fresh = true
	erase()
}

func (m *mini) handlePage() error {
	if m.page.Message != "" {
		fail(m.page.Message)
	}

	switch m.page.View {
	case nav.SearchResults:
		return m.handleResults()
	case nav.AnimeDetail:
		return m.handleAnime()
	case nav.Player:
		return m.handlePlayer()
	default:
		return m.handleHome()
	}
}

func (m *mini) handleContinue() error {
	if len(m.page.Continue) == 0 {
		fail("Nothing to continue")
		return nil
	}

	title("Continue Watching >>")
	b, anime, err := menu(m.page.Continue, search, quit)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		m.done = true
	case search.eq(b):
		return m.handleSearch()
	case b == nil:
		m.dispatch("Fetching Episodes..", nav.SelectAnime{Anime: anime})
	}
	return nil
}

func (m *mini) handleHome() error {
	options := append(
		lo.Map(m.page.Continue, func(a source.AnimeSummary, _ int) homeOption {
			return homeOption{anime: a, continued: true}
		}),
		lo.Map(m.page.Catalog, func(a source.AnimeSummary, _ int) homeOption {
			return homeOption{anime: a}
		})...,
	)

	title("AnimeFlow >>")
	b, o, err := menu(options, search, quit)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		m.done = true
	case search.eq(b):
		return m.handleSearch()
	case b == nil:
		m.dispatch("Fetching Episodes..", nav.SelectAnime{Anime: o.anime})
	}
	return nil
}

func (m *mini) handleSearch() error {
	title("Search Anime")
	in, err := getInput(func(s string) bool { return s != "" })
	if err != nil {
		return err
	}

	go util.Ignore(func() error { return query.Remember(in, 1) })
	m.dispatch("Searching Query..", nav.SubmitSearch{Query: in})
	return nil
}

func (m *mini) handleResults() error {
	title(fmt.Sprintf("Results for %q >>", m.page.Query))
	b, anime, err := menu(m.page.Results, search, back, quit)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		m.done = true
	case search.eq(b):
		return m.handleSearch()
	case back.eq(b):
		m.dispatch("Loading catalog..", nav.GoBack{})
	case b == nil:
		go util.Ignore(func() error { return query.Remember(anime.Title, 2) })
		m.dispatch("Fetching Episodes..", nav.SelectAnime{Anime: anime})
	}
	return nil
}

func (m *mini) handleAnime() error {
	options := lo.Map(m.page.Episodes, func(e session.EpisodeItem, _ int) episodeOption {
		return episodeOption{e}
	})

	title(fmt.Sprintf("%s >>", m.page.Anime.Title))
	b, o, err := menu(options, back, quit)
	if err != nil {
		return err
	}

	switch {
	case quit.eq(b):
		m.done = true
	case back.eq(b):
		m.dispatch("Loading..", nav.GoBack{})
	case b == nil:
		m.dispatch(
			fmt.Sprintf("Resolving %s..", o.Episode),
			nav.SelectEpisode{Episode: o.Episode, Episodes: m.page.EpisodeList()},
		)
	}
	return nil
}

func (m *mini) handlePlayer() error {
	util.ClearScreen()
	current := m.page

	if video, ok := current.Video.Get(); ok && m.fresh {
		fmt.Printf("%s Playing %s - %s\n", icon.Get(icon.Play), current.Anime.Title, current.Episode)
		if err := player.Play(video.URL, fmt.Sprintf("%s - %s", current.Anime.Title, current.Episode)); err != nil {
			fail(err.Error())
		}
	} else if current.Fallback != "" {
		fmt.Printf("%s %s\n", icon.Get(icon.Link), current.Fallback)
	}
	m.fresh = false

	title(fmt.Sprintf("Currently watching %s", current.Episode))

	var binds []*bind
	if current.HasPrevious {
		binds = append(binds, prev)
	}
	if current.HasNext {
		binds = append(binds, next)
	}
	binds = append(binds, replay, openPage, back, quit)

	b, _, err := menu([]fmt.Stringer{}, binds...)
	if err != nil {
		return err
	}

	switch b {
	case next:
		m.dispatch("Resolving next episode..", nav.NavigateEpisode{Direction: nav.Next})
	case prev:
		m.dispatch("Resolving previous episode..", nav.NavigateEpisode{Direction: nav.Previous})
	case replay:
		erase := progress("Resolving..")
		m.page = m.session.Load(m.ctx)
		m.fresh = true
		erase()
	case openPage:
		if err := player.OpenPage(current.Episode.URL); err != nil {
			fail(err.Error())
		}
	case back:
		m.dispatch("Loading episodes..", nav.GoBack{})
	case quit:
		m.done = true
	}

	return nil
}
