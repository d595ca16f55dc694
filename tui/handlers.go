package tui

import (
	"fmt"

	"github.com/animeflow/animeflow/icon"
	"github.com/animeflow/animeflow/internal/ui"
	"github.com/animeflow/animeflow/log"
	"github.com/animeflow/animeflow/nav"
	"github.com/animeflow/animeflow/player"
	"github.com/animeflow/animeflow/session"
	"github.com/animeflow/animeflow/source"
	"github.com/animeflow/animeflow/util"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

// pageMsg delivers the page of the view reached after a dispatch.
type pageMsg struct {
	page session.Page
}

// playedMsg reports the outcome of handing a stream to the player.
type playedMsg struct {
	err error
}

// dispatch runs action through the session off the event loop.
func (b *statefulBubble) dispatch(status string, action nav.Action) tea.Cmd {
	ctx, current := b.ctx, b.session
	return tea.Batch(b.startLoading(status), func() tea.Msg {
		return pageMsg{page: current.Dispatch(ctx, action)}
	})
}

// reload rebuilds the page of the current view. In the player it resolves the video again.
func (b *statefulBubble) reload(status string) tea.Cmd {
	ctx, current := b.ctx, b.session
	return tea.Batch(b.startLoading(status), func() tea.Msg {
		return pageMsg{page: current.Load(ctx)}
	})
}

// play hands the resolved video of the page to the player.
func (b *statefulBubble) play(page session.Page) tea.Cmd {
	video, ok := page.Video.Get()
	if !ok {
		return nil
	}

	title := fmt.Sprintf("%s - %s", page.Anime.Title, page.Episode)
	return func() tea.Msg {
		return playedMsg{err: player.Play(video.URL, title)}
	}
}

// openPage opens link in the browser and reports failures as a notification.
func (b *statefulBubble) openPage(link string) tea.Cmd {
	if link == "" {
		return nil
	}

	return func() tea.Msg {
		if err := player.OpenPage(link); err != nil {
			log.Warn(err)
			return ui.NotificationMsg(fmt.Sprintf("%s Could not open the browser", icon.Get(icon.Fail)))
		}
		return ui.NotificationMsg(fmt.Sprintf("%s Opened %s", icon.Get(icon.Link), util.Ellipsis(link, 50)))
	}
}

// applyPage renders page into the components of its view.
func (b *statefulBubble) applyPage(page session.Page) tea.Cmd {
	b.page = page
	b.stopLoading()
	b.statesHistory.Clear()
	b.setState(stateOf(page.View))

	var cmds []tea.Cmd
	switch page.View {
	case nav.Home:
		items := make([]list.Item, 0, len(page.Continue)+len(page.Catalog))
		for _, anime := range page.Continue {
			items = append(items, &listItem{internal: &continued{anime: anime}})
		}
		for _, anime := range page.Catalog {
			items = append(items, &listItem{internal: anime})
		}
		cmds = append(cmds, b.homeC.SetItems(items), b.homeC.NewStatusMessage(""))
		b.homeC.ResetSelected()

	case nav.SearchResults:
		b.resultsC.Title = fmt.Sprintf("Results for %q", util.Ellipsis(page.Query, 40))
		items := lo.Map(page.Results, func(anime source.AnimeSummary, _ int) list.Item {
			return &listItem{internal: anime}
		})
		cmds = append(cmds, b.resultsC.SetItems(items), b.resultsC.NewStatusMessage(page.Message))
		b.resultsC.ResetSelected()

	case nav.AnimeDetail:
		b.episodesC.Title = util.Ellipsis(page.Anime.Title, 60)
		items := lo.Map(page.Episodes, func(episode session.EpisodeItem, _ int) list.Item {
			return &listItem{internal: episode}
		})
		cmds = append(cmds, b.episodesC.SetItems(items), b.episodesC.NewStatusMessage(page.Message))
		b.episodesC.Select(b.nextEpisodeIndex(page))

	case nav.Player:
		if page.Video.IsPresent() {
			b.playerStatus = fmt.Sprintf("%s Starting player...", icon.Get(icon.Play))
			cmds = append(cmds, b.play(page))
		} else {
			b.playerStatus = fmt.Sprintf("%s %s, press o to open the episode page", icon.Get(icon.Fail), page.Message)
		}
	}

	return tea.Batch(cmds...)
}

// nextEpisodeIndex points the cursor at the episode to continue with.
func (b *statefulBubble) nextEpisodeIndex(page session.Page) int {
	_, index, ok := lo.FindIndexOf(page.Episodes, func(e session.EpisodeItem) bool {
		return e.Status == session.Next
	})
	if !ok {
		return 0
	}
	return index
}

// forget drops the continue-watching entry of anime and reloads the home view.
func (b *statefulBubble) forget(anime source.AnimeSummary) tea.Cmd {
	if err := b.options.Service.History().Remove(anime.Title); err != nil {
		return func() tea.Msg { return err }
	}

	return tea.Batch(
		b.reload("Refreshing..."),
		ui.Notify(fmt.Sprintf("%s Removed %s from history", icon.Get(icon.Success), anime.Title)),
	)
}
