package tui

import (
	"fmt"

	"github.com/animeflow/animeflow/icon"
	"github.com/animeflow/animeflow/key"
	"github.com/animeflow/animeflow/log"
	"github.com/animeflow/animeflow/nav"
	"github.com/animeflow/animeflow/query"
	"github.com/animeflow/animeflow/session"
	"github.com/animeflow/animeflow/source"
	"github.com/animeflow/animeflow/util"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case error:
		b.stopLoading()
		b.raiseError(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case pageMsg:
		return b, tea.Batch(cmd, b.applyPage(msg.page))
	case playedMsg:
		if msg.err != nil {
			log.Warn(msg.err)
			b.playerStatus = fmt.Sprintf("%s Could not start the player: %s", icon.Get(icon.Fail), msg.err)
		} else {
			b.playerStatus = fmt.Sprintf("%s Playing", icon.Get(icon.Play))
		}
		return b, cmd
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		// Input Guard: one navigation at a time.
		if b.busy {
			return b, cmd
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case loadingState:
		b.spinnerC, stateCmd = b.spinnerC.Update(msg)
	case errorState:
		_, stateCmd = b.updateError(msg)
	case homeState:
		_, stateCmd = b.updateHome(msg)
	case searchState:
		_, stateCmd = b.updateSearch(msg)
	case resultsState:
		_, stateCmd = b.updateResults(msg)
	case animeState:
		_, stateCmd = b.updateAnime(msg)
	case playerState:
		_, stateCmd = b.updatePlayer(msg)
	}

	return b, tea.Batch(cmd, stateCmd)
}

// openSearch shows the search overlay above the current screen.
func (b *statefulBubble) openSearch() tea.Cmd {
	b.inputC.SetValue(b.page.Query)
	b.inputC.SetCursor(len(b.inputC.Value()))
	b.searchSuggestion = mo.None[string]()
	b.newState(searchState)
	return tea.Batch(b.inputC.Focus(), textinput.Blink)
}

// selectedAnime returns the title under the cursor of l.
func selectedAnime(l *list.Model) (source.AnimeSummary, bool) {
	item, ok := l.SelectedItem().(*listItem)
	if !ok {
		return source.AnimeSummary{}, false
	}
	return item.anime()
}

// updateList forwards msg to l, wrapping the cursor at both ends.
func (b *statefulBubble) updateList(l *list.Model, msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		n := len(l.Items())
		switch {
		case bubblesKey.Matches(msg, b.keymap.up) && n > 0 && l.Index() == 0:
			l.Select(n - 1)
			return nil
		case bubblesKey.Matches(msg, b.keymap.down) && n > 0 && l.Index() == n-1:
			l.Select(0)
			return nil
		}
	}

	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return cmd
}

func (b *statefulBubble) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.search):
			return b, b.openSearch()
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if anime, ok := selectedAnime(&b.homeC); ok {
				return b, b.dispatch(fmt.Sprintf("Loading episodes for %s...", anime.Title), nav.SelectAnime{Anime: anime})
			}
		case bubblesKey.Matches(msg, b.keymap.remove):
			if item, ok := b.homeC.SelectedItem().(*listItem); ok {
				if c, ok := item.internal.(*continued); ok {
					return b, b.forget(c.anime)
				}
			}
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if anime, ok := selectedAnime(&b.homeC); ok {
				return b, b.openPage(anime.URL)
			}
		case bubblesKey.Matches(msg, b.keymap.replay):
			return b, b.reload("Refreshing...")
		}
	}

	return b, b.updateList(&b.homeC, msg)
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			value := b.inputC.Value()
			b.inputC.Blur()
			if value != "" {
				go util.Ignore(func() error { return query.Remember(value, 1) })
			}
			return b, b.dispatch(fmt.Sprintf("Searching for %s...", value), nav.SubmitSearch{Query: value})
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.SetCursor(len(b.inputC.Value()))
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.Blur()
			b.previousState()
			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if b.inputC.Value() != "" && viper.GetBool(key.SearchShowQuerySuggestions) {
		if suggestion, ok := query.Suggest(b.inputC.Value()).Get(); ok && suggestion != b.inputC.Value() {
			b.searchSuggestion = mo.Some(suggestion)
		} else {
			b.searchSuggestion = mo.None[string]()
		}
	} else if b.searchSuggestion.IsPresent() {
		b.searchSuggestion = mo.None[string]()
	}

	return b, cmd
}

func (b *statefulBubble) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.search):
			return b, b.openSearch()
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if anime, ok := selectedAnime(&b.resultsC); ok {
				go util.Ignore(func() error { return query.Remember(anime.Title, 2) })
				return b, b.dispatch(fmt.Sprintf("Loading episodes for %s...", anime.Title), nav.SelectAnime{Anime: anime})
			}
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if anime, ok := selectedAnime(&b.resultsC); ok {
				return b, b.openPage(anime.URL)
			}
		case bubblesKey.Matches(msg, b.keymap.back):
			return b, b.dispatch("Loading...", nav.GoBack{})
		}
	}

	return b, b.updateList(&b.resultsC, msg)
}

func (b *statefulBubble) updateAnime(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.play):
			item, ok := b.episodesC.SelectedItem().(*listItem)
			if !ok {
				break
			}
			episode := item.internal.(session.EpisodeItem).Episode
			return b, b.dispatch(
				fmt.Sprintf("Resolving %s...", episode),
				nav.SelectEpisode{Episode: episode, Episodes: b.page.EpisodeList()},
			)
		case bubblesKey.Matches(msg, b.keymap.openURL):
			return b, b.openPage(b.page.Anime.URL)
		case bubblesKey.Matches(msg, b.keymap.back):
			return b, b.dispatch("Loading...", nav.GoBack{})
		}
	}

	return b, b.updateList(&b.episodesC, msg)
}

func (b *statefulBubble) updatePlayer(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.nextEp) && b.page.HasNext:
			return b, b.dispatch("Resolving next episode...", nav.NavigateEpisode{Direction: nav.Next})
		case bubblesKey.Matches(msg, b.keymap.prevEp) && b.page.HasPrevious:
			return b, b.dispatch("Resolving previous episode...", nav.NavigateEpisode{Direction: nav.Previous})
		case bubblesKey.Matches(msg, b.keymap.replay):
			return b, b.reload(fmt.Sprintf("Resolving %s...", b.page.Episode))
		case bubblesKey.Matches(msg, b.keymap.openURL):
			return b, b.openPage(b.page.Episode.URL)
		case bubblesKey.Matches(msg, b.keymap.back):
			return b, b.dispatch("Loading episodes...", nav.GoBack{})
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}
	return b, nil
}
