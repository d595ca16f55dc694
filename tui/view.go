package tui

import (
	"fmt"
	"strings"

	"github.com/animeflow/animeflow/icon"
	"github.com/animeflow/animeflow/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case homeState:
		output = listExtraPaddingStyle.Render(b.homeC.View())
	case searchState:
		output = b.viewSearch()
	case resultsState:
		output = listExtraPaddingStyle.Render(b.resultsC.View())
	case animeState:
		output = listExtraPaddingStyle.Render(b.episodesC.View())
	case playerState:
		output = b.viewPlayer()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Search Anime"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok {
		lines = append(lines, "", style.Faint(fmt.Sprintf("%s %s (tab)", icon.Get(icon.Search), suggestion)))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewPlayer() string {
	page := b.page

	position := fmt.Sprintf("%d / %d", page.Episode.Index+1, len(page.Episodes))
	lines := []string{
		style.Title("Now Playing"),
		"",
		style.Truncate(b.width)(style.Fg(style.Mauve)(page.Anime.Title)),
		style.Truncate(b.width)(fmt.Sprintf("%s %s  %s", icon.Get(icon.Progress), page.Episode, style.Faint(position))),
		"",
		wrap.String(b.playerStatus, b.width),
	}

	if page.Fallback != "" {
		lines = append(lines, "", style.Faint(style.Truncate(b.width)(page.Fallback)))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorBody := errorStyle.Render(b.lastError.Error())
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
