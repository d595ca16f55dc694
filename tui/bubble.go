package tui

import (
	"context"
	"time"

	"github.com/animeflow/animeflow/internal/ui"
	"github.com/animeflow/animeflow/session"
	"github.com/animeflow/animeflow/style"
	"github.com/animeflow/animeflow/util"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/mo"
)

// statefulBubble encapsulates the comprehensive application state, including component models and workflow tracking.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	loading       bool
	busy          bool // one dispatch at a time

	keymap *statefulKeymap

	// components
	spinnerC  spinner.Model
	inputC    textinput.Model
	homeC     list.Model
	resultsC  list.Model
	episodesC list.Model
	helpC     help.Model

	ctx     context.Context
	session *session.Session
	page    session.Page

	progressStatus string
	playerStatus   string
	lastError      error

	width, height    int
	searchSuggestion mo.Option[string]
	notifier         *ui.Model

	options *Options
}

// raiseError dispatches a terminal error and transitions the application to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

// setState performs a synchronous transition of both the application workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering the screen it was entered from.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if b.state != loadingState && b.state != errorState {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

// previousState restores the application to its immediate predecessor in the navigation stack.
func (b *statefulBubble) previousState() {
	if previous, ok := b.statesHistory.Pop().Get(); ok {
		b.setState(previous)
		return
	}
	b.setState(stateOf(b.page.View))
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	for _, l := range []*list.Model{&b.homeC, &b.resultsC, &b.episodesC} {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
	b.inputC.Width = listWidth
}

func (b *statefulBubble) startLoading(status string) tea.Cmd {
	b.loading = true
	b.busy = true
	b.progressStatus = status
	b.setState(loadingState)
	return b.spinnerC.Tick
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
	b.busy = false
	b.progressStatus = ""
}

// newBubble performs a complete initialization of the application's primary UI model.
func newBubble(ctx context.Context, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		ctx:           ctx,
		session:       options.Service.NewSession(),
		notifier:      &ui.Model{},
		options:       options,
	}

	makeList := func(title string, bg lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(bg).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetShowFilter(false)
		listC.SetFilteringEnabled(false)
		return listC
	}

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "Pesquisar animes..."
	bubble.inputC.CharLimit = 80
	bubble.inputC.Prompt = "> "

	bubble.helpC = help.New()

	bubble.homeC = makeList("AnimeFlow", style.AccentColor)
	bubble.homeC.SetStatusBarItemName("anime", "anime")

	bubble.resultsC = makeList("Results", style.Lavender)
	bubble.resultsC.SetStatusBarItemName("anime", "anime")

	bubble.episodesC = makeList("Episodes", style.Peach)
	bubble.episodesC.SetStatusBarItemName("episode", "episodes")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
