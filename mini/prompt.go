package mini

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/animeflow/animeflow/icon"
	"github.com/animeflow/animeflow/query"
	"github.com/animeflow/animeflow/style"
	"github.com/animeflow/animeflow/util"
	"github.com/charmbracelet/lipgloss"
)

// bind is a fixed menu entry shown after the listed items.
type bind struct {
	name string
}

func (b *bind) String() string {
	return b.name
}

var (
	search   = &bind{"Search"}
	back     = &bind{"Back"}
	next     = &bind{"Next episode"}
	prev     = &bind{"Previous episode"}
	replay   = &bind{"Replay"}
	openPage = &bind{"Open episode page"}
	quit     = &bind{"Quit"}
)

func (b *bind) eq(other *bind) bool {
	return b == other
}

func title(t string) {
	fmt.Println(lipgloss.NewStyle().Foreground(style.AccentColor).Bold(true).Render(t))
}

func fail(t string) {
	fmt.Println(icon.Get(icon.Fail) + " " + style.Faint(t))
}

func progress(t string) (eraser func()) {
	return util.PrintErasable(icon.Get(icon.Progress) + " " + style.Faint(t))
}

// menu asks for one of items or of the trailing binds. Exactly one of the
// returned values is set.
func menu[T fmt.Stringer](items []T, binds ...*bind) (*bind, T, error) {
	var zero T

	options := make([]string, 0, len(items)+len(binds))
	for _, item := range items {
		options = append(options, util.Ellipsis(item.String(), truncateAt))
	}
	for _, b := range binds {
		options = append(options, style.Faint(b.name))
	}

	var choice int
	err := survey.AskOne(&survey.Select{
		Message:  ">",
		Options:  options,
		PageSize: 15,
	}, &choice)
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return quit, zero, nil
		}
		return nil, zero, err
	}

	if choice < len(items) {
		return nil, items[choice], nil
	}
	return binds[choice-len(items)], zero, nil
}

// getInput reads a line, offering remembered queries as completions.
func getInput(validate func(string) bool) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{
		Message: ">",
		Suggest: query.SuggestMany,
	}, &answer, survey.WithValidator(func(ans interface{}) error {
		if s, ok := ans.(string); ok && validate(s) {
			return nil
		}
		return errors.New("invalid input")
	}))

	if errors.Is(err, terminal.InterruptErr) {
		return "", errInterrupted
	}
	return answer, err
}
