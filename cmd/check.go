package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/animeflow/animeflow/constant"
	"github.com/animeflow/animeflow/icon"
	"github.com/animeflow/animeflow/key"
	"github.com/animeflow/animeflow/player"
	"github.com/animeflow/animeflow/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// CheckDependencies verifies that the configured media player can be started.
// Handing videos to the browser needs nothing installed.
func CheckDependencies() {
	name := viper.GetString(key.Player)
	if name == "" || name == player.Browser || (name == "iina" && runtime.GOOS == constant.Darwin) {
		return
	}

	if _, err := exec.LookPath(name); err != nil {
		printMissingDependencyError(name)
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install " + dep
	case constant.Linux:
		installCmd = "sudo apt install " + dep
	case constant.Windows:
		installCmd = "scoop install " + dep
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The configured player '%s' was not found in your PATH.", dep))

	suggestion := fmt.Sprintf(
		"\n\nTo install it, try running:\n  %s\n\nOr watch in the browser with:\n  %s",
		style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd),
		style.New().Foreground(style.AccentColor).Bold(true).Render(constant.AnimeFlow+" config set "+key.Player+" "+player.Browser),
	)

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
