package cmd

import (
	"errors"
	"fmt"

	"github.com/animeflow/animeflow/history"
	"github.com/animeflow/animeflow/icon"
	"github.com/animeflow/animeflow/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func completionHistoryTitles(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(history.Default().Load()), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

// historyCmd groups the operations on the local watch history.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and edit the local watch history",
}

func init() {
	historyCmd.AddCommand(historyListCmd)

	historyListCmd.Flags().IntP("limit", "n", 0, "Show only the n most recent titles")
	outputFlags(historyListCmd, "a JSON array")
}

// historyListCmd prints the saved progress, most recent first.
var historyListCmd = &cobra.Command{
	Use:     "list",
	Short:   "Print the saved progress, most recent first",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		if schema(cmd, []history.Entry{}) {
			return
		}

		entries := history.Default().Recent(lo.Must(cmd.Flags().GetInt("limit")))

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(encode(cmd.OutOrStdout(), entries))
			return
		}

		if len(entries) == 0 {
			cmd.Println(style.Faint("Nothing watched yet"))
			return
		}

		for _, entry := range entries {
			cmd.Printf(
				"%s %s\n",
				style.Fg(style.Mauve)(entry.AnimeTitle),
				style.Faint(fmt.Sprintf("episode %d, %s", entry.LastEpisode, entry.Timestamp)),
			)
		}
	},
}

func init() {
	historyCmd.AddCommand(historyRemoveCmd)
}

// historyRemoveCmd forgets the progress of one title.
var historyRemoveCmd = &cobra.Command{
	Use:               "remove [title]",
	Short:             "Forget the saved progress of a title",
	Aliases:           []string{"rm"},
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionHistoryTitles,
	Run: func(cmd *cobra.Command, args []string) {
		err := history.Default().Remove(args[0])
		if errors.Is(err, history.ErrUnknownTitle) {
			handleErr(fmt.Errorf("%s is not in the history", style.Fg(style.Yellow)(args[0])))
		}
		handleErr(err)

		fmt.Printf("%s removed %s\n", style.Fg(style.Green)(icon.Get(icon.Success)), style.Fg(style.Mauve)(args[0]))
	},
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
}

// historyClearCmd forgets every saved progress entry.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all saved progress",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(history.Default().Clear())
		fmt.Printf("%s history cleared\n", style.Fg(style.Green)(icon.Get(icon.Success)))
	},
}
