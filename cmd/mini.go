package cmd

import (
	"github.com/animeflow/animeflow/mini"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().BoolP("continue", "c", false, "Start from the continue-watching list")
}

// miniCmd launches the application in a lightweight, prompt-driven terminal interface.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Launch the application in a lightweight, prompt-driven terminal interface",
	Long:  `Browse, search and watch through plain terminal prompts instead of the full-screen interface.`,
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		service, err := newService()
		handleErr(err)

		options := mini.Options{
			Service:  service,
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}
		handleErr(mini.Run(cmd.Context(), &options))
	},
}
