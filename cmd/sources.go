package cmd

import (
	"os"

	"github.com/animeflow/animeflow/key"
	"github.com/animeflow/animeflow/provider"
	"github.com/animeflow/animeflow/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesCmd provides a parent command for the scraping providers.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Inspect the built-in scraping providers",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Print only provider identifiers")
	sourcesListCmd.SetOut(os.Stdout)
}

// sourcesListCmd displays the registered scraping providers.
var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display the registered scraping providers",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))
		if !raw {
			cmd.Println(style.New().Foreground(style.Sapphire).Bold(true).Render("Builtin:"))
		}

		selected, _ := provider.Default()
		for _, p := range provider.Builtins() {
			if raw {
				cmd.Println(p.ID)
				continue
			}

			line := p.Name + " " + style.Faint("("+p.ID+")")
			if selected == p {
				line += " " + style.Fg(style.Green)("selected")
			}
			cmd.Println(line)
		}

		if !raw {
			cmd.Println()
			cmd.Println(style.Faint("Base URL: " + viper.GetString(key.SiteBaseURL)))
		}
	},
}
