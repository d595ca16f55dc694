// Package cmd implements the command-line interface for animeflow.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/animeflow/animeflow/constant"
	"github.com/animeflow/animeflow/icon"
	"github.com/animeflow/animeflow/key"
	"github.com/animeflow/animeflow/log"
	"github.com/animeflow/animeflow/provider"
	"github.com/animeflow/animeflow/query"
	"github.com/animeflow/animeflow/style"
	"github.com/animeflow/animeflow/tui"
	"github.com/animeflow/animeflow/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Persist playback progress to the local watch history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnWatch, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.PersistentFlags().StringP("source", "S", "", "Specify the source to scrape")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("source", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(provider.Builtins(), func(p *provider.Provider, _ int) string {
			return p.ID
		}), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.DefaultSources, rootCmd.PersistentFlags().Lookup("source")))

	rootCmd.PersistentFlags().StringP("player", "p", "", "Media player for resolved videos (mpv, vlc, iina or browser)")
	lo.Must0(viper.BindPFlag(key.Player, rootCmd.PersistentFlags().Lookup("player")))

	lo.Must0(rootCmd.RegisterFlagCompletionFunc("player", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"mpv", "vlc", "iina", "browser"}, cobra.ShellCompDirectiveNoFileComp
	}))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(context.Background())
	})
}

// rootCmd defines the entry point for the animeflow application.
var rootCmd = &cobra.Command{
	Use:   constant.AnimeFlow + " [query]",
	Short: "A terminal client for browsing and watching anime from AnimeFire",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(style.Maroon).Render("    - A terminal client for browsing and watching anime from AnimeFire"),
	Args: cobra.ArbitraryArgs,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies()

		service, err := newService()
		handleErr(err)

		options := tui.Options{
			Service: service,
			Query:   strings.Join(args, " "),
		}
		handleErr(tui.Run(cmd.Context(), &options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
