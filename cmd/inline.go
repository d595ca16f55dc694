package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/animeflow/animeflow/icon"
	"github.com/animeflow/animeflow/query"
	"github.com/animeflow/animeflow/source"
	"github.com/animeflow/animeflow/style"
	json "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// encode writes v as indented JSON.
func encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

// schema prints the JSON schema of v when --schema is set and reports whether it did.
func schema(cmd *cobra.Command, v any) bool {
	if !lo.Must(cmd.Flags().GetBool("schema")) {
		return false
	}

	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		return filepath.Base(t.PkgPath()) + "." + t.Name()
	}

	handleErr(encode(cmd.OutOrStdout(), reflector.Reflect(v)))
	return true
}

// unlessSchema skips argument validation for --schema, which needs no input.
func unlessSchema(args cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if s, _ := cmd.Flags().GetBool("schema"); s {
			return nil
		}
		return args(cmd, a)
	}
}

// outputFlags registers the structured output flags of a scripting command.
func outputFlags(cmd *cobra.Command, what string) {
	cmd.Flags().BoolP("json", "j", false, "Format the command output as "+what)
	cmd.Flags().Bool("schema", false, "Print the JSON schema of the --json output and exit")
	cmd.SetOut(os.Stdout)
}

// printAnimes lists titles as plain lines or JSON.
func printAnimes(cmd *cobra.Command, animes []source.AnimeSummary) {
	if lo.Must(cmd.Flags().GetBool("json")) {
		handleErr(encode(cmd.OutOrStdout(), animes))
		return
	}

	for i, anime := range animes {
		cmd.Printf("%s %s\n", style.Faint(fmt.Sprintf("%2d", i)), anime.Title)
		cmd.Printf("   %s\n", style.Faint(anime.URL))
	}
}

func init() {
	rootCmd.AddCommand(searchCmd)

	outputFlags(searchCmd, "a JSON array")
}

// searchCmd prints the titles matching a query without starting an interface.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the site and print the matching titles",
	Args:  unlessSchema(cobra.MinimumNArgs(1)),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		if schema(cmd, []source.AnimeSummary{}) {
			return
		}

		service, err := newService()
		handleErr(err)

		q := strings.Join(args, " ")
		animes, err := service.Source().Search(cmd.Context(), q)
		handleErr(err)

		if q != "" {
			_ = query.Remember(q, 1)
		}
		printAnimes(cmd, animes)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	outputFlags(catalogCmd, "a JSON array")
}

// catalogCmd prints the titles featured on the landing page.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the titles featured on the site's landing page",
	Args:  unlessSchema(cobra.NoArgs),
	Run: func(cmd *cobra.Command, args []string) {
		if schema(cmd, []source.AnimeSummary{}) {
			return
		}

		service, err := newService()
		handleErr(err)

		animes, err := service.Source().Catalog(cmd.Context())
		handleErr(err)

		printAnimes(cmd, animes)
	},
}

func init() {
	rootCmd.AddCommand(episodesCmd)

	outputFlags(episodesCmd, "a JSON array")
}

// episodesCmd prints the episode list of an anime page.
var episodesCmd = &cobra.Command{
	Use:     "episodes [anime url]",
	Short:   "Print the episodes linked from an anime page",
	Args:    unlessSchema(cobra.ExactArgs(1)),
	Example: "  animeflow episodes https://animefire.plus/animes/sousou-no-frieren-todos-os-episodios",
	Run: func(cmd *cobra.Command, args []string) {
		if schema(cmd, []source.Episode{}) {
			return
		}

		service, err := newService()
		handleErr(err)

		episodes, err := service.Source().EpisodesOf(cmd.Context(), args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(encode(cmd.OutOrStdout(), episodes))
			return
		}

		for _, episode := range episodes {
			cmd.Printf("%s  %s\n", style.Bold(episode.String()), style.Faint(episode.URL))
		}
	},
}

func init() {
	rootCmd.AddCommand(videoCmd)

	outputFlags(videoCmd, "a JSON object")
}

// videoCmd resolves an episode page to its stream URL.
var videoCmd = &cobra.Command{
	Use:     "video [episode url]",
	Short:   "Resolve an episode page to its playable stream URL",
	Args:    unlessSchema(cobra.ExactArgs(1)),
	Example: "  animeflow video https://animefire.plus/animes/sousou-no-frieren/1 | xargs mpv",
	Run: func(cmd *cobra.Command, args []string) {
		if schema(cmd, &source.Video{}) {
			return
		}

		service, err := newService()
		handleErr(err)

		video, err := service.Source().VideoOf(cmd.Context(), args[0])
		if err != nil {
			handleErr(fmt.Errorf("%w (%s open %s)", err, icon.Get(icon.Link), args[0]))
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(encode(cmd.OutOrStdout(), video))
			return
		}

		cmd.Println(video.URL)
	},
}
