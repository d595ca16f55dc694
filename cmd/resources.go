package cmd

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/animeflow/animeflow/config"
	"github.com/animeflow/animeflow/icon"
	"github.com/animeflow/animeflow/style"
	"github.com/animeflow/animeflow/util"
	"github.com/animeflow/animeflow/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// resource is a file or directory owned by animeflow on the local disk.
type resource struct {
	name      string
	path      func() string
	clearable bool
}

var resources = []resource{
	{"config", config.Path, false},
	{"history", where.History, true},
	{"logs", where.Logs, true},
	{"cache", where.Cache, true},
	{"queries", where.Queries, true},
}

func resourceNames(clearable bool) []string {
	return lo.FilterMap(resources, func(r resource, _ int) (string, bool) {
		return r.name, !clearable || r.clearable
	})
}

func findResource(name string) (resource, error) {
	r, ok := lo.Find(resources, func(r resource) bool {
		return r.name == strings.ToLower(name)
	})
	if !ok {
		return r, fmt.Errorf("unknown resource %q, expected one of %s", name, strings.Join(resourceNames(false), ", "))
	}
	return r, nil
}

func init() {
	rootCmd.AddCommand(whereCmd)
	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:       "where [resource]",
	Short:     "Show where animeflow keeps its files",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: resourceNames(false),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			r, err := findResource(args[0])
			handleErr(err)
			cmd.Println(r.path())
			return
		}

		label := style.New().Bold(true).Foreground(style.Lavender).Width(8).Render
		for _, r := range resources {
			cmd.Printf("%s %s\n", label(r.name), r.path())
		}
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolP("all", "a", false, "clear "+strings.Join(resourceNames(true), ", "))
}

var clearCmd = &cobra.Command{
	Use:       "clear [resource...]",
	Short:     "Delete cached data, logs or the watch history",
	Example:   "  animeflow clear cache queries\n  animeflow clear --all",
	ValidArgs: resourceNames(true),
	Run: func(cmd *cobra.Command, args []string) {
		names := args
		if lo.Must(cmd.Flags().GetBool("all")) {
			names = resourceNames(true)
		}
		if len(names) == 0 {
			handleErr(cmd.Help())
			return
		}

		names = lo.Uniq(names)
		sort.Strings(names)
		for _, name := range names {
			r, err := findResource(name)
			handleErr(err)
			if !r.clearable {
				handleErr(fmt.Errorf("%s cannot be cleared, use `config delete`", r.name))
			}

			erase := util.PrintErasable(fmt.Sprintf("%s clearing %s", icon.Get(icon.Progress), r.name))
			err = util.Delete(r.path())
			erase()
			if !errors.Is(err, os.ErrNotExist) {
				handleErr(err)
			}
			success("%s cleared", util.Capitalize(r.name))
		}
	},
}
