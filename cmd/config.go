package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/animeflow/animeflow/config"
	"github.com/animeflow/animeflow/filesystem"
	"github.com/animeflow/animeflow/icon"
	"github.com/animeflow/animeflow/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func completeKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	keys := lo.Keys(config.Default)
	sort.Strings(keys)
	return keys, cobra.ShellCompDirectiveNoFileComp
}

func success(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(style.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	outputFlags(configInfoCmd, "a JSON array")
}

var configInfoCmd = &cobra.Command{
	Use:               "info [key...]",
	Short:             "Describe settings with their current and default values",
	ValidArgsFunction: completeKeys,
	Run: func(cmd *cobra.Command, args []string) {
		fields := lo.Values(config.Default)
		if len(args) > 0 {
			fields = lo.Map(args, func(k string, _ int) config.Field {
				field, err := config.Lookup(k)
				handleErr(err)
				return field
			})
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if schema(cmd, fields) {
			return
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(encode(cmd.OutOrStdout(), fields))
			return
		}

		for i, field := range fields {
			if i > 0 {
				cmd.Println()
			}
			cmd.Print(field.Pretty())
		}
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the current value of a setting",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := config.Lookup(args[0])
		handleErr(err)
		fmt.Println(viper.Get(field.Key))
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value...>",
	Short:             "Change a setting and save it to the config file",
	Example:           "  animeflow config set player.default vlc\n  animeflow config set server.allowed_origins http://localhost:5173 http://127.0.0.1:5173",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completeKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := config.Lookup(args[0])
		handleErr(err)

		value, err := field.Parse(args[1:])
		handleErr(err)

		viper.Set(field.Key, value)
		handleErr(config.Write())
		success("%s = %s", style.Fg(style.Mauve)(field.Key), style.Fg(style.Yellow)(fmt.Sprint(value)))
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().BoolP("all", "a", false, "reset every setting")
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key...]",
	Short:             "Restore settings to their defaults",
	ValidArgsFunction: completeKeys,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		if all == (len(args) > 0) {
			handleErr(fmt.Errorf("pass either keys or --all"))
		}

		fields := lo.Values(config.Default)
		if !all {
			fields = lo.Map(args, func(k string, _ int) config.Field {
				field, err := config.Lookup(k)
				handleErr(err)
				return field
			})
		}

		for _, field := range fields {
			viper.Set(field.Key, field.Value)
		}
		handleErr(config.Write())
		success("restored %s", style.Fg(style.Mauve)(lo.Ternary(all, "all settings", fmt.Sprint(args))))
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the config file",
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		err := filesystem.API().Remove(config.Path())
		if err != nil && !os.IsNotExist(err) {
			handleErr(err)
		}
		success("removed %s", config.Path())
	},
}
