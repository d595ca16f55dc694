package cmd

import (
	"os"
	"sort"

	"github.com/animeflow/animeflow/config"
	"github.com/animeflow/animeflow/style"
	"github.com/animeflow/animeflow/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// envVar is an environment variable animeflow reads at startup.
type envVar struct {
	Name  string `json:"name"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value"`
	Set   bool   `json:"set"`
}

func envVars() []envVar {
	vars := lo.Map(config.EnvExposed, func(k string, _ int) envVar {
		field := config.Default[k]
		value, ok := os.LookupEnv(field.Env())
		return envVar{Name: field.Env(), Key: k, Value: value, Set: ok}
	})

	value, ok := os.LookupEnv(where.EnvConfigPath)
	vars = append(vars, envVar{Name: where.EnvConfigPath, Value: value, Set: ok})

	sort.Slice(vars, func(i, j int) bool {
		return vars[i].Name < vars[j].Name
	})
	return vars
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set", "s", false, "only variables that are set")
	outputFlags(envCmd, "a JSON array")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables animeflow understands",
	Long:  "List the environment variables animeflow understands. Variables from a .env file in the working directory are loaded first.",
	Run: func(cmd *cobra.Command, args []string) {
		vars := envVars()
		if schema(cmd, vars) {
			return
		}

		if lo.Must(cmd.Flags().GetBool("set")) {
			vars = lo.Filter(vars, func(v envVar, _ int) bool { return v.Set })
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(encode(cmd.OutOrStdout(), vars))
			return
		}

		name := style.New().Bold(true).Foreground(style.Mauve).Render
		for _, v := range vars {
			value := lo.Ternary(v.Set, style.Fg(style.Green)(v.Value), style.Faint("unset"))
			cmd.Printf("%s=%s\n", name(v.Name), value)
		}
	},
}
