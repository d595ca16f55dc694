package cmd

import (
	"context"
	"runtime"
	"strings"

	"github.com/animeflow/animeflow/constant"
	"github.com/animeflow/animeflow/style"
	"github.com/animeflow/animeflow/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// buildInfo describes the running binary.
type buildInfo struct {
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	Platform string `json:"platform"`
}

func currentBuild() buildInfo {
	return buildInfo{
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "print the version number only")
	outputFlags(versionCmd, "a JSON object")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build details",
	Run: func(cmd *cobra.Command, args []string) {
		info := currentBuild()
		if schema(cmd, info) {
			return
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("short")):
			cmd.Println(info.Version)
			return
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(encode(cmd.OutOrStdout(), info))
			return
		}

		defer version.Notify(context.Background())

		cmd.Println(style.Fg(style.Mauve)("▇▇▇ " + constant.AnimeFlow))
		cmd.Println()
		rows := [][2]string{
			{"Version", info.Version},
			{"Revision", info.Revision},
			{"Built at", info.BuiltAt},
			{"Built by", info.BuiltBy},
			{"Platform", info.Platform},
		}
		label := style.New().Faint(true).Width(10).Render
		for _, row := range rows {
			cmd.Printf("  %s %s\n", label(row[0]), style.Bold(row[1]))
		}
	},
}
