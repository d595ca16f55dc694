package cmd

import (
	"time"

	"github.com/animeflow/animeflow/api"
	"github.com/animeflow/animeflow/key"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "TCP address to listen on")
	lo.Must0(viper.BindPFlag(key.ServerAddr, serveCmd.Flags().Lookup("addr")))

	serveCmd.Flags().StringSlice("origins", nil, "browser origins allowed to call the API (default none)")
	lo.Must0(viper.BindPFlag(key.ServerAllowedOrigins, serveCmd.Flags().Lookup("origins")))

	serveCmd.Flags().Bool("access-log", false, "Print one line per request")
	serveCmd.Flags().Bool("quiet", false, "Do not print the start banner")
}

// serveCmd exposes the catalog, search, episode, video and history operations over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scraping and history operations as a JSON HTTP API",
	Example: "  animeflow serve --addr 127.0.0.1:8085\n" +
		"  curl 'http://127.0.0.1:8085/api/search?q=frieren'",
	Run: func(cmd *cobra.Command, args []string) {
		service, err := newService()
		handleErr(err)

		handleErr(api.Serve(cmd.Context(), service, &api.ServerConfig{
			ShowStartBanner: !lo.Must(cmd.Flags().GetBool("quiet")),
			HttpAddr:        viper.GetString(key.ServerAddr),
			AllowedOrigins:  viper.GetStringSlice(key.ServerAllowedOrigins),
			AccessLog:       lo.Must(cmd.Flags().GetBool("access-log")),
			ShutdownTimeout: 5 * time.Second,
		}))
	},
}
