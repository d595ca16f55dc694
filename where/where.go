// Package where resolves the files and directories animeflow keeps on disk.
// Directories are created on first use.
package where

import (
	"os"
	"path/filepath"

	"github.com/animeflow/animeflow/constant"
	"github.com/animeflow/animeflow/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "ANIMEFLOW_CONFIG_PATH"

func mkdir(elem ...string) string {
	path := filepath.Join(elem...)
	lo.Must0(filesystem.API().MkdirAll(path, 0o755))
	return path
}

// userDir joins the application name to a platform directory, or to fallback when the platform has none.
func userDir(platform func() (string, error), fallback string) string {
	base, err := platform()
	if err != nil {
		base = fallback
	}
	return mkdir(base, constant.AnimeFlow)
}

func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}
	return userDir(os.UserConfigDir, ".")
}

func Cache() string {
	return userDir(os.UserCacheDir, "cache")
}

func Logs() string {
	return mkdir(Config(), "logs")
}

// History is the watch history file.
func History() string {
	return filepath.Join(Config(), "watch_history.json")
}

// Queries holds the remembered search queries.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Version caches the latest release lookup.
func Version() string {
	return filepath.Join(Cache(), "version.json")
}
