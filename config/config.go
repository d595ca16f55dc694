package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/animeflow/animeflow/constant"
	"github.com/animeflow/animeflow/filesystem"
	"github.com/animeflow/animeflow/where"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps setting keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// DotEnvFile is read from the working directory before the environment is bound.
const DotEnvFile = ".env"

// Setup layers defaults, the config file and the environment, lowest precedence first.
// A missing config file or .env file is not an error.
func Setup() error {
	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.AnimeFlow)
	viper.SetConfigType("toml")
	viper.AddConfigPath(where.Config())

	viper.SetTypeByDefaultValue(true)
	for k, f := range Default {
		viper.SetDefault(k, f.Value)
	}

	viper.SetEnvPrefix(constant.AnimeFlow)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, k := range EnvExposed {
		viper.MustBindEnv(k)
	}

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}
	return nil
}
