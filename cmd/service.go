package cmd

import (
	"fmt"

	"github.com/animeflow/animeflow/history"
	"github.com/animeflow/animeflow/key"
	"github.com/animeflow/animeflow/provider"
	"github.com/animeflow/animeflow/session"
	"github.com/spf13/viper"
)

// newService wires the configured source and the watch history into a session service.
func newService() (*session.Service, error) {
	p, ok := provider.Default()
	if !ok {
		return nil, fmt.Errorf("unknown source %q", viper.GetString(key.DefaultSources))
	}

	src, err := p.CreateSource()
	if err != nil {
		return nil, err
	}

	return session.NewService(src, history.Default(), session.DefaultOptions()), nil
}
