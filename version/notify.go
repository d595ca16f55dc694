package version

import (
	"context"
	"fmt"

	"github.com/animeflow/animeflow/constant"
	"github.com/animeflow/animeflow/icon"
	"github.com/animeflow/animeflow/key"
	"github.com/animeflow/animeflow/style"
	"github.com/animeflow/animeflow/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer release than the running one exists.
// Lookup failures are silent.
func Notify(ctx context.Context) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(style.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/"+constant.Repository+"/releases/tag/v"+latest),
	)
}
