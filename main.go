// Package main is the entry point for the animeflow application.
package main

import (
	"github.com/animeflow/animeflow/cmd"
	"github.com/animeflow/animeflow/config"
	"github.com/animeflow/animeflow/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
