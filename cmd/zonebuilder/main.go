// Command zonebuilder builds clockboard zones and triangular ring spacings.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/zonebuilder/internal/cli"
	"github.com/roach88/zonebuilder/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCommandError)
	}

	cmd := cli.NewRootCommand(cfg)
	if err := cmd.Execute(); err != nil {
		// Subcommands report ExitErrors themselves; anything else (bad
		// flags, wrong arg count) has not been printed yet.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
