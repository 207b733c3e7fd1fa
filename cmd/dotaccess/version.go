package main

import (
	"fmt"

	"github.com/0xalexb/dotaccess"

	"github.com/scott-cotton/cli"
)

// VersionCommand returns the version subcommand.
func VersionCommand() *cli.Command {
	return cli.NewCommand("version").
		WithSynopsis("version - Print build information").
		WithRun(func(cc *cli.Context, _ []string) error {
			fmt.Fprintf(cc.Out, "dotaccess %s (compiled %s)\n", dotaccess.Version, dotaccess.CompiledAt)

			return nil
		})
}
