package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

type keysConfig struct {
	*cli.Command
	Format string `cli:"name=format desc='document format: yaml, json or toml'"`
}

// KeysCommand returns the keys subcommand.
func KeysCommand() *cli.Command {
	cfg := &keysConfig{}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "keys").
		WithSynopsis("keys FILE [PATH] - List the keys of a container with their kinds").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *keysConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: usage: dotaccess keys FILE [PATH]", cli.ErrUsage)
	}

	doc, err := loadDocument(args[0], cfg.Format)
	if err != nil {
		return err
	}

	view := doc.data
	if len(args) == 2 {
		view, err = doc.data.GetData(args[1])
		if err != nil {
			return err
		}
	}

	return renderKeys(cc.Out, view.Root(), paletteFor(cc.Out))
}
