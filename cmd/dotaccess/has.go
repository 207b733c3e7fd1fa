package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

type hasConfig struct {
	*cli.Command
	Format string `cli:"name=format desc='document format: yaml, json or toml'"`
	Quiet  bool   `cli:"name=q desc='print nothing, report through the exit code'"`
}

// HasCommand returns the has subcommand.
func HasCommand() *cli.Command {
	cfg := &hasConfig{}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "has").
		WithSynopsis("has [-q] FILE PATH - Report whether PATH exists").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *hasConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) != 2 {
		return fmt.Errorf("%w: usage: dotaccess has FILE PATH", cli.ErrUsage)
	}

	doc, err := loadDocument(args[0], cfg.Format)
	if err != nil {
		return err
	}

	found, err := doc.data.Has(args[1])
	if err != nil {
		return err
	}

	if !cfg.Quiet {
		p := paletteFor(cc.Out)
		if found {
			fmt.Fprintln(cc.Out, p.yes("true"))
		} else {
			fmt.Fprintln(cc.Out, p.no("false"))
		}
	}

	if !found {
		return cli.ExitCodeErr(1)
	}

	return nil
}
