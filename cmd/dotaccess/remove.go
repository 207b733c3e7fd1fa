package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

type removeConfig struct {
	*cli.Command
	Format string `cli:"name=format desc='document format: yaml, json or toml'"`
	Write  bool   `cli:"name=w desc='write the result back to FILE instead of stdout'"`
}

// RemoveCommand returns the remove subcommand.
func RemoveCommand() *cli.Command {
	cfg := &removeConfig{}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "remove").
		WithSynopsis("remove [-w] FILE PATH... - Remove each PATH").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *removeConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) < 2 {
		return fmt.Errorf("%w: usage: dotaccess remove FILE PATH...", cli.ErrUsage)
	}

	doc, err := loadDocument(args[0], cfg.Format)
	if err != nil {
		return err
	}

	for _, path := range args[1:] {
		err = doc.data.Remove(path)
		if err != nil {
			return err
		}
	}

	return doc.commit(cc.Out, cfg.Write)
}
