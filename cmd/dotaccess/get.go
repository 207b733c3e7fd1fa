package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

type getConfig struct {
	*cli.Command
	Format string `cli:"name=format desc='document format: yaml, json or toml'"`
	JSON   bool   `cli:"name=json aliases=j desc='print the value as JSON'"`
}

// GetCommand returns the get subcommand.
func GetCommand() *cli.Command {
	cfg := &getConfig{}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "get").
		WithSynopsis("get [-json] FILE PATH - Print the value at PATH").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *getConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) != 2 {
		return fmt.Errorf("%w: usage: dotaccess get FILE PATH", cli.ErrUsage)
	}

	doc, err := loadDocument(args[0], cfg.Format)
	if err != nil {
		return err
	}

	v, err := doc.data.Get(args[1])
	if err != nil {
		return err
	}

	return renderValue(cc.Out, v, cfg.JSON)
}
