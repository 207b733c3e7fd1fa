package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

type exportConfig struct {
	*cli.Command
	Format string `cli:"name=format desc='document format of FILE: yaml, json or toml'"`
	To     string `cli:"name=to desc='output format: yaml, json or toml' default=json"`
	Path   string `cli:"name=path aliases=p desc='export only the container at this path'"`
}

// ExportCommand returns the export subcommand.
func ExportCommand() *cli.Command {
	cfg := &exportConfig{To: "json"}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "export").
		WithSynopsis("export [-to FORMAT] [-path PATH] FILE - Convert FILE to another format").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *exportConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) != 1 {
		return fmt.Errorf("%w: usage: dotaccess export FILE", cli.ErrUsage)
	}

	doc, err := loadDocument(args[0], cfg.Format)
	if err != nil {
		return err
	}

	codec, err := resolveCodec("", cfg.To)
	if err != nil {
		return err
	}

	view := doc.data
	if cfg.Path != "" {
		view, err = view.GetData(cfg.Path)
		if err != nil {
			return err
		}
	}

	out, err := codec.Encode(view)
	if err != nil {
		return fmt.Errorf("encoding as %s: %w", cfg.To, err)
	}

	_, err = cc.Out.Write(out)

	return err //nolint:wrapcheck // plain write to the command output
}
