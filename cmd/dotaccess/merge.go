package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/dotaccess"

	"github.com/scott-cotton/cli"
)

var errUnknownImportMode = errors.New("unknown import mode")

type mergeConfig struct {
	*cli.Command
	Format string `cli:"name=format desc='document format of FILE: yaml, json or toml'"`
	Write  bool   `cli:"name=w desc='write the result back to FILE instead of stdout'"`
	Mode   string `cli:"name=mode desc='replace, preserve or merge' default=replace"`
}

// MergeCommand returns the merge subcommand.
func MergeCommand() *cli.Command {
	cfg := &mergeConfig{Mode: "replace"}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "merge").
		WithSynopsis("merge [-w] [-mode replace|preserve|merge] FILE OTHER - Import OTHER into FILE").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *mergeConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) != 2 {
		return fmt.Errorf("%w: usage: dotaccess merge FILE OTHER", cli.ErrUsage)
	}

	mode, err := parseImportMode(cfg.Mode)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	doc, err := loadDocument(args[0], cfg.Format)
	if err != nil {
		return err
	}

	other, err := loadDocument(args[1], "")
	if err != nil {
		return err
	}

	err = doc.data.ImportData(other.data, dotaccess.WithImportMode(mode))
	if err != nil {
		return err
	}

	return doc.commit(cc.Out, cfg.Write)
}

func parseImportMode(name string) (dotaccess.ImportMode, error) {
	switch strings.ToLower(name) {
	case "", "replace":
		return dotaccess.ImportReplace, nil
	case "preserve":
		return dotaccess.ImportPreserve, nil
	case "merge":
		return dotaccess.ImportMerge, nil
	default:
		return 0, fmt.Errorf("%w: %q", errUnknownImportMode, name)
	}
}
