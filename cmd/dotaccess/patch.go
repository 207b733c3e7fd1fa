package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/0xalexb/dotaccess/patch"

	"github.com/scott-cotton/cli"
)

type patchConfig struct {
	*cli.Command
	Format string `cli:"name=format desc='document format: yaml, json or toml'"`
	Write  bool   `cli:"name=w desc='write the result back to FILE instead of stdout'"`
	Merge  bool   `cli:"name=merge aliases=m desc='treat PATCH as an RFC 7396 merge patch'"`
}

// PatchCommand returns the patch subcommand.
func PatchCommand() *cli.Command {
	cfg := &patchConfig{}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "patch").
		WithSynopsis("patch [-w] [-merge] FILE PATCH - Apply a JSON patch file (- for stdin)").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *patchConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) != 2 {
		return fmt.Errorf("%w: usage: dotaccess patch FILE PATCH", cli.ErrUsage)
	}

	ops, err := readPatch(cc.In, args[1])
	if err != nil {
		return err
	}

	doc, err := loadDocument(args[0], cfg.Format)
	if err != nil {
		return err
	}

	apply := patch.Apply
	if cfg.Merge {
		apply = patch.Merge
	}

	patched, err := apply(doc.data, ops)
	if err != nil {
		return err
	}

	doc.data = patched

	return doc.commit(cc.Out, cfg.Write)
}

func readPatch(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		ops, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading patch from stdin: %w", err)
		}

		return ops, nil
	}

	ops, err := os.ReadFile(filepath.Clean(name)) // #nosec G304 -- path given on the command line
	if err != nil {
		return nil, fmt.Errorf("reading patch: %w", err)
	}

	return ops, nil
}
