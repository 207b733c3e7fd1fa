package main

import (
	"fmt"
	"io"

	"github.com/0xalexb/dotaccess"

	"github.com/scott-cotton/cli"
)

type setConfig struct {
	*cli.Command
	Format string `cli:"name=format desc='document format: yaml, json or toml'"`
	Write  bool   `cli:"name=w desc='write the result back to FILE instead of stdout'"`
	String bool   `cli:"name=s desc='treat VALUE as a plain string'"`
}

type appendConfig struct {
	*cli.Command
	Format  string `cli:"name=format desc='document format: yaml, json or toml'"`
	Write   bool   `cli:"name=w desc='write the result back to FILE instead of stdout'"`
	String  bool   `cli:"name=s desc='treat VALUE as a plain string'"`
	Promote bool   `cli:"name=promote desc='append to a mapping by wrapping it in a sequence'"`
}

// valueEdit is a write of one command-line value at one path.
type valueEdit struct {
	name     string
	format   string
	write    bool
	asString bool
	dataOpts []dotaccess.Option
	apply    func(data *dotaccess.Data, path string, value any) error
}

// SetCommand returns the set subcommand.
func SetCommand() *cli.Command {
	cfg := &setConfig{}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "set").
		WithSynopsis("set [-w] [-s] FILE PATH VALUE - Set PATH to VALUE").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *setConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	edit := valueEdit{
		name:     "set",
		format:   cfg.Format,
		write:    cfg.Write,
		asString: cfg.String,
		apply: func(data *dotaccess.Data, path string, value any) error {
			return data.Set(path, value)
		},
	}

	return edit.run(cc.Out, args)
}

// AppendCommand returns the append subcommand.
func AppendCommand() *cli.Command {
	cfg := &appendConfig{}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "append").
		WithSynopsis("append [-w] [-s] [-promote] FILE PATH VALUE - Append VALUE at PATH").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *appendConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	edit := valueEdit{
		name:     "append",
		format:   cfg.Format,
		write:    cfg.Write,
		asString: cfg.String,
		dataOpts: appendOptions(cfg.Promote),
		apply: func(data *dotaccess.Data, path string, value any) error {
			return data.Append(path, value)
		},
	}

	return edit.run(cc.Out, args)
}

func appendOptions(promote bool) []dotaccess.Option {
	if promote {
		return []dotaccess.Option{dotaccess.WithAppendPolicy(dotaccess.AppendPromote)}
	}

	return nil
}

func (e valueEdit) run(w io.Writer, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: usage: dotaccess %s FILE PATH VALUE", cli.ErrUsage, e.name)
	}

	value, err := parseValue(args[2], e.asString)
	if err != nil {
		return err
	}

	doc, err := loadDocument(args[0], e.format, e.dataOpts...)
	if err != nil {
		return err
	}

	err = e.apply(doc.data, args[1], value)
	if err != nil {
		return err
	}

	return doc.commit(w, e.write)
}
