package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/dotaccess"
	"github.com/0xalexb/dotaccess/httpapi"
	"github.com/0xalexb/dotaccess/logging"
	"github.com/0xalexb/dotaccess/source"

	"github.com/scott-cotton/cli"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

const serveName = "document"

type serveConfig struct {
	*cli.Command
	Addr      string `cli:"name=addr desc='TCP listen address' default=:8080"`
	Section   string `cli:"name=section desc='serve only the container at this path'"`
	ReadOnly  bool   `cli:"name=read-only desc='reject PUT, POST and DELETE'"`
	LogLevel  string `cli:"name=log-level desc='debug, info, warn or error' default=info"`
	LogFormat string `cli:"name=log-format desc='json or text' default=json"`
}

// ServeCommand returns the serve subcommand.
func ServeCommand() *cli.Command {
	cfg := &serveConfig{Addr: httpapi.DefaultAddress, LogLevel: "info", LogFormat: "json"}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "serve").
		WithSynopsis("serve [-addr ADDR] [-section PATH] [-read-only] FILE - Serve FILE over HTTP").
		WithDescription("serve loads FILE and exposes it over HTTP: GET reads a path, HEAD tests it, " +
			"PUT sets it, POST appends to it and DELETE removes it. Changes are kept in memory.").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *serveConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) != 1 {
		return fmt.Errorf("%w: usage: dotaccess serve FILE", cli.ErrUsage)
	}

	app := newServeApp(cfg, args[0], os.Stderr)

	err = app.Err()
	if err != nil {
		return fmt.Errorf("failed to build app: %w", err)
	}

	app.Run()

	return nil
}

// newServeApp wires the file source and the HTTP listener into one Fx application.
func newServeApp(cfg *serveConfig, fpath string, logOut io.Writer, extra ...fx.Option) *fx.App {
	logger := logging.NewLogger(logging.LoggerConfig{Level: cfg.LogLevel, Format: cfg.LogFormat}, logOut)
	slog.SetDefault(logger)

	listenerOpts := []httpapi.Option{httpapi.WithAddress(cfg.Addr)}
	if cfg.ReadOnly {
		listenerOpts = append(listenerOpts, httpapi.WithReadOnly())
	}

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logger),
		source.NewModule(serveName, fpath, cfg.Section,
			source.WithDataOptions(dotaccess.WithLogger(logger)),
		),
		httpapi.NewModule(serveName, listenerOpts...),
		fx.Options(extra...),
	)
}
