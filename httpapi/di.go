package httpapi

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/dotaccess"

	"go.uber.org/fx"
)

// NewModule creates an Fx module serving the *dotaccess.Data tagged name:"<name>".
// If any options are passed, the module supplies Config to DI from those options.
// Otherwise, Config must be provided externally under the same name tag.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	tag := fmt.Sprintf(`name:"%s"`, name)

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		var cfg Config

		for _, apply := range opts {
			apply(&cfg)
		}

		moduleOpts = append(moduleOpts, fx.Supply(fx.Annotate(cfg, fx.ResultTags(tag))))
	}

	moduleOpts = append(moduleOpts, fx.Invoke(
		fx.Annotate(
			func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, doc *dotaccess.Data, cfg Config) error {
				srv, err := NewServer(name, doc, cfg, func() {
					shutdownErr := shutdowner.Shutdown()
					if shutdownErr != nil {
						slog.Error("failed to trigger shutdown", "name", name, "error", shutdownErr)
					}
				})
				if err != nil {
					return err
				}

				lifecycle.Append(fx.Hook{
					OnStart: srv.Start,
					OnStop:  srv.Stop,
				})

				return nil
			},
			fx.ParamTags("", "", tag, tag),
		),
	))

	return fx.Module(name, moduleOpts...)
}
