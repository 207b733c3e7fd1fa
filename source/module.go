package source

import (
	"errors"
	"fmt"

	"github.com/0xalexb/dotaccess"
	"github.com/0xalexb/dotaccess/source/fetcher/file"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("source name must not be empty")

// NewModule creates an Fx module that loads the document at fpath and provides it
// as *dotaccess.Data tagged name:"<name>". The codec is chosen from the file
// extension; section selects a sub-view ("" for the whole document).
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name, fpath, section string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	codec, err := CodecForFile(fpath)
	if err != nil {
		return fx.Error(err)
	}

	load := func() (*dotaccess.Data, error) {
		fetcher, err := file.NewFetcher(fpath)()
		if err != nil {
			return nil, err
		}

		doc, err := Provider(section, opts...)(codec, fetcher)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", fpath, err)
		}

		return doc, nil
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(load, fx.ResultTags(fmt.Sprintf(`name:"%s"`, name))),
		),
	)
}
