package source

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/0xalexb/dotaccess"
)

// ErrMissingRequired is returned when a required path is absent from a loaded document.
var ErrMissingRequired = errors.New("required path missing")

// Parser decodes raw document bytes into an ordered tree.
type Parser interface {
	Parse(data []byte) (*dotaccess.Map, error)
}

// Encoder encodes a tree back into document bytes.
type Encoder interface {
	Encode(doc *dotaccess.Data) ([]byte, error)
}

// Codec is a format that can both parse and encode.
type Codec interface {
	Parser
	Encoder
}

// DataFetcher defines an interface for reading raw document data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Provider returns a function that reads, parses, applies defaults, checks required
// paths and returns the document (or the sub-view at path).
func Provider(path string, opts ...Option) func(Parser, DataFetcher) (*dotaccess.Data, error) {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return func(parser Parser, fetcher DataFetcher) (*dotaccess.Data, error) {
		raw, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		root, err := parser.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		doc := dotaccess.Wrap(root, options.DataOptions...)

		if path != "" {
			doc, err = doc.GetData(path)
			if err != nil {
				return nil, fmt.Errorf("selecting %q: %w", path, err)
			}
		}

		if options.Defaults != nil {
			before := doc.Export()

			err = doc.Import(options.Defaults, dotaccess.WithImportMode(dotaccess.ImportPreserve))
			if err != nil {
				return nil, fmt.Errorf("applying defaults: %w", err)
			}

			if !reflect.DeepEqual(before, doc.Export()) {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		for _, required := range options.Required {
			ok, err := doc.Has(required)
			if err != nil {
				return nil, fmt.Errorf("checking required path: %w", err)
			}

			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrMissingRequired, required)
			}
		}

		return doc, nil
	}
}
