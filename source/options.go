package source

import "github.com/0xalexb/dotaccess"

// Options holds the settings applied by Provider.
type Options struct {
	Defaults    map[string]any
	Required    []string
	DataOptions []dotaccess.Option
}

// Option defines a function type for configuring Provider.
type Option func(*Options)

// WithDefaults sets a tree merged under the loaded document. Existing values win.
func WithDefaults(tree map[string]any) Option {
	return func(opts *Options) {
		opts.Defaults = tree
	}
}

// WithRequired lists paths that must exist after defaults are applied.
func WithRequired(paths ...string) Option {
	return func(opts *Options) {
		opts.Required = append(opts.Required, paths...)
	}
}

// WithDataOptions passes options to the dotaccess.Data created for the document.
func WithDataOptions(dataOpts ...dotaccess.Option) Option {
	return func(opts *Options) {
		opts.DataOptions = append(opts.DataOptions, dataOpts...)
	}
}
