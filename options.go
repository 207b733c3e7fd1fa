package dotaccess

import "log/slog"

// AppendPolicy decides what Append does when the target holds a container.
type AppendPolicy uint8

const (
	// AppendReject fails with ErrContainerAppend.
	AppendReject AppendPolicy = iota
	// AppendPromote wraps the container into a sequence: [container, value].
	AppendPromote
)

// Options holds the settings of a Data accessor.
type Options struct {
	AppendPolicy AppendPolicy
	Logger       *slog.Logger
}

// Option defines a function type for applying options.
type Option func(*Options)

// WithAppendPolicy sets how Append treats an existing container.
func WithAppendPolicy(policy AppendPolicy) Option {
	return func(opts *Options) {
		opts.AppendPolicy = policy
	}
}

// WithLogger sets the logger used for debug tracing. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

func newOptions(opts []Option) Options {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return options
}

// ImportMode decides how Import resolves conflicts.
type ImportMode uint8

const (
	// ImportReplace lets the source win on leaf conflicts. Containers are merged recursively.
	ImportReplace ImportMode = iota
	// ImportPreserve keeps existing values. Containers are merged recursively.
	ImportPreserve
	// ImportMerge behaves like ImportReplace but concatenates sequences.
	ImportMerge
)

// ImportOption configures a single Import call.
type ImportOption func(*ImportMode)

// WithImportMode sets the conflict resolution of Import.
func WithImportMode(mode ImportMode) ImportOption {
	return func(m *ImportMode) {
		*m = mode
	}
}
