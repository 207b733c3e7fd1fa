package httpapi

import "time"

// Option defines a function type for configuring a document listener.
type Option func(*Config)

// WithAddress sets the address for the HTTP listener.
func WithAddress(addr string) Option {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}

// WithReadOnly rejects PUT, POST and DELETE with 405.
func WithReadOnly() Option {
	return func(cfg *Config) {
		cfg.ReadOnly = true
	}
}

// WithMaxBodyBytes caps the size of request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(cfg *Config) {
		cfg.MaxBodyBytes = n
	}
}

// WithRequestTimeout bounds request handling; slower requests get a 503.
func WithRequestTimeout(d time.Duration) Option {
	return func(cfg *Config) {
		cfg.RequestTimeout = d
	}
}
