// Package httpapi serves a dotaccess document over HTTP and provides an Fx listener module for it.
package httpapi

import (
	"errors"
	"time"
)

// DefaultAddress is the default address for the HTTP listener.
const DefaultAddress = ":8080"

// DefaultMaxBodyBytes caps request bodies for PUT and POST.
const DefaultMaxBodyBytes = 1 << 20

// DefaultRequestTimeout bounds the handling of a single request.
const DefaultRequestTimeout = 30 * time.Second

// ErrEmptyAddress is returned when the address is empty.
var ErrEmptyAddress = errors.New("address must not be empty")

// ErrListenFailed is returned when the server fails to listen on the configured address.
var ErrListenFailed = errors.New("failed to listen")

// ErrShutdownFailed is returned when the server fails to shut down gracefully.
var ErrShutdownFailed = errors.New("shutdown failed")

// ErrEmptyName is returned when the listener name is empty.
var ErrEmptyName = errors.New("listener name must not be empty")

// ErrNilDocument is returned when no document is given to serve.
var ErrNilDocument = errors.New("document must not be nil")

// ErrReadOnly is returned for write requests against a read-only listener.
var ErrReadOnly = errors.New("document is read-only")

// ErrMethodNotAllowed is returned for methods the document API does not serve.
var ErrMethodNotAllowed = errors.New("method not allowed")

// Config holds the configuration for a document listener.
type Config struct {
	Address        string
	ReadOnly       bool
	MaxBodyBytes   int64
	RequestTimeout time.Duration
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() {
	if c.Address == "" {
		c.Address = DefaultAddress
	}

	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}

	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	return nil
}
