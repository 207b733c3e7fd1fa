// Package logging builds the log/slog loggers used by dotaccess components and the CLI.
// JSON output is the default; a text handler is available for terminals.
package logging
