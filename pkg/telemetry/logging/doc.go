// Package logging configures structured logging for the PhiGuard node.
//
// It is a thin layer over log/slog: it parses the configured level and
// format, builds the matching handler, and installs it as the process-wide
// default. Components derive child loggers with
// slog.Default().With("component", ...).
package logging
