// Package logging constructs slog loggers from configuration and carries
// the standardized attribute helpers used across specsort.
package logging
