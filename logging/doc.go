// Package logging builds the log/slog loggers used across debuggler.
// Output is JSON by default, with a text format for console use.
package logging
