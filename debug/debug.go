package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/debuggler/logging"
)

// Separator joins a namespace and a sub namespace in Extend.
const Separator = ":"

// Config holds the shared settings for loggers.
type Config struct {
	Filter Filter
	// Output defaults to os.Stderr.
	Output io.Writer
	// Format is "text" or "json", see the logging package.
	Format string
}

// Logger writes messages for a single namespace.
type Logger struct {
	namespace string
	enabled   bool
	config    Config
	logger    *slog.Logger
}

// New creates a logger for namespace. It is enabled when config.Filter matches.
func New(namespace string, config Config) *Logger {
	enabled := config.Filter.Enabled(namespace)

	logger := logging.Nop()

	if enabled {
		output := config.Output
		if output == nil {
			output = os.Stderr
		}

		logger = logging.NewLogger(logging.Config{Level: "debug", Format: config.Format}, output).
			With(slog.String("namespace", namespace))
	}

	return &Logger{
		namespace: namespace,
		enabled:   enabled,
		config:    config,
		logger:    logger,
	}
}

// Namespace returns the namespace the logger was created for.
func (l *Logger) Namespace() string {
	return l.namespace
}

// Enabled reports whether the logger writes anything.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf formats and writes a message with fmt.Sprintf semantics.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}

	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Log writes msg verbatim with slog style key/value attributes.
func (l *Logger) Log(msg string, args ...any) {
	if !l.enabled {
		return
	}

	l.logger.Debug(msg, args...)
}

// Extend returns a logger for namespace:sub, filtered anew.
func (l *Logger) Extend(sub string) *Logger {
	return New(l.namespace+Separator+sub, l.config)
}

// Slog exposes the underlying slog.Logger; it discards when the logger is disabled.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}
