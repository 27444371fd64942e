package debuggler

import (
	"io"
	"log/slog"

	"github.com/0xalexb/debuggler/manifest"
)

// Options holds the Factory settings.
type Options struct {
	// Output receives enabled log lines.
	Output io.Writer
	// Filter, when non-nil, is used instead of the environment.
	Filter *string
	// Env names the environment variable holding the filter.
	Env string
	// Format is "text" or "json".
	Format string
	// Manifest configures the manifest lookup.
	Manifest []manifest.Option
	// Logger receives the factory's own diagnostics.
	Logger *slog.Logger
}

// Option defines a function type for applying Factory options.
type Option func(*Options)

// WithOutput sets where enabled loggers write. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.Output = w
	}
}

// WithFilter sets the namespace pattern list, ignoring the environment.
func WithFilter(patterns string) Option {
	return func(opts *Options) {
		opts.Filter = &patterns
	}
}

// WithEnv reads the pattern list from the named environment variable.
// Defaults to DEBUG.
func WithEnv(key string) Option {
	return func(opts *Options) {
		opts.Env = key
	}
}

// WithFormat sets the output format, "text" (default) or "json".
func WithFormat(format string) Option {
	return func(opts *Options) {
		opts.Format = format
	}
}

// WithManifestOptions passes options to the manifest lookup.
func WithManifestOptions(manifestOpts ...manifest.Option) Option {
	return func(opts *Options) {
		opts.Manifest = append(opts.Manifest, manifestOpts...)
	}
}

// WithLogger routes the factory's diagnostics to logger instead of the
// "debuggler" debug namespace.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
