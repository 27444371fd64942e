package debuggler

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/0xalexb/debuggler/debug"
	"github.com/0xalexb/debuggler/logging"
	"github.com/0xalexb/debuggler/manifest"
	"github.com/0xalexb/debuggler/namespace"
)

// diagnosticsNamespace is the namespace the factory reports its own work under.
const diagnosticsNamespace = "debuggler"

// Factory resolves namespaces and creates debug loggers for them.
// Nothing is cached: every call locates its caller's manifest again.
type Factory struct {
	config   debug.Config
	manifest []manifest.Option
	logger   *slog.Logger
}

// NewFactory creates a Factory. Without WithFilter the filter is read from the
// environment once, here.
func NewFactory(opts ...Option) *Factory {
	options := Options{
		Output:   os.Stderr,
		Filter:   nil,
		Env:      debug.EnvKey,
		Format:   logging.FormatText,
		Manifest: nil,
		Logger:   nil,
	}

	for _, apply := range opts {
		apply(&options)
	}

	filter := debug.FilterFromEnv(options.Env)
	if options.Filter != nil {
		filter = debug.ParseFilter(*options.Filter)
	}

	config := debug.Config{
		Filter: filter,
		Output: options.Output,
		Format: options.Format,
	}

	logger := options.Logger
	if logger == nil {
		logger = debug.New(diagnosticsNamespace, config).Slog()
	}

	manifestOpts := make([]manifest.Option, 0, len(options.Manifest)+1)
	manifestOpts = append(manifestOpts, manifest.WithLogger(logger))
	manifestOpts = append(manifestOpts, options.Manifest...)

	return &Factory{
		config:   config,
		manifest: manifestOpts,
		logger:   logger,
	}
}

// Resolve computes the namespace for a caller at callerPath.
// Fixed inputs and Options with a namespace are returned without any lookup.
func (f *Factory) Resolve(callerPath string, in namespace.Input) (string, error) {
	if ns, ok := namespace.Bypass(in); ok {
		f.logger.Debug("namespace given, skipping resolution", slog.String("namespace", ns))

		return ns, nil
	}

	if callerPath == "" || !filepath.IsAbs(callerPath) {
		return "", fmt.Errorf("%w: %q", ErrCallerPathUnresolvable, callerPath)
	}

	f.logger.Debug("caller resolved", slog.String("caller", callerPath))

	found, err := manifest.Locate(filepath.Dir(callerPath), f.manifest...)
	if err != nil {
		return "", fmt.Errorf("resolving namespace for %q: %w", callerPath, err)
	}

	ns := namespace.Build(namespace.OptionsOf(in), callerPath, found)

	f.logger.Debug("namespace resolved",
		slog.String("namespace", ns),
		slog.String("manifest", found.Path),
	)

	return ns, nil
}

// New creates a logger for a caller at callerPath.
func (f *Factory) New(callerPath string, in namespace.Input) (*debug.Logger, error) {
	ns, err := f.Resolve(callerPath, in)
	if err != nil {
		return nil, err
	}

	return debug.New(ns, f.config), nil
}

// Here creates a logger for the function calling Here. value is anything
// namespace.FromValue accepts.
func (f *Factory) Here(value any) (*debug.Logger, error) {
	return f.here(2, value)
}

// New creates a logger for the function calling New, with a Factory configured
// from the DEBUG environment variable and writing to os.Stderr.
func New(value any) (*debug.Logger, error) {
	return NewFactory().here(2, value)
}

// here resolves for the frame skip levels above itself.
func (f *Factory) here(skip int, value any) (*debug.Logger, error) {
	in, err := namespace.FromValue(value)
	if err != nil {
		return nil, err
	}

	if _, ok := namespace.Bypass(in); ok {
		return f.New("", in)
	}

	callerPath, err := callerFile(skip + 1)
	if err != nil {
		return nil, err
	}

	return f.New(callerPath, in)
}

func callerFile(skip int) (string, error) {
	_, file, _, ok := runtime.Caller(skip)
	if !ok || file == "" {
		return "", ErrCallerPathUnresolvable
	}

	return filepath.FromSlash(file), nil
}
