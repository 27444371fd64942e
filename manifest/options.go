package manifest

import (
	"log/slog"

	"github.com/0xalexb/debuggler/logging"
	"github.com/0xalexb/debuggler/manifest/parser/gomod"
	"github.com/0xalexb/debuggler/manifest/parser/json"
	"github.com/0xalexb/debuggler/manifest/parser/yaml"
)

// Candidate pairs a manifest file name with the parser that reads it.
type Candidate struct {
	Name   string
	Parser Parser
}

// DefaultCandidates returns the manifest files tried in each directory, in order.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{Name: "package.json", Parser: json.NewParser()},
		{Name: "package.yaml", Parser: yaml.NewParser()},
		{Name: "package.yml", Parser: yaml.NewParser()},
		{Name: "go.mod", Parser: gomod.NewParser()},
	}
}

// Option configures Locate.
type Option func(*locateOptions)

type locateOptions struct {
	candidates []Candidate
	section    string
	logger     *slog.Logger
}

func newOptions(opts []Option) *locateOptions {
	options := &locateOptions{
		candidates: DefaultCandidates(),
		section:    "",
		logger:     logging.Nop(),
	}

	for _, apply := range opts {
		apply(options)
	}

	return options
}

// WithCandidates replaces the list of manifest files tried in each directory.
func WithCandidates(candidates ...Candidate) Option {
	return func(opts *locateOptions) {
		opts.candidates = candidates
	}
}

// WithSection reads name and version from a colon separated nested section.
func WithSection(section string) Option {
	return func(opts *locateOptions) {
		opts.section = section
	}
}

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *locateOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}
