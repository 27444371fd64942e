package manifest

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	filefetcher "github.com/0xalexb/debuggler/manifest/fetcher/file"
)

var (
	// ErrNotFound is returned when no manifest exists between the start directory and the root.
	ErrNotFound = errors.New("manifest not found")
	// ErrRelativePath is returned when Locate is given a relative start directory.
	ErrRelativePath = errors.New("start directory must be absolute")
)

// Manifest is the decoded project descriptor.
type Manifest struct {
	// Path is the absolute path of the manifest file.
	Path string `json:"-" yaml:"-"`
	// Dir is the project root, the directory holding the manifest.
	Dir string `json:"-" yaml:"-"`

	Name    string `json:"name"    yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// SetModulePath lets go.mod manifests supply the project name.
func (m *Manifest) SetModulePath(path string) {
	m.Name = path
}

// SetDefaults trims whitespace around name and version.
func (m *Manifest) SetDefaults() bool {
	name := strings.TrimSpace(m.Name)
	version := strings.TrimSpace(m.Version)
	changed := name != m.Name || version != m.Version

	m.Name = name
	m.Version = version

	return changed
}

// Locate finds and decodes the manifest nearest to startDir.
func Locate(startDir string, opts ...Option) (*Manifest, error) {
	options := newOptions(opts)

	if !filepath.IsAbs(startDir) {
		return nil, fmt.Errorf("%w: %q", ErrRelativePath, startDir)
	}

	for dir := filepath.Clean(startDir); ; {
		for _, candidate := range options.candidates {
			path := filepath.Join(dir, candidate.Name)

			if !isFile(path) {
				continue
			}

			options.logger.Debug("manifest located", slog.String("path", path))

			return load(path, candidate.Parser, options)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("%w: searched upward from %q", ErrNotFound, startDir)
		}

		dir = parent
	}
}

func load(path string, parser Parser, options *locateOptions) (*Manifest, error) {
	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, fmt.Errorf("loading manifest %q: %w", path, err)
	}

	manifest := &Manifest{
		Path: fetcher.Path(),
		Dir:  fetcher.Dir(),
	}

	_, err = decode(manifest, options.section, parser, fetcher, options.logger)
	if err != nil {
		return nil, fmt.Errorf("decoding manifest %q: %w", path, err)
	}

	return manifest, nil
}

// isFile reports whether path names an existing regular file.
// Stat failures of any kind count as absence and the walk continues.
func isFile(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}

	return stat.Mode().IsRegular()
}
