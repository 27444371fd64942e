package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MaxSize bounds how many bytes of a manifest are read.
const MaxSize = 1 << 20

var (
	// ErrPathIsDirectory is returned when the manifest path names a directory.
	ErrPathIsDirectory = errors.New("path is a directory, not a file")
	// ErrNotRegularFile is returned for devices, sockets, pipes and the like.
	ErrNotRegularFile = errors.New("path is not a regular file")
	// ErrTooLarge is returned when the manifest exceeds MaxSize.
	ErrTooLarge = errors.New("manifest too large")
)

// Fetcher implements manifest.DataFetcher for a manifest file on disk.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns a constructor that reads the manifest at fpath once.
// The file handle is closed before the constructor returns.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat manifest %q: %w", cleanPath, err)
		}

		switch {
		case stat.IsDir():
			return nil, fmt.Errorf("manifest %q: %w", cleanPath, ErrPathIsDirectory)
		case !stat.Mode().IsRegular():
			return nil, fmt.Errorf("manifest %q: %w", cleanPath, ErrNotRegularFile)
		case stat.Size() > MaxSize:
			return nil, fmt.Errorf("manifest %q (%d bytes): %w", cleanPath, stat.Size(), ErrTooLarge)
		}

		data, err := readLimited(cleanPath)
		if err != nil {
			return nil, err
		}

		return &Fetcher{
			path: cleanPath,
			data: data,
		}, nil
	}
}

// readLimited reads at most MaxSize bytes, failing if the file grew past it.
func readLimited(path string) ([]byte, error) {
	file, err := os.Open(path) // #nosec G304 -- path is cleaned and stat-checked
	if err != nil {
		return nil, fmt.Errorf("opening manifest %q: %w", path, err)
	}

	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading manifest %q: %w", path, err)
	}

	if len(data) > MaxSize {
		return nil, fmt.Errorf("manifest %q: %w", path, ErrTooLarge)
	}

	return data, nil
}

// Path returns the cleaned manifest path.
func (f *Fetcher) Path() string {
	return f.path
}

// Dir returns the directory holding the manifest, the project root.
func (f *Fetcher) Dir() string {
	return filepath.Dir(f.path)
}

// Fetch returns a copy of the manifest bytes.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
