package debuggler

import (
	"errors"

	"github.com/0xalexb/debuggler/manifest"
	"github.com/0xalexb/debuggler/namespace"
)

var (
	// ErrManifestNotFound is returned when no manifest encloses the caller.
	ErrManifestNotFound = manifest.ErrNotFound
	// ErrInvalidOptions is returned for options of an unsupported shape.
	ErrInvalidOptions = namespace.ErrInvalidOptions
	// ErrCallerPathUnresolvable is returned when the caller's file is unknown or not absolute.
	ErrCallerPathUnresolvable = errors.New("caller path unresolvable")
)
