package gomod

import (
	"errors"
	"fmt"

	"golang.org/x/mod/modfile"
)

var (
	// ErrNoModulePath is returned when go.mod has no module directive.
	ErrNoModulePath = errors.New("go.mod has no module directive")
	// ErrSectionUnsupported is returned when a section is requested; go.mod has none.
	ErrSectionUnsupported = errors.New("go.mod does not support sections")
	// ErrUnsupportedTarget is returned when the target does not accept a module path.
	ErrUnsupportedTarget = errors.New("target cannot receive a module path")
)

// ModuleSetter is implemented by targets that accept a module path.
type ModuleSetter interface {
	SetModulePath(path string)
}

// Parser implements manifest.Parser for go.mod files.
type Parser struct{}

// NewParser creates a new go.mod parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts the module path and hands it to target.
func (p *Parser) Parse(data []byte, target any, section string) error {
	if section != "" {
		return fmt.Errorf("%w: %s", ErrSectionUnsupported, section)
	}

	setter, ok := target.(ModuleSetter)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedTarget, target)
	}

	path := modfile.ModulePath(data)
	if path == "" {
		return ErrNoModulePath
	}

	setter.SetModulePath(path)

	return nil
}
