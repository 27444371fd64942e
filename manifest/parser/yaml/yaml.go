package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrSectionNotFound is returned when the requested section is missing from the document.
var ErrSectionNotFound = errors.New("section not found")

// Parser implements manifest.Parser for YAML documents.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse unmarshals data into target, optionally starting at a colon separated section.
func (p *Parser) Parse(data []byte, target any, section string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if section == "" {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(toYAMLPath(section))
	if err != nil {
		return fmt.Errorf("invalid section %q: %w", section, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrSectionNotFound, section)
		}

		return fmt.Errorf("reading section %q: %w", section, err)
	}

	return nil
}

// toYAMLPath converts "a:b" to "$.a.b".
func toYAMLPath(section string) string {
	return "$." + strings.Join(strings.Split(section, ":"), ".")
}
