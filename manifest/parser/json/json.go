package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrSectionNotFound is returned when the requested section is missing from the document.
var ErrSectionNotFound = errors.New("section not found")

// Parser implements manifest.Parser for JSON documents.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse unmarshals data into target, optionally starting at a colon separated section.
func (p *Parser) Parse(data []byte, target any, section string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	raw := json.RawMessage(data)

	if section != "" {
		for _, key := range strings.Split(section, ":") {
			var object map[string]json.RawMessage

			err := json.Unmarshal(raw, &object)
			if err != nil {
				return fmt.Errorf("reading section %q: %w", section, err)
			}

			next, ok := object[key]
			if !ok {
				return fmt.Errorf("%w: %s", ErrSectionNotFound, section)
			}

			raw = next
		}
	}

	err := json.Unmarshal(raw, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}
