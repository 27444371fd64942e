package manifest

import (
	"fmt"
	"log/slog"
)

// Parser decodes raw manifest data into a target structure.
//
// The section parameter is a colon separated path to a nested mapping, for
// example "tool:debuggler". An empty section means the whole document.
type Parser interface {
	Parse(data []byte, target any, section string) error
}

// DataFetcher reads raw manifest data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator is implemented by documents that check themselves after parsing.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by documents that normalize their fields after parsing.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// decode fetches, parses, defaults and validates a document into target.
func decode[T any](target *T, section string, parser Parser, fetcher DataFetcher, logger *slog.Logger) (*T, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	err = parser.Parse(data, target, section)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	targetDefaulter, isDefaulter := any(target).(Defaulter)
	if isDefaulter {
		changed := targetDefaulter.SetDefaults()
		if changed {
			logger.Debug("manifest defaults applied", slog.String("section", section))
		}
	}

	targetValidatable, isValidatable := any(target).(Validator)
	if isValidatable {
		err := targetValidatable.Validate()
		if err != nil {
			return nil, fmt.Errorf("validating error: %w", err)
		}
	}

	return target, nil
}
