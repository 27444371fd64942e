package debug

import (
	"os"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
)

// EnvKey is the environment variable read by FilterFromEnv by default.
const EnvKey = "DEBUG"

// slash stands in for '/' so that doublestar's '*' spans it.
const slash = "\x1f"

// Filter decides which namespaces are enabled.
type Filter struct {
	raw     string
	include []string
	exclude []string
}

// ParseFilter parses a comma or whitespace separated pattern list.
// Commas inside braces belong to the pattern, so "app:{db,http}" stays whole.
func ParseFilter(patterns string) Filter {
	filter := Filter{raw: patterns}

	fields := splitPatterns(patterns)

	for _, field := range fields {
		if pattern, ok := strings.CutPrefix(field, "-"); ok {
			if pattern != "" {
				filter.exclude = append(filter.exclude, pattern)
			}

			continue
		}

		filter.include = append(filter.include, field)
	}

	return filter
}

// FilterFromEnv parses the pattern list held in the environment variable key.
func FilterFromEnv(key string) Filter {
	return ParseFilter(os.Getenv(key))
}

// Enabled reports whether namespace passes the filter.
func (f Filter) Enabled(namespace string) bool {
	for _, pattern := range f.exclude {
		if match(pattern, namespace) {
			return false
		}
	}

	for _, pattern := range f.include {
		if match(pattern, namespace) {
			return true
		}
	}

	return false
}

// splitPatterns cuts on commas and whitespace outside of {...} groups.
func splitPatterns(patterns string) []string {
	var (
		fields  []string
		current strings.Builder
		depth   int
	)

	flush := func() {
		if current.Len() > 0 {
			fields = append(fields, current.String())
			current.Reset()
		}
	}

	for _, r := range patterns {
		switch {
		case r == '{':
			depth++
		case r == '}' && depth > 0:
			depth--
		case depth == 0 && (r == ',' || unicode.IsSpace(r)):
			flush()

			continue
		}

		current.WriteRune(r)
	}

	flush()

	return fields
}

// String returns the pattern list the filter was parsed from.
func (f Filter) String() string {
	return f.raw
}

// match reports a glob match; malformed patterns never match.
func match(pattern, namespace string) bool {
	matched, err := doublestar.Match(
		strings.ReplaceAll(pattern, "/", slash),
		strings.ReplaceAll(namespace, "/", slash),
	)

	return err == nil && matched
}
