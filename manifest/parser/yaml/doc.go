// Package yaml parses YAML project manifests (package.yaml, package.yml).
//
// It uses github.com/goccy/go-yaml and its PathString support to read a nested
// section. Colon separated sections are converted to YAML paths:
//
//	""                -> whole document
//	"tool"            -> "$.tool"
//	"tool:debuggler"  -> "$.tool.debuggler"
package yaml
