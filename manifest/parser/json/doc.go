// Package json parses JSON project manifests (package.json).
//
// Sections use the same colon separated form as the YAML parser; each element
// names a key of a nested object.
package json
