// Package debug provides namespaced loggers that are switched on by a pattern
// list, usually taken from the DEBUG environment variable.
//
//	DEBUG='example*,-example:db:*' ./app
//
// Patterns are separated by commas or whitespace. A leading '-' excludes, and
// exclusions win over inclusions. Matching uses github.com/bmatcuk/doublestar
// glob syntax ('*', '?', '[a-z]', '{a,b}'), except that '*' also matches '/',
// so a pattern like 'github.com/acme/*' covers every namespace of that module.
//
// Enabled loggers write through log/slog at debug level with a namespace
// attribute. Disabled loggers discard without formatting.
package debug
