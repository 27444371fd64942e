// Package namespace assembles logger namespaces from a caller's file path and
// its project manifest.
//
// A namespace has up to three segments joined by a directory separator:
//
//	name[@version] : dir : dir : file[.ext]
//
// Given /home/example/package.json {name: example, version: 1.0.0} and a caller
// at /home/example/foo/bar.go:
//
//	Options{}                                   -> "example:foo:bar"
//	Options{Version: Auto()}                    -> "example@1.0.0:foo:bar"
//	Options{Ext: Auto()}                        -> "example:foo:bar.go"
//	Options{Name: Literal("api"), File: Omit()} -> "api:foo"
//	Fixed("custom")                             -> "custom"
//
// Empty segments are dropped, so a namespace never has doubled, leading or
// trailing separators.
package namespace
