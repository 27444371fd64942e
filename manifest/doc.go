// Package manifest locates the project manifest nearest to a directory.
//
// Locate walks from a start directory up to the file-system root and, in each
// directory, tries a list of candidate file names in order. The first regular
// file found is decoded into a Manifest; its directory is the project root.
//
// Default candidates:
//
//	package.json  -> manifest/parser/json
//	package.yaml  -> manifest/parser/yaml
//	package.yml   -> manifest/parser/yaml
//	go.mod        -> manifest/parser/gomod (name = module path, no version)
//
// Decoding follows a fetch, parse, default, validate pipeline built on the
// Parser and DataFetcher interfaces, so other formats can be plugged in through
// WithCandidates:
//
//	m, err := manifest.Locate("/home/example/foo",
//	    manifest.WithCandidates(manifest.Candidate{Name: "project.yaml", Parser: yaml.NewParser()}),
//	    manifest.WithSection("tool:debuggler"),
//	)
//
// A missing manifest is an error (ErrNotFound), never an empty default.
package manifest
