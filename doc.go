// Package debuggler creates namespaced debug loggers that name themselves.
//
// The namespace is derived from where the logger is created: the nearest
// project manifest (package.json, package.yaml, package.yml or go.mod) supplies
// the project name and version, and the caller's path relative to the project
// root supplies the rest.
//
//	// /home/example/package.json: {"name": "example", "version": "1.0.0"}
//	// /home/example/foo/bar.go:
//	log, err := debuggler.New(namespace.Options{Version: namespace.Auto()})
//	log.Printf("I know where I am!")
//	// DEBUG='example*' -> namespace=example@1.0.0:foo:bar msg="I know where I am!"
//
// A plain string is used as the namespace verbatim:
//
//	log, err := debuggler.New("TEST")
//
// Factory.New takes the caller path explicitly; Factory.Here and New find it
// with runtime.Caller. Module wires a Factory into an Fx application.
package debuggler
