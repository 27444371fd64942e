package debuggler_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xalexb/debuggler"
	"github.com/0xalexb/debuggler/namespace"
)

// ExampleFactory_Resolve shows the namespaces produced for a small project.
func ExampleFactory_Resolve() {
	root, err := os.MkdirTemp("", "debuggler-example")
	if err != nil {
		fmt.Println(err)

		return
	}

	defer func() { _ = os.RemoveAll(root) }()

	err = os.WriteFile(filepath.Join(root, "package.json"), []byte(`{"name": "example", "version": "1.0.0"}`), 0o600)
	if err != nil {
		fmt.Println(err)

		return
	}

	factory := debuggler.NewFactory(debuggler.WithFilter(""))

	inputs := []namespace.Input{
		namespace.Options{},
		namespace.Options{Version: namespace.Auto()},
		namespace.Options{Ext: namespace.Auto(), DirSeparator: "/"},
		namespace.Options{Name: namespace.Literal("TEST"), File: namespace.Omit()},
		namespace.Fixed("custom"),
	}

	for _, in := range inputs {
		ns, err := factory.Resolve(filepath.Join(root, "foo", "bar.go"), in)
		if err != nil {
			fmt.Println(err)

			return
		}

		fmt.Println(ns)
	}
	// Output:
	// example:foo:bar
	// example@1.0.0:foo:bar
	// example/foo/bar.go
	// TEST:foo
	// custom
}
