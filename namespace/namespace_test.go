package namespace_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xalexb/debuggler/manifest"
	"github.com/0xalexb/debuggler/namespace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleManifest() *manifest.Manifest {
	return &manifest.Manifest{
		Path:    filepath.FromSlash("/home/example/package.json"),
		Dir:     filepath.FromSlash("/home/example"),
		Name:    "example",
		Version: "1.0.0",
	}
}

func caller(path string) string {
	return filepath.FromSlash(path)
}

func TestBuild(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		opts     namespace.Options
		caller   string
		expected string
	}{
		{
			name:     "defaults in subdirectory",
			opts:     namespace.Options{},
			caller:   "/home/example/foo/bar.js",
			expected: "example:foo:bar",
		},
		{
			name:     "version from manifest",
			opts:     namespace.Options{Version: namespace.Auto()},
			caller:   "/home/example/foo/bar.js",
			expected: "example@1.0.0:foo:bar",
		},
		{
			name:     "caller at project root",
			opts:     namespace.Options{},
			caller:   "/home/example/bar.js",
			expected: "example:bar",
		},
		{
			name:     "literal name without file at root",
			opts:     namespace.Options{Name: namespace.Literal("TEST"), File: namespace.Omit()},
			caller:   "/home/example/bar.js",
			expected: "TEST",
		},
		{
			name:     "extension concatenated to stem",
			opts:     namespace.Options{Ext: namespace.Auto()},
			caller:   "/home/example/foo/bar.js",
			expected: "example:foo:bar.js",
		},
		{
			name:     "literal extension",
			opts:     namespace.Options{Ext: namespace.Literal(".ts")},
			caller:   "/home/example/bar.js",
			expected: "example:bar.ts",
		},
		{
			name:     "extension without file is dropped",
			opts:     namespace.Options{File: namespace.Omit(), Ext: namespace.Auto()},
			caller:   "/home/example/foo/bar.js",
			expected: "example:foo",
		},
		{
			name:     "version without name is dropped",
			opts:     namespace.Options{Name: namespace.Omit(), Version: namespace.Auto()},
			caller:   "/home/example/foo/bar.js",
			expected: "foo:bar",
		},
		{
			name:     "literal version",
			opts:     namespace.Options{Version: namespace.Literal("next")},
			caller:   "/home/example/bar.js",
			expected: "example@next:bar",
		},
		{
			name:     "empty literal name omits segment",
			opts:     namespace.Options{Name: namespace.Literal("")},
			caller:   "/home/example/foo/bar.js",
			expected: "foo:bar",
		},
		{
			name:     "literal file",
			opts:     namespace.Options{File: namespace.Literal("main")},
			caller:   "/home/example/foo/bar.js",
			expected: "example:foo:main",
		},
		{
			name:     "deeply nested caller",
			opts:     namespace.Options{},
			caller:   "/home/example/a/b/c/d/e.go",
			expected: "example:a:b:c:d:e",
		},
		{
			name: "custom separators",
			opts: namespace.Options{
				Version:      namespace.Auto(),
				VerSeparator: "?",
				DirSeparator: "@",
			},
			caller:   "/home/example/foo/bar.js",
			expected: "example?1.0.0@foo@bar",
		},
		{
			name:     "everything omitted",
			opts:     namespace.Options{Name: namespace.Omit(), File: namespace.Omit()},
			caller:   "/home/example/bar.js",
			expected: "",
		},
		{
			name:     "file with several dots keeps inner dots in stem",
			opts:     namespace.Options{Ext: namespace.Auto()},
			caller:   "/home/example/foo/bar.test.js",
			expected: "example:foo:bar.test.js",
		},
		{
			name:     "namespace wins over everything",
			opts:     namespace.Options{Namespace: "FOO", Version: namespace.Auto(), Ext: namespace.Auto()},
			caller:   "/home/example/foo/bar.js",
			expected: "FOO",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := namespace.Build(testCase.opts, caller(testCase.caller), exampleManifest())
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestBuild_SiblingDirectoryIsNotTrimmed(t *testing.T) {
	t.Parallel()

	got := namespace.Build(namespace.Options{Name: namespace.Omit()}, caller("/home/example-other/foo/bar.js"), exampleManifest())

	assert.Equal(t, "home:example-other:foo:bar", got)
}

func TestBuild_RootManifest(t *testing.T) {
	t.Parallel()

	m := &manifest.Manifest{Dir: filepath.FromSlash("/"), Name: "root"}

	got := namespace.Build(namespace.Options{}, caller("/srv/app/main.go"), m)

	assert.Equal(t, "root:srv:app:main", got)
}

func TestBuild_NilManifest(t *testing.T) {
	t.Parallel()

	got := namespace.Build(namespace.Options{Version: namespace.Auto()}, caller("/bar.js"), nil)

	assert.Equal(t, "bar", got)
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	opts := namespace.Options{Version: namespace.Auto(), Ext: namespace.Auto()}
	path := caller("/home/example/foo/bar.js")

	first := namespace.Build(opts, path, exampleManifest())
	second := namespace.Build(opts, path, exampleManifest())

	assert.Equal(t, first, second)
}

func TestBuild_DoesNotMutateOptions(t *testing.T) {
	t.Parallel()

	opts := namespace.Options{Version: namespace.Auto()}
	before := opts

	_ = namespace.Build(opts, caller("/home/example/foo/bar.js"), exampleManifest())

	assert.Equal(t, before, opts)
}

func TestBuild_NoStraySeparators(t *testing.T) {
	t.Parallel()

	fields := []namespace.Field{
		{},
		namespace.Auto(),
		namespace.Omit(),
		namespace.Literal(""),
		namespace.Literal("lit"),
	}
	callers := []string{
		"/home/example/bar.js",
		"/home/example/foo/bar.js",
		"/home/example/foo/baz/bar",
	}

	for _, name := range fields {
		for _, version := range fields {
			for _, file := range fields {
				for _, ext := range fields {
					for _, path := range callers {
						opts := namespace.Options{Name: name, Version: version, File: file, Ext: ext}
						got := namespace.Build(opts, caller(path), exampleManifest())

						label := fmt.Sprintf("%s %s %s %s %s", name, version, file, ext, path)
						assert.NotContains(t, got, "::", label)
						assert.False(t, strings.HasPrefix(got, ":"), label)
						assert.False(t, strings.HasSuffix(got, ":"), label)
					}
				}
			}
		}
	}
}

func TestBuild_SeparatorsChangeOnlyJoiners(t *testing.T) {
	t.Parallel()

	path := caller("/home/example/foo/baz/bar.js")
	base := namespace.Options{Version: namespace.Auto(), Ext: namespace.Auto()}
	custom := base
	custom.DirSeparator = "@"
	custom.VerSeparator = "?"

	plain := namespace.Build(base, path, exampleManifest())
	swapped := namespace.Build(custom, path, exampleManifest())

	require.Equal(t, "example@1.0.0:foo:baz:bar.js", plain)
	require.Equal(t, "example?1.0.0@foo@baz@bar.js", swapped)

	plainSegments := strings.Split(strings.Replace(plain, "@", "?", 1), ":")
	assert.Equal(t, plainSegments, strings.Split(swapped, "@"))
}
