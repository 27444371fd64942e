package namespace

import (
	"path/filepath"
	"strings"

	"github.com/0xalexb/debuggler/manifest"
)

// Build assembles the namespace for a caller at callerPath inside the project
// described by m. A non-empty opts.Namespace is returned verbatim.
func Build(opts Options, callerPath string, m *manifest.Manifest) string {
	if opts.Namespace != "" {
		return opts.Namespace
	}

	opts = opts.Normalize()

	if m == nil {
		m = &manifest.Manifest{}
	}

	segments := make([]string, 0, 3)

	if segment := nameSegment(opts, m); segment != "" {
		segments = append(segments, segment)
	}

	if segment := directorySegment(filepath.Dir(callerPath), m.Dir, opts.DirSeparator); segment != "" {
		segments = append(segments, segment)
	}

	if segment := fileSegment(opts, filepath.Base(callerPath)); segment != "" {
		segments = append(segments, segment)
	}

	return strings.Join(segments, opts.DirSeparator)
}

// nameSegment renders name[verSeparator version]. A version without a name is dropped.
func nameSegment(opts Options, m *manifest.Manifest) string {
	version := opts.Version.resolve(func() string { return m.Version })
	name := opts.Name.resolve(func() string { return m.Name })

	switch {
	case name == "":
		return ""
	case version == "":
		return name
	default:
		return name + opts.VerSeparator + version
	}
}

// directorySegment renders callerDir relative to root, one token per directory.
func directorySegment(callerDir, root, separator string) string {
	relative := trimRoot(filepath.Clean(callerDir), root)

	parts := strings.Split(filepath.ToSlash(relative), "/")
	tokens := parts[:0]

	for _, part := range parts {
		if part == "" || part == "." {
			continue
		}

		tokens = append(tokens, part)
	}

	return strings.Join(tokens, separator)
}

// trimRoot strips root from dir on a path component boundary. A dir outside
// root is returned unchanged.
func trimRoot(dir, root string) string {
	if root == "" {
		return dir
	}

	root = filepath.Clean(root)
	if dir == root {
		return ""
	}

	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	if strings.HasPrefix(dir, prefix) {
		return dir[len(prefix):]
	}

	return dir
}

// fileSegment renders file[ext]; the stem and extension are joined without a separator.
func fileSegment(opts Options, base string) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	file := opts.File.resolve(func() string { return stem })
	if file == "" {
		return ""
	}

	return file + opts.Ext.resolve(func() string { return ext })
}
