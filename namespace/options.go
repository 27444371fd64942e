package namespace

// Default separators.
const (
	DefaultVerSeparator = "@"
	DefaultDirSeparator = ":"
)

// Options controls how a namespace is assembled.
type Options struct {
	// Namespace, when non-empty, is used verbatim and disables all resolution.
	Namespace string
	// Name defaults to Auto (manifest name).
	Name Field
	// Version defaults to Omit. Auto uses the manifest version.
	Version Field
	// VerSeparator joins name and version. Default "@".
	VerSeparator string
	// DirSeparator joins all segments and directory names. Default ":".
	DirSeparator string
	// File defaults to Auto (caller file name without extension).
	File Field
	// Ext defaults to Omit. Auto uses the caller's extension including the dot.
	Ext Field
}

// Defaults returns the options used when nothing is supplied.
func Defaults() Options {
	return Options{
		Namespace:    "",
		Name:         Auto(),
		Version:      Omit(),
		VerSeparator: DefaultVerSeparator,
		DirSeparator: DefaultDirSeparator,
		File:         Auto(),
		Ext:          Omit(),
	}
}

// Normalize returns a copy of o with unset fields filled from Defaults.
func (o Options) Normalize() Options {
	defaults := Defaults()

	normalized := o
	normalized.Name = o.Name.or(defaults.Name)
	normalized.Version = o.Version.or(defaults.Version)
	normalized.File = o.File.or(defaults.File)
	normalized.Ext = o.Ext.or(defaults.Ext)

	if normalized.VerSeparator == "" {
		normalized.VerSeparator = defaults.VerSeparator
	}

	if normalized.DirSeparator == "" {
		normalized.DirSeparator = defaults.DirSeparator
	}

	return normalized
}
