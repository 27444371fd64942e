package namespace

type fieldKind uint8

const (
	fieldUnset fieldKind = iota
	fieldAuto
	fieldLiteral
	fieldOmit
)

// Field selects where a namespace component comes from.
// The zero value means "use the default for this field".
type Field struct {
	kind  fieldKind
	value string
}

// Auto resolves the component from the manifest or the caller's file.
func Auto() Field {
	return Field{kind: fieldAuto}
}

// Literal uses value as is. An empty literal omits the component.
func Literal(value string) Field {
	return Field{kind: fieldLiteral, value: value}
}

// Omit leaves the component out.
func Omit() Field {
	return Field{kind: fieldOmit}
}

// IsSet reports whether the field was given explicitly.
func (f Field) IsSet() bool {
	return f.kind != fieldUnset
}

// IsAuto reports whether the field resolves automatically.
func (f Field) IsAuto() bool {
	return f.kind == fieldAuto
}

// resolve returns the component value, calling auto only for Auto fields.
func (f Field) resolve(auto func() string) string {
	switch f.kind {
	case fieldAuto:
		return auto()
	case fieldLiteral:
		return f.value
	default:
		return ""
	}
}

func (f Field) or(fallback Field) Field {
	if f.IsSet() {
		return f
	}

	return fallback
}

// String renders the field the way it would be written in options.
func (f Field) String() string {
	switch f.kind {
	case fieldAuto:
		return "auto"
	case fieldLiteral:
		return "literal(" + f.value + ")"
	case fieldOmit:
		return "omit"
	default:
		return "default"
	}
}
