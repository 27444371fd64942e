package namespace

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidOptions is returned when an input value has an unsupported shape.
var ErrInvalidOptions = errors.New("invalid options")

// Input is either a Fixed namespace or Options.
type Input interface {
	isInput()
}

// Fixed is a namespace used verbatim.
type Fixed string

func (Fixed) isInput() {}

func (Options) isInput() {}

// Bypass returns the verbatim namespace carried by in, if any.
func Bypass(in Input) (string, bool) {
	switch value := in.(type) {
	case Fixed:
		return string(value), true
	case Options:
		if value.Namespace != "" {
			return value.Namespace, true
		}
	}

	return "", false
}

// OptionsOf returns the Options carried by in. Fixed inputs yield options with
// the namespace set, nil yields the zero Options.
func OptionsOf(in Input) Options {
	switch value := in.(type) {
	case Fixed:
		return Options{Namespace: string(value)}
	case Options:
		return value
	default:
		return Options{}
	}
}

// FromValue converts a loosely typed value into an Input.
//
// Accepted shapes are string, Fixed, Options, *Options, nil and map[string]any.
// Map keys follow the option names (namespace, name, version, verSeparator,
// dirSeparator, file, ext); unknown keys are ignored. For field keys true means
// Auto, false or nil means Omit, strings and other scalars are literals, and a
// numeric zero is treated as Omit.
func FromValue(value any) (Input, error) {
	switch typed := value.(type) {
	case nil:
		return Options{}, nil
	case string:
		return Fixed(typed), nil
	case Fixed:
		return typed, nil
	case Options:
		return typed, nil
	case *Options:
		if typed == nil {
			return Options{}, nil
		}

		return *typed, nil
	case map[string]any:
		opts, err := optionsFromMap(typed)
		if err != nil {
			return nil, err
		}

		return opts, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidOptions, value)
	}
}

func optionsFromMap(values map[string]any) (Options, error) {
	var (
		opts Options
		err  error
	)

	fields := map[string]*Field{
		"name":    &opts.Name,
		"version": &opts.Version,
		"file":    &opts.File,
		"ext":     &opts.Ext,
	}

	for key, target := range fields {
		raw, present := values[key]
		if !present {
			continue
		}

		*target, err = fieldFromValue(raw)
		if err != nil {
			return Options{}, fmt.Errorf("field %q: %w", key, err)
		}
	}

	texts := map[string]*string{
		"namespace":    &opts.Namespace,
		"verSeparator": &opts.VerSeparator,
		"dirSeparator": &opts.DirSeparator,
	}

	for key, target := range texts {
		raw, present := values[key]
		if !present || raw == nil {
			continue
		}

		text, ok := raw.(string)
		if !ok {
			return Options{}, fmt.Errorf("%w: field %q must be a string, got %T", ErrInvalidOptions, key, raw)
		}

		*target = text
	}

	return opts, nil
}

func fieldFromValue(value any) (Field, error) {
	switch typed := value.(type) {
	case nil:
		return Omit(), nil
	case Field:
		return typed, nil
	case bool:
		if typed {
			return Auto(), nil
		}

		return Omit(), nil
	case string:
		return Literal(typed), nil
	}

	reflected := reflect.ValueOf(value)

	switch reflected.Kind() { //nolint:exhaustive // only scalar kinds are literals
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		if reflected.IsZero() {
			return Omit(), nil
		}

		return Literal(fmt.Sprint(value)), nil
	default:
		return Field{}, fmt.Errorf("%w: unsupported value type %T", ErrInvalidOptions, value)
	}
}
