// SPDX-License-Identifier: MPL-2.0

// Package inject binds the fields of a handler's parameter struct by name.
// Each exported field resolves from the call's named arguments first and a
// service resolver second, so command-line input always shadows container
// services of the same name. Field names come from the `quill` struct tag
// when present, otherwise from the kebab-cased Go field name.
package inject

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Resolver is the service lookup half of a container, as much of it as
// binding needs.
type Resolver interface {
	Get(name string) (any, error)
	Has(name string) bool
}

// Bind fills dst's exported fields. dst must be a non-nil pointer to a
// struct. For every field, the binding name is resolved against values
// first, then r (when non-nil). Fields tagged `quill:"-"` are skipped;
// fields whose type the resolver itself satisfies receive the resolver
// when their name resolves nowhere; fields tagged with the ",optional"
// modifier keep their zero value when the name resolves nowhere. Anything
// else unresolved is an UnboundFieldError.
func Bind(dst any, values map[string]any, r Resolver) error {
	rv := reflect.ValueOf(dst)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind target must be a non-nil struct pointer, got %T", dst)
	}
	sv := rv.Elem()
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, optional := fieldBinding(sf)
		if name == "-" {
			continue
		}

		if v, ok := values[name]; ok {
			if err := assign(sv.Field(i), sf, name, v); err != nil {
				return err
			}
			continue
		}
		if r != nil && r.Has(name) {
			v, err := r.Get(name)
			if err != nil {
				return fmt.Errorf("field %s: %w", sf.Name, err)
			}
			if err := assign(sv.Field(i), sf, name, v); err != nil {
				return err
			}
			continue
		}
		// A field typed like the resolver itself (the container, usually)
		// receives it even when no binding matches the field's name.
		if r != nil && reflect.TypeOf(r).AssignableTo(sf.Type) {
			sv.Field(i).Set(reflect.ValueOf(r))
			continue
		}
		if optional {
			continue
		}
		return &UnboundFieldError{Field: sf.Name, Binding: name}
	}
	return nil
}

// fieldBinding resolves a field's binding name and the optional modifier
// from its `quill` tag, falling back to the kebab-cased field name.
func fieldBinding(sf reflect.StructField) (name string, optional bool) {
	tag := sf.Tag.Get("quill")
	name, rest, _ := strings.Cut(tag, ",")
	for rest != "" {
		var opt string
		opt, rest, _ = strings.Cut(rest, ",")
		if opt == "optional" {
			optional = true
		}
	}
	if name == "" {
		name = kebab(sf.Name)
	}
	return name, optional
}

// assign stores v into field, allowing direct assignment, numeric
// widening, and string-kind conversion. Everything else is a
// FieldTypeError.
func assign(field reflect.Value, sf reflect.StructField, binding string, v any) error {
	if v == nil {
		switch field.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			field.Set(reflect.Zero(field.Type()))
			return nil
		default:
			return &FieldTypeError{Field: sf.Name, Binding: binding, Want: field.Type().String(), Got: "nil"}
		}
	}
	vv := reflect.ValueOf(v)
	vt := vv.Type()
	ft := field.Type()
	switch {
	case vt.AssignableTo(ft):
		field.Set(vv)
	case vt.ConvertibleTo(ft) && convertibleKinds(vt.Kind(), ft.Kind()):
		field.Set(vv.Convert(ft))
	default:
		return &FieldTypeError{Field: sf.Name, Binding: binding, Want: ft.String(), Got: vt.String()}
	}
	return nil
}

// convertibleKinds limits reflect conversions to ones that preserve
// meaning: numeric widening/narrowing and string kinds. Notably int->string
// is excluded (reflect would produce a one-rune string).
func convertibleKinds(from, to reflect.Kind) bool {
	return (isNumeric(from) && isNumeric(to)) || (from == reflect.String && to == reflect.String)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// kebab converts a Go field name to its binding form: "DryRun" becomes
// "dry-run", "HTTPServer" becomes "http-server", "ID" becomes "id".
func kebab(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			startsWord := i > 0 && (!unicode.IsUpper(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1])))
			if startsWord {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
