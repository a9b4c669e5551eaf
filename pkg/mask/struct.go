package mask

import (
	"fmt"
	"reflect"
	"strings"
)

// tagName is the struct tag Struct reads, e.g. `mask:"cpf"`.
const tagName = "mask"

// Struct formats, in place, every string or *string field of the struct
// pointed to by v that carries a `mask:"<kind>"` tag. Nested structs and
// struct pointers are walked; `mask:"-"` and untagged fields are skipped.
func Struct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return ErrNotStructPointer
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrNotStructPointer
	}
	return formatStruct(rv)
}

func formatStruct(rv reflect.Value) error {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		tag := strings.TrimSpace(fieldType.Tag.Get(tagName))
		if tag == "-" {
			continue
		}

		if tag == "" {
			if err := descend(field); err != nil {
				return fmt.Errorf("field %s: %w", fieldType.Name, err)
			}
			continue
		}

		kind, err := ParseKind(tag)
		if err != nil {
			return fmt.Errorf("field %s: %w", fieldType.Name, err)
		}
		if err := setFormatted(field, kind); err != nil {
			return fmt.Errorf("field %s: %w", fieldType.Name, err)
		}
	}

	return nil
}

// descend walks untagged struct and struct-pointer fields.
func descend(field reflect.Value) error {
	switch {
	case field.Kind() == reflect.Struct:
		return formatStruct(field)
	case field.Kind() == reflect.Ptr && !field.IsNil() && field.Elem().Kind() == reflect.Struct:
		return formatStruct(field.Elem())
	}
	return nil
}

func setFormatted(field reflect.Value, kind Kind) error {
	switch {
	case field.Kind() == reflect.String:
		field.SetString(Format(field.String(), kind))
	case field.Kind() == reflect.Ptr && field.Type().Elem().Kind() == reflect.String:
		if !field.IsNil() {
			field.Elem().SetString(Format(field.Elem().String(), kind))
		}
	default:
		return fmt.Errorf("unsupported type %s for mask tag", field.Type())
	}
	return nil
}
