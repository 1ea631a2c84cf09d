// Package schema defines the decodable fields of a target record type.
//
// A record type becomes decodable by listing one FieldDescriptor per field,
// built with the typed constructors below. The descriptor table replaces
// runtime reflection: each descriptor carries the declared name, the semantic
// kind, and a setter closure fixed at definition time.
package schema

import (
	"row-caster/options"
	"row-caster/primitive"
)

// FieldDescriptor describes one decodable field of the record type T: its
// declared name (matched against header labels after normalization), its
// semantic kind, and how a coerced value is assigned into a record.
//
// Descriptors are immutable once built. A descriptor whose name matches no
// header column is simply never assigned, leaving the field at its zero
// value.
type FieldDescriptor[T any] struct {
	Name string
	Kind primitive.KindEnum

	assign func(rec *T, raw string, flags options.FlagEnum) error
}

// Assign coerces one raw cell and stores the result into rec. A failed
// coercion surfaces as *primitive.CoercionError and leaves rec untouched.
func (f FieldDescriptor[T]) Assign(rec *T, raw string, flags options.FlagEnum) error {
	return f.assign(rec, raw, flags)
}

// String declares a string field. The cell value is used verbatim.
func String[T any](name string, set func(*T, string)) FieldDescriptor[T] {
	return scalar(name, primitive.KindString, set)
}

// Int16 declares a 16-bit signed integer field parsed as base-10.
func Int16[T any](name string, set func(*T, int16)) FieldDescriptor[T] {
	return scalar(name, primitive.KindInt16, set)
}

// Int32 declares a 32-bit signed integer field parsed as base-10.
func Int32[T any](name string, set func(*T, int32)) FieldDescriptor[T] {
	return scalar(name, primitive.KindInt32, set)
}

// Int64 declares a 64-bit signed integer field. By default the cell is
// parsed as a float64 and truncated toward zero, so fractional input decodes
// instead of failing; see primitive.Coerce and options.FlagStrictInt64.
func Int64[T any](name string, set func(*T, int64)) FieldDescriptor[T] {
	return scalar(name, primitive.KindInt64, set)
}

// Float32 declares a single-precision floating point field.
func Float32[T any](name string, set func(*T, float32)) FieldDescriptor[T] {
	return scalar(name, primitive.KindFloat32, set)
}

// Float64 declares a double-precision floating point field.
func Float64[T any](name string, set func(*T, float64)) FieldDescriptor[T] {
	return scalar(name, primitive.KindFloat64, set)
}

func scalar[T, V any](name string, kind primitive.KindEnum, set func(*T, V)) FieldDescriptor[T] {
	return FieldDescriptor[T]{
		Name: name,
		Kind: kind,
		assign: func(rec *T, raw string, flags options.FlagEnum) error {
			v, err := primitive.Coerce(kind, raw, flags)
			if err != nil {
				return err
			}

			set(rec, v.(V))

			return nil
		},
	}
}
