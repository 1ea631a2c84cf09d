package schema

import (
	"maps"

	"row-caster/options"
	"row-caster/primitive"
)

// Enum declares an int32-backed enumerated field. Cells are matched against
// the member names with a case-sensitive lookup; a cell that names no member
// fails coercion.
//
// The member table is cloned once at definition time, so later mutation of
// the caller's map cannot change what the descriptor accepts.
func Enum[T any, E ~int32](name string, members map[string]E, set func(*T, E)) FieldDescriptor[T] {
	lookup := maps.Clone(members)

	return FieldDescriptor[T]{
		Name: name,
		Kind: primitive.KindEnum32,
		assign: func(rec *T, raw string, _ options.FlagEnum) error {
			v, ok := lookup[raw]
			if !ok {
				return &primitive.CoercionError{Kind: primitive.KindEnum32, Raw: raw}
			}

			set(rec, v)

			return nil
		},
	}
}
