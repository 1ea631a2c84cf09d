package manifest

import (
	"row-caster/primitive"
	"row-caster/schema"
)

// Record is a dynamically-typed decoded row. Values holds the coerced cell
// values keyed by the manifest field names: string, int16, int32, int64,
// float32 or float64 depending on the declared kind (enum members decode to
// their int32 value).
type Record struct {
	Values map[string]any
}

func (r *Record) set(name string, v any) {
	if r.Values == nil {
		r.Values = make(map[string]any)
	}

	r.Values[name] = v
}

// Descriptors compiles the manifest into field descriptors for Record, ready
// to hand to caster.Decode. Parse has already validated the manifest, so
// every declared kind is known here.
func (f *File) Descriptors() []schema.FieldDescriptor[Record] {
	fields := make([]schema.FieldDescriptor[Record], 0, len(f.Fields))

	for _, fd := range f.Fields {
		name := fd.Name

		switch kindNames[fd.Kind] {
		case primitive.KindString:
			fields = append(fields, schema.String(name, func(r *Record, v string) { r.set(name, v) }))
		case primitive.KindInt16:
			fields = append(fields, schema.Int16(name, func(r *Record, v int16) { r.set(name, v) }))
		case primitive.KindInt32:
			fields = append(fields, schema.Int32(name, func(r *Record, v int32) { r.set(name, v) }))
		case primitive.KindInt64:
			fields = append(fields, schema.Int64(name, func(r *Record, v int64) { r.set(name, v) }))
		case primitive.KindFloat32:
			fields = append(fields, schema.Float32(name, func(r *Record, v float32) { r.set(name, v) }))
		case primitive.KindFloat64:
			fields = append(fields, schema.Float64(name, func(r *Record, v float64) { r.set(name, v) }))
		case primitive.KindEnum32:
			fields = append(fields, schema.Enum(name, fd.Members, func(r *Record, v int32) { r.set(name, v) }))
		}
	}

	return fields
}
