package primitive

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the semantic kind of a decodable field. It decides how a raw
// cell string is coerced into a typed value.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindString
	KindEnum32 // int32-backed enumerated type, coerced by case-sensitive member name lookup

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsValid reports whether k is one of the defined kinds. Coerce rejects
// invalid kinds up front, before dispatching on them.
func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}
