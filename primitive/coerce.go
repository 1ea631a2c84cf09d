package primitive

import (
	"fmt"
	"strconv"

	"row-caster/options"
)

// CoercionError reports a single cell that could not be converted to its
// field's declared kind. The underlying parser error is intentionally
// discarded: callers get the declared kind and the raw text, nothing else.
type CoercionError struct {
	Kind KindEnum
	Raw  string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce %q into %s", e.Raw, e.Kind)
}

// Coerce converts one raw cell string into a typed value for the given kind.
// It is a pure function of its inputs.
//
// KindInt64 is parsed through strconv.ParseFloat and truncated toward zero,
// so fractional input like "12.7" decodes to 12 instead of failing. This
// mirrors the upstream producer of these files and is kept as the default;
// options.FlagStrictInt64 switches to base-10 integer parsing.
//
// KindEnum32 has no kind-level coercion: member tables live with the field
// definition (see the schema package), so it fails here like any unknown kind.
func Coerce(kind KindEnum, raw string, flags options.FlagEnum) (any, error) {
	if !kind.IsValid() {
		return nil, &CoercionError{Kind: kind, Raw: raw}
	}

	switch kind {
	default: // KindEnum32: member tables live with the field definition
		return nil, &CoercionError{Kind: kind, Raw: raw}

	case KindString:
		return raw, nil

	case KindInt16:
		v, err := strconv.ParseInt(raw, 10, 16)
		if err != nil {
			return nil, &CoercionError{Kind: kind, Raw: raw}
		}

		return int16(v), nil

	case KindInt32:
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, &CoercionError{Kind: kind, Raw: raw}
		}

		return int32(v), nil

	case KindInt64:
		if flags&options.FlagStrictInt64 != 0 {
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, &CoercionError{Kind: kind, Raw: raw}
			}

			return v, nil
		}

		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &CoercionError{Kind: kind, Raw: raw}
		}

		return int64(f), nil

	case KindFloat32:
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return nil, &CoercionError{Kind: kind, Raw: raw}
		}

		return float32(f), nil

	case KindFloat64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &CoercionError{Kind: kind, Raw: raw}
		}

		return f, nil
	}
}
