package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"row-caster/options"
	"row-caster/primitive"
)

func TestCoerce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind primitive.KindEnum
		raw  string
		want any
	}{
		{"string verbatim", primitive.KindString, "Ada", "Ada"},
		{"string keeps case", primitive.KindString, "FIRST_NAME", "FIRST_NAME"},
		{"int16", primitive.KindInt16, "-42", int16(-42)},
		{"int32", primitive.KindInt32, "123456", int32(123456)},
		{"int64 integral", primitive.KindInt64, "9000", int64(9000)},
		{"int64 fractional truncates", primitive.KindInt64, "12.7", int64(12)},
		{"int64 negative fractional truncates toward zero", primitive.KindInt64, "-12.7", int64(-12)},
		{"int64 scientific", primitive.KindInt64, "1e3", int64(1000)},
		{"float32", primitive.KindFloat32, "2.5", float32(2.5)},
		{"float64", primitive.KindFloat64, "-0.125", float64(-0.125)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := primitive.Coerce(tt.kind, tt.raw, options.FlagNone)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind primitive.KindEnum
		raw  string
	}{
		{"int16 text", primitive.KindInt16, "abc"},
		{"int16 overflow", primitive.KindInt16, "40000"},
		{"int32 fractional", primitive.KindInt32, "1.5"},
		{"int64 text", primitive.KindInt64, "abc"},
		{"float32 text", primitive.KindFloat32, "x"},
		{"float64 empty", primitive.KindFloat64, ""},
		{"enum has no kind-level coercion", primitive.KindEnum32, "Female"},
		{"invalid kind", primitive.KindEnum(0), "1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := primitive.Coerce(tt.kind, tt.raw, options.FlagNone)
			assert.Nil(t, got)

			var cerr *primitive.CoercionError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.kind, cerr.Kind)
			assert.Equal(t, tt.raw, cerr.Raw)
		})
	}
}

func TestCoerceStrictInt64(t *testing.T) {
	t.Parallel()

	got, err := primitive.Coerce(primitive.KindInt64, "9000", options.FlagStrictInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(9000), got)

	_, err = primitive.Coerce(primitive.KindInt64, "12.7", options.FlagStrictInt64)

	var cerr *primitive.CoercionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "12.7", cerr.Raw)
}
