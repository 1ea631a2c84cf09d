// Package caster decodes header-labelled, comma-delimited text into
// caller-defined record types.
//
// The pipeline: the whole input is read into a table of trimmed cells, the
// table shape is validated, header labels are bound to field descriptors by
// normalized name, and then each data row is mapped onto a fresh record with
// per-cell coercion. Structural problems (empty input, ragged rows, unbound
// labels) are aggregated across the whole table before anything is decoded;
// coercion is fail-fast and aborts the decode at the first bad cell.
package caster

import (
	"io"

	"row-caster/options"
	"row-caster/schema"
	"row-caster/table"
)

// Decode reads comma-delimited text from r and returns one record per data
// row, in input order. The first input row must be the header labels; every
// label must bind to exactly one of the given field descriptors. Fields with
// no matching column are left at their zero value.
//
// Decode never closes r; acquisition and release of the underlying stream
// belong to the caller.
func Decode[T any](r io.Reader, fields ...schema.FieldDescriptor[T]) ([]T, error) {
	return DecodeWith(r, options.FlagNone, fields...)
}

// DecodeWith is Decode with explicit decode flags, see the options package.
func DecodeWith[T any](r io.Reader, flags options.FlagEnum, fields ...schema.FieldDescriptor[T]) ([]T, error) {
	rows, err := table.Read(r)
	if err != nil {
		return nil, err
	}

	if err := rows.Validate(); err != nil {
		return nil, err
	}

	binding, err := bind(rows.Header(), fields, flags)
	if err != nil {
		return nil, err
	}

	data := rows.DataRows()

	records := make([]T, 0, len(data))
	for _, row := range data {
		var rec T

		for _, b := range binding {
			if err := fields[b.field].Assign(&rec, row[b.column], flags); err != nil {
				return nil, err
			}
		}

		records = append(records, rec)
	}

	return records, nil
}
