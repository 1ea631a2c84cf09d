package caster

import (
	"row-caster/internal/match"
	"row-caster/options"
	"row-caster/schema"
	"row-caster/table"
)

// columnBinding maps one header column index to one field descriptor index.
type columnBinding struct {
	column int
	field  int
}

// bind resolves the header row against the field descriptors, producing one
// binding per header column. The whole header is scanned before failing:
// every label without a field is reported in one *UnmappedLabelsError, and
// every set of labels colliding on one field in one *AmbiguousLabelsError.
// Unmapped labels take precedence when both problems are present.
func bind[T any](header table.Row, fields []schema.FieldDescriptor[T], flags options.FlagEnum) ([]columnBinding, error) {
	byName := make(map[string]int, len(fields))
	for i, f := range fields {
		byName[match.NormalizeLabel(f.Name)] = i
	}

	var (
		bindings []columnBinding
		unmapped []string
	)

	labelsOf := make(map[int][]string, len(fields))

	for col, label := range header {
		idx, ok := byName[match.NormalizeLabel(label)]
		if !ok {
			unmapped = append(unmapped, label)
			continue
		}

		labelsOf[idx] = append(labelsOf[idx], label)
		bindings = append(bindings, columnBinding{column: col, field: idx})
	}

	if len(unmapped) > 0 {
		return nil, &UnmappedLabelsError{Labels: unmapped}
	}

	if flags&options.FlagLastBindingWins != 0 {
		return lastBindingWins(bindings), nil
	}

	var colliding []string
	for _, b := range bindings {
		if labels := labelsOf[b.field]; len(labels) > 1 {
			colliding = append(colliding, labels...)
			labelsOf[b.field] = nil // report each collision set once, in column order
		}
	}

	if len(colliding) > 0 {
		return nil, &AmbiguousLabelsError{Labels: colliding}
	}

	return bindings, nil
}

// lastBindingWins keeps only the rightmost binding per field. Superseded
// columns drop out of the binding entirely, so their cells are never
// coerced: a bad value in a losing column cannot fail the decode.
func lastBindingWins(bindings []columnBinding) []columnBinding {
	last := make(map[int]int, len(bindings))
	for _, b := range bindings {
		last[b.field] = b.column
	}

	kept := bindings[:0]
	for _, b := range bindings {
		if last[b.field] == b.column {
			kept = append(kept, b)
		}
	}

	return kept
}
