package caster

import (
	"fmt"
	"strings"
)

// UnmappedLabelsError reports every header label that bound to no field
// descriptor. The header is scanned completely before this error is built,
// so Labels is the full set of offenders in column order.
type UnmappedLabelsError struct {
	Labels []string
}

func (e *UnmappedLabelsError) Error() string {
	return fmt.Sprintf("header label(s) match no field: %s", quoteJoin(e.Labels))
}

// AmbiguousLabelsError reports header labels that normalize to the same
// field descriptor. This is the default policy for duplicate labels; decode
// with options.FlagLastBindingWins to accept them with the rightmost column
// winning instead.
type AmbiguousLabelsError struct {
	Labels []string
}

func (e *AmbiguousLabelsError) Error() string {
	return fmt.Sprintf("header label(s) bind the same field: %s", quoteJoin(e.Labels))
}

func quoteJoin(labels []string) string {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = fmt.Sprintf("%q", l)
	}

	return strings.Join(quoted, ", ")
}
