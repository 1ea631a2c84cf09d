package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoRows reports input that contained no rows at all, not even a header.
var ErrNoRows = errors.New("table has no rows")

// ReadError reports a failure of the underlying input reader. It wraps the
// original error; this is the only error kind in the decode pipeline that
// chains its cause.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return "reading input: " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ColumnCountError reports every row whose cell count disagrees with the
// header. Lines are 1-based file line numbers (header is line 1).
type ColumnCountError struct {
	Lines []int
}

func (e *ColumnCountError) Error() string {
	nums := make([]string, len(e.Lines))
	for i, n := range e.Lines {
		nums[i] = strconv.Itoa(n)
	}

	return fmt.Sprintf("column count differs from header on line(s) %s", strings.Join(nums, ", "))
}
