package table

import (
	"bufio"
	"io"
	"strings"
)

// maxLineBytes bounds a single input line; bufio.Scanner's 64K default is
// too small for wide exports.
const maxLineBytes = 1 << 20

// Read consumes the whole input and splits it into Rows, one per
// newline-delimited line. Cells are split on the literal comma and trimmed of
// surrounding whitespace. There is no quoting or escaping: a comma inside
// data is indistinguishable from a delimiter.
//
// Blank trailing lines are dropped; a blank line in the middle of the input
// stays and will fail shape validation like any other short row.
//
// A failure of the underlying reader is returned as a *ReadError, distinct
// from the parsing and mapping error kinds.
func Read(r io.Reader) (Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows Table
	for scanner.Scan() {
		rows = append(rows, splitLine(scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		return nil, &ReadError{Err: err}
	}

	// blank trailing fragments are not rows
	for len(rows) > 0 && rows[len(rows)-1].isBlankLine() {
		rows = rows[:len(rows)-1]
	}

	return rows, nil
}

func splitLine(line string) Row {
	cells := strings.Split(line, ",")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}

	return cells
}

// isBlankLine reports a row produced by an empty input line. A line of bare
// delimiters like ",," is not blank: it is a row of empty cells and must
// still pass shape validation.
func (r Row) isBlankLine() bool {
	return len(r) == 1 && r[0] == ""
}
