package table

// Validate checks the table shape before any mapping begins:
//
//  1. The table must contain at least a header row, else ErrNoRows.
//  2. Every row must have the header's cell count, else *ColumnCountError
//     carrying the complete set of offending line numbers.
//
// Line numbers are 1-based with the header as line 1, matching how the rows
// appear in the source file. The check is eager over the whole table: one
// malformed row anywhere invalidates the whole decode.
func (t Table) Validate() error {
	if len(t) == 0 {
		return ErrNoRows
	}

	want := len(t.Header())

	var lines []int
	for i, row := range t.DataRows() {
		if len(row) != want {
			lines = append(lines, i+2)
		}
	}

	if len(lines) > 0 {
		return &ColumnCountError{Lines: lines}
	}

	return nil
}
