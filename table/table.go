// Package table holds the raw row model of a delimited input: reading lines
// into trimmed cells and validating the table shape before any field mapping
// happens.
package table

// Row is one input line split into trimmed cells. Cell order is significant.
type Row []string

// Table is the full parsed input: the first Row is the header, the rest are
// data rows. Once Validate has passed, every Row has the header's cell count.
type Table []Row

// Header returns the header row, or nil for an empty table.
func (t Table) Header() Row {
	if len(t) == 0 {
		return nil
	}

	return t[0]
}

// DataRows returns the rows after the header, in input order.
func (t Table) DataRows() []Row {
	if len(t) == 0 {
		return nil
	}

	return t[1:]
}
