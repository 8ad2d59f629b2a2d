package file

type rows []Row

// New creates an empty row list with an initial capacity of 64
func (r *rows) New() {
	*r = make(rows, 0, 64)
}

// AddRow appends a row
func (r *rows) AddRow(row Row) {
	*r = append(*r, row)
}

// GetRow retrieves a row by index
func (r rows) GetRow(index int) (Row, bool) {
	if index < 0 || index >= len(r) {
		return nil, false
	}
	return r[index], true
}

// RowLength returns the number of rows
func (r rows) RowLength() int {
	return len(r)
}

// GetColLength returns the number of runes of a row, LF included
func (r rows) GetColLength(rowIndex int) (int, bool) {
	if rowIndex < 0 || rowIndex >= len(r) {
		return 0, false
	}
	return len(r[rowIndex]), true
}
