package model

// Table is a grid of cells. Rows may be empty; a table with zero rows or zero
// columns is valid in the model.
type Table struct {
	Rows [][]Cell
}

func (*Table) isBlock() {}

// Cell holds zero or more paragraphs.
type Cell struct {
	Paragraphs []Paragraph
}

// NewTable returns a rows x cols table. Every cell holds one empty paragraph.
func NewTable(rows, cols uint) *Table {
	t := &Table{Rows: make([][]Cell, rows)}
	for r := range t.Rows {
		row := make([]Cell, cols)
		for c := range row {
			row[c] = Cell{Paragraphs: []Paragraph{{}}}
		}
		t.Rows[r] = row
	}
	return t
}

// NewTableFromText builds a table whose cells each hold one paragraph with the
// given text. Short rows are padded with empty cells up to the widest row.
func NewTableFromText(rows [][]string) *Table {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	t := NewTable(uint(len(rows)), uint(cols))
	for r, row := range rows {
		for c, text := range row {
			t.Rows[r][c].Paragraphs = []Paragraph{{Runs: []Run{TextRun(text)}}}
		}
	}
	return t
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the width of the widest row.
func (t *Table) ColumnCount() int {
	cols := 0
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// CellCount returns the total number of cells.
func (t *Table) CellCount() int {
	n := 0
	for _, row := range t.Rows {
		n += len(row)
	}
	return n
}

// IsDegenerate reports whether the table has no rows or no columns.
func (t *Table) IsDegenerate() bool {
	return t.RowCount() == 0 || t.ColumnCount() == 0
}
