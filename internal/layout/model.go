// Package layout turns project reports into an in-memory workbook model:
// sheets, cell values, styles, merges and dimensions. It performs no I/O;
// the xlsx package writes the model to disk.
package layout

import "sort"

// Style is a comparable cell style. Colours are RRGGBB hex; empty means
// none.
type Style struct {
	Fill      string
	FontColor string
	FontSize  float64
	Bold      bool
	Border    bool // thin border on all four sides
	Center    bool // centred horizontally and vertically
	Wrap      bool
	NumFmt    string // custom number format, e.g. "0.0"
}

// Ref is a 1-based cell position.
type Ref struct {
	Row int
	Col int
}

// Range is an inclusive rectangle of cells.
type Range struct {
	From Ref
	To   Ref
}

// Cell is a value and its style. Value is a string, int, float64 or
// time.Time; nil marks a styled empty cell.
type Cell struct {
	Value any
	Style Style
}

// PlacedCell is a cell with its position.
type PlacedCell struct {
	Ref
	Cell
}

// Sheet is one worksheet.
type Sheet struct {
	Name          string
	TabColor      string
	ShowGridLines bool
	Merges        []Range
	ColWidths     map[int]float64
	RowHeights    map[int]float64

	cells map[Ref]Cell
}

// NewSheet returns an empty sheet with gridlines shown.
func NewSheet(name string) *Sheet {
	return &Sheet{
		Name:          name,
		ShowGridLines: true,
		ColWidths:     map[int]float64{},
		RowHeights:    map[int]float64{},
		cells:         map[Ref]Cell{},
	}
}

// Set writes a value and style at (row, col).
func (s *Sheet) Set(row, col int, value any, style Style) {
	s.cells[Ref{Row: row, Col: col}] = Cell{Value: value, Style: style}
}

// Merge records a merged range, puts value in its top-left cell and styles
// every cell of the range.
func (s *Sheet) Merge(r Range, value any, style Style) {
	s.Merges = append(s.Merges, r)
	for row := r.From.Row; row <= r.To.Row; row++ {
		for col := r.From.Col; col <= r.To.Col; col++ {
			var v any
			if row == r.From.Row && col == r.From.Col {
				v = value
			}
			s.Set(row, col, v, style)
		}
	}
}

// Cell returns the cell at (row, col).
func (s *Sheet) Cell(row, col int) (Cell, bool) {
	c, ok := s.cells[Ref{Row: row, Col: col}]
	return c, ok
}

// Value returns the value at (row, col), or nil.
func (s *Sheet) Value(row, col int) any {
	return s.cells[Ref{Row: row, Col: col}].Value
}

// Cells returns every cell sorted by row, then column.
func (s *Sheet) Cells() []PlacedCell {
	out := make([]PlacedCell, 0, len(s.cells))
	for ref, c := range s.cells {
		out = append(out, PlacedCell{Ref: ref, Cell: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// MaxRow is the last row holding a cell, or 0 for an empty sheet.
func (s *Sheet) MaxRow() int {
	maxRow := 0
	for ref := range s.cells {
		maxRow = max(maxRow, ref.Row)
	}
	return maxRow
}

// UsedRows returns the rows holding at least one cell, ascending.
func (s *Sheet) UsedRows() []int {
	seen := map[int]bool{}
	for ref := range s.cells {
		seen[ref.Row] = true
	}
	rows := make([]int, 0, len(seen))
	for r := range seen {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}

// Workbook is an ordered list of sheets.
type Workbook struct {
	Sheets []*Sheet
}

// Sheet returns the sheet with the given name.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Names returns the sheet names in workbook order.
func (w *Workbook) Names() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}
