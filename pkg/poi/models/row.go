package models

import (
	"fmt"
	"sort"
)

// Row is a sparse set of cells keyed by column index.
type Row struct {
	sheet  *Sheet
	index  int
	cells  map[int]*Cell
	height float64
}

// Index returns the 0-based row index.
func (r *Row) Index() int { return r.index }

// Sheet returns the owning sheet.
func (r *Row) Sheet() *Sheet { return r.sheet }

// CreateCell returns the cell at col, creating it if needed. Requesting an
// existing column returns the same cell.
func (r *Row) CreateCell(col int) *Cell {
	if col < 0 {
		panic(fmt.Sprintf("models: negative column index %d", col))
	}
	if c, ok := r.cells[col]; ok {
		return c
	}
	c := &Cell{row: r, col: col}
	r.cells[col] = c
	return c
}

// Cell returns the cell at col, or nil.
func (r *Row) Cell(col int) *Cell { return r.cells[col] }

// RemoveCell deletes the cell at col.
func (r *Row) RemoveCell(col int) { delete(r.cells, col) }

// Cells returns the cells in ascending column order.
func (r *Row) Cells() []*Cell {
	cols := make([]int, 0, len(r.cells))
	for col := range r.cells {
		cols = append(cols, col)
	}
	sort.Ints(cols)
	out := make([]*Cell, len(cols))
	for i, col := range cols {
		out[i] = r.cells[col]
	}
	return out
}

// Len returns the number of cells.
func (r *Row) Len() int { return len(r.cells) }

// Height returns the row height in points, falling back to the sheet default.
func (r *Row) Height() float64 {
	if r.height > 0 {
		return r.height
	}
	return r.sheet.DefaultRowHeight()
}

// CustomHeight reports whether the row has its own height.
func (r *Row) CustomHeight() bool { return r.height > 0 }

// SetHeight sets the row height in points; 0 restores the sheet default.
func (r *Row) SetHeight(points float64) error {
	if points < 0 || points > MaxRowHeight {
		return fmt.Errorf("row height %v out of range 0..%v", points, MaxRowHeight)
	}
	r.height = points
	return nil
}
