package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Unbounded marks a range side that spans the whole sheet, as in "4:5"
// (every column) or "A:C" (every row).
const Unbounded = -1

// CellRange is a rectangular block of cells with inclusive 0-based bounds.
// Whole-row ranges have FirstCol and LastCol set to Unbounded, whole-column
// ranges have FirstRow and LastRow set to Unbounded.
type CellRange struct {
	FirstRow int
	LastRow  int
	FirstCol int
	LastCol  int
}

// NewCellRange returns the range spanning the given rows and columns.
// The bounds are normalized so that first <= last.
func NewCellRange(firstRow, lastRow, firstCol, lastCol int) CellRange {
	if firstRow > lastRow {
		firstRow, lastRow = lastRow, firstRow
	}
	if firstCol > lastCol {
		firstCol, lastCol = lastCol, firstCol
	}
	return CellRange{FirstRow: firstRow, LastRow: lastRow, FirstCol: firstCol, LastCol: lastCol}
}

// WholeRows reports whether the range covers every column.
func (r CellRange) WholeRows() bool { return r.FirstCol == Unbounded }

// WholeColumns reports whether the range covers every row.
func (r CellRange) WholeColumns() bool { return r.FirstRow == Unbounded }

// Bounded reports whether the range has explicit bounds on all four sides.
func (r CellRange) Bounded() bool { return !r.WholeRows() && !r.WholeColumns() }

// NumCells returns the cell count of a bounded range, or 0 when unbounded.
func (r CellRange) NumCells() int {
	if !r.Bounded() {
		return 0
	}
	return (r.LastRow - r.FirstRow + 1) * (r.LastCol - r.FirstCol + 1)
}

// Contains reports whether the cell at (row, col) lies inside the range.
func (r CellRange) Contains(row, col int) bool {
	inRows := r.WholeColumns() || (row >= r.FirstRow && row <= r.LastRow)
	inCols := r.WholeRows() || (col >= r.FirstCol && col <= r.LastCol)
	return inRows && inCols
}

// Intersects reports whether two ranges share at least one cell.
func (r CellRange) Intersects(o CellRange) bool {
	rowsOverlap := r.WholeColumns() || o.WholeColumns() ||
		(r.FirstRow <= o.LastRow && o.FirstRow <= r.LastRow)
	colsOverlap := r.WholeRows() || o.WholeRows() ||
		(r.FirstCol <= o.LastCol && o.FirstCol <= r.LastCol)
	return rowsOverlap && colsOverlap
}

// Clamp bounds unbounded sides to a sheet of maxRows x maxCols.
func (r CellRange) Clamp(maxRows, maxCols int) CellRange {
	if r.WholeColumns() {
		r.FirstRow, r.LastRow = 0, maxRows-1
	}
	if r.WholeRows() {
		r.FirstCol, r.LastCol = 0, maxCols-1
	}
	return r
}

// String formats the range in relative A1 notation ("A1:C2", "4:5", "A:C").
func (r CellRange) String() string { return r.format(false) }

// Absolute formats the range with $ markers ("$A$1:$C$2", "$4:$5", "$A:$C").
func (r CellRange) Absolute() string { return r.format(true) }

func (r CellRange) format(abs bool) string {
	d := ""
	if abs {
		d = "$"
	}
	switch {
	case r.WholeRows():
		return fmt.Sprintf("%s%d:%s%d", d, r.FirstRow+1, d, r.LastRow+1)
	case r.WholeColumns():
		return d + ColumnName(r.FirstCol) + ":" + d + ColumnName(r.LastCol)
	}
	return d + ColumnName(r.FirstCol) + d + strconv.Itoa(r.FirstRow+1) + ":" +
		d + ColumnName(r.LastCol) + d + strconv.Itoa(r.LastRow+1)
}

// ColumnName returns the letter name of a 0-based column index ("A", "AB").
func ColumnName(col int) string {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return ""
	}
	return name
}

// CellName returns the A1 reference of a 0-based cell position.
func CellName(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return ""
	}
	return name
}

// ParseCellName parses an A1 reference ("$B$2" is accepted) into 0-based
// row and column indexes.
func ParseCellName(ref string) (row, col int, err error) {
	c, r, err := excelize.CellNameToCoordinates(strings.ReplaceAll(ref, "$", ""))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrRangeParse, ref, err)
	}
	return r - 1, c - 1, nil
}

// ParseRange parses a range expression. Accepted forms are "A1:C2",
// "$A$1:$C$2", a single cell "B2", whole rows "4:5" and whole columns "A:C".
// The $ markers are accepted and carry no meaning.
func ParseRange(expr string) (CellRange, error) {
	s := strings.ReplaceAll(strings.TrimSpace(expr), "$", "")
	if s == "" {
		return CellRange{}, fmt.Errorf("%w: empty expression", ErrRangeParse)
	}
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		row, col, err := ParseCellName(parts[0])
		if err != nil {
			return CellRange{}, err
		}
		return CellRange{FirstRow: row, LastRow: row, FirstCol: col, LastCol: col}, nil
	case 2:
	default:
		return CellRange{}, fmt.Errorf("%w: %q", ErrRangeParse, expr)
	}

	if first, last, ok := parseRowPair(parts[0], parts[1]); ok {
		return NewCellRange(first, last, Unbounded, Unbounded), nil
	}
	if first, last, ok := parseColumnPair(parts[0], parts[1]); ok {
		r := NewCellRange(Unbounded, Unbounded, first, last)
		return r, nil
	}

	r1, c1, err := ParseCellName(parts[0])
	if err != nil {
		return CellRange{}, fmt.Errorf("%w: %q", ErrRangeParse, expr)
	}
	r2, c2, err := ParseCellName(parts[1])
	if err != nil {
		return CellRange{}, fmt.Errorf("%w: %q", ErrRangeParse, expr)
	}
	return NewCellRange(r1, r2, c1, c2), nil
}

// MustParseRange is like ParseRange but panics on error. It is meant for
// literal expressions.
func MustParseRange(expr string) CellRange {
	r, err := ParseRange(expr)
	if err != nil {
		panic(err)
	}
	return r
}

func parseRowPair(a, b string) (int, int, bool) {
	first, ok := parseRowNumber(a)
	if !ok {
		return 0, 0, false
	}
	last, ok := parseRowNumber(b)
	if !ok {
		return 0, 0, false
	}
	return first - 1, last - 1, true
}

// parseRowNumber accepts unsigned 1-based row numbers up to excelize.TotalRows.
func parseRowNumber(s string) (int, bool) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > excelize.TotalRows {
		return 0, false
	}
	return n, true
}

func parseColumnPair(a, b string) (int, int, bool) {
	if !isLetters(a) || !isLetters(b) {
		return 0, 0, false
	}
	first, err := excelize.ColumnNameToNumber(a)
	if err != nil {
		return 0, 0, false
	}
	last, err := excelize.ColumnNameToNumber(b)
	if err != nil {
		return 0, 0, false
	}
	return first - 1, last - 1, true
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z') {
			return false
		}
	}
	return true
}
