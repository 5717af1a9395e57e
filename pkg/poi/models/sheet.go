package models

import (
	"fmt"
	"sort"
)

// HeaderFooter is the text printed at the top or bottom of every page, in
// three sections. The text may contain codes such as HeaderPage().
type HeaderFooter struct {
	Left   string
	Center string
	Right  string
}

// Empty reports whether all sections are empty.
func (h HeaderFooter) Empty() bool { return h.Left == "" && h.Center == "" && h.Right == "" }

// Codes returns the single-string form used by both file formats:
// "&L<left>&C<center>&R<right>", omitting empty sections.
func (h HeaderFooter) Codes() string {
	s := ""
	if h.Left != "" {
		s += "&L" + h.Left
	}
	if h.Center != "" {
		s += "&C" + h.Center
	}
	if h.Right != "" {
		s += "&R" + h.Right
	}
	return s
}

// HeaderPage is the code for the current page number.
func HeaderPage() string { return "&P" }

// HeaderNumPages is the code for the total page count.
func HeaderNumPages() string { return "&N" }

// HeaderDate is the code for the print date.
func HeaderDate() string { return "&D" }

// HeaderSheetName is the code for the sheet name.
func HeaderSheetName() string { return "&A" }

// HeaderFont is the code switching to a font family and style, e.g.
// HeaderFont("Stencil-Normal", "Italic").
func HeaderFont(name, style string) string { return "&\"" + name + "," + style + "\"" }

// HeaderFontSize is the code switching the font size in points.
func HeaderFontSize(points int) string { return fmt.Sprintf("&%d", points) }

// PrintSetup holds the page setup of a sheet.
type PrintSetup struct {
	// FitWidth and FitHeight are the number of pages to fit the sheet on
	// when FitToPage is set; 0 means unconstrained.
	FitWidth  int
	FitHeight int
	FitToPage bool
	Landscape bool
	// Autobreaks shows automatic page breaks.
	Autobreaks bool
}

// Sheet is a named grid: a sparse set of rows plus the sheet-level settings.
type Sheet struct {
	wb          *Workbook
	name        string
	rows        map[int]*Row
	merged      []CellRange
	pane        Pane
	header      HeaderFooter
	footer      HeaderFooter
	printArea   *CellRange
	repeatRows  *CellRange
	repeatCols  *CellRange
	setup       PrintSetup
	colWidths   map[int]float64
	defaultRowH float64
}

func newSheet(wb *Workbook, name string) *Sheet {
	return &Sheet{
		wb:          wb,
		name:        name,
		rows:        make(map[int]*Row),
		colWidths:   make(map[int]float64),
		defaultRowH: DefaultRowHeight,
	}
}

func (s *Sheet) checkWritable() error {
	if s.wb.written {
		return fmt.Errorf("%w: sheet %q", ErrWorkbookWritten, s.name)
	}
	return nil
}

// Name returns the sheet name.
func (s *Sheet) Name() string { return s.name }

// Workbook returns the owning workbook.
func (s *Sheet) Workbook() *Workbook { return s.wb }

// CreateRow returns the row at index, creating it if needed. Requesting an
// existing index returns the same row; callers overwrite its cells as they
// see fit.
func (s *Sheet) CreateRow(index int) *Row {
	if index < 0 {
		panic(fmt.Sprintf("models: negative row index %d", index))
	}
	if r, ok := s.rows[index]; ok {
		return r
	}
	r := &Row{sheet: s, index: index, cells: make(map[int]*Cell)}
	s.rows[index] = r
	return r
}

// Row returns the row at index, or nil.
func (s *Sheet) Row(index int) *Row { return s.rows[index] }

// Cell returns the cell at (row, col), or nil.
func (s *Sheet) Cell(row, col int) *Cell {
	r := s.rows[row]
	if r == nil {
		return nil
	}
	return r.cells[col]
}

// CreateCell returns the cell at (row, col), creating the row and cell as needed.
func (s *Sheet) CreateCell(row, col int) *Cell {
	return s.CreateRow(row).CreateCell(col)
}

// Rows returns the rows in ascending index order. Missing indexes are not
// materialized.
func (s *Sheet) Rows() []*Row {
	idx := make([]int, 0, len(s.rows))
	for i := range s.rows {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	out := make([]*Row, len(idx))
	for i, k := range idx {
		out[i] = s.rows[k]
	}
	return out
}

// Dimension returns the bounding range of all cells, and false for a sheet
// without cells.
func (s *Sheet) Dimension() (CellRange, bool) {
	minRow, maxRow, minCol, maxCol := -1, -1, -1, -1
	for rowIdx, row := range s.rows {
		for colIdx := range row.cells {
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}
	if minRow < 0 {
		return CellRange{}, false
	}
	return CellRange{FirstRow: minRow, LastRow: maxRow, FirstCol: minCol, LastCol: maxCol}, true
}

// AddMergedRegion merges a bounded range of at least two cells. A region
// intersecting an existing one is rejected with ErrOverlap and the region
// set is left unchanged.
func (s *Sheet) AddMergedRegion(r CellRange) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	if !r.Bounded() || r.FirstRow < 0 || r.FirstCol < 0 {
		return fmt.Errorf("%w: %s is not a bounded range", ErrInvalidRegion, r)
	}
	if r.NumCells() < 2 {
		return fmt.Errorf("%w: %s must contain 2 or more cells", ErrInvalidRegion, r)
	}
	for _, m := range s.merged {
		if m.Intersects(r) {
			return fmt.Errorf("%w: %s intersects %s", ErrOverlap, r, m)
		}
	}
	s.merged = append(s.merged, r)
	return nil
}

// MergedRegions returns the merged regions in insertion order.
func (s *Sheet) MergedRegions() []CellRange {
	return append([]CellRange(nil), s.merged...)
}

// RemoveMergedRegion removes the i-th merged region.
func (s *Sheet) RemoveMergedRegion(i int) {
	if i < 0 || i >= len(s.merged) {
		return
	}
	s.merged = append(s.merged[:i], s.merged[i+1:]...)
}

// InMergedRegion reports whether (row, col) is covered by a merged region.
func (s *Sheet) InMergedRegion(row, col int) bool {
	for _, m := range s.merged {
		if m.Contains(row, col) {
			return true
		}
	}
	return false
}

// CreateFreezePane freezes colSplit columns and rowSplit rows, with the
// scrolling pane starting right at the split. (0, 0) removes the pane.
func (s *Sheet) CreateFreezePane(colSplit, rowSplit int) error {
	return s.CreateFreezePaneAt(colSplit, rowSplit, colSplit, rowSplit)
}

// CreateFreezePaneAt freezes colSplit columns and rowSplit rows and scrolls
// the lower-right pane so that leftCol and topRow are the first visible
// column and row. It replaces any split pane.
func (s *Sheet) CreateFreezePaneAt(colSplit, rowSplit, leftCol, topRow int) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	if colSplit < 0 || rowSplit < 0 || leftCol < 0 || topRow < 0 {
		return fmt.Errorf("%w: freeze (%d, %d) at (%d, %d)", ErrInvalidPane, colSplit, rowSplit, leftCol, topRow)
	}
	if colSplit == 0 && rowSplit == 0 {
		s.pane = Pane{}
		return nil
	}
	s.pane = Pane{
		Kind:     PaneFreeze,
		ColSplit: colSplit,
		RowSplit: rowSplit,
		LeftCol:  leftCol,
		TopRow:   topRow,
		Active:   freezeQuadrant(colSplit, rowSplit),
	}
	return nil
}

// CreateSplitPane splits the window at xSplit, ySplit (twips from the
// top-left corner) with leftCol and topRow visible in the scrolling panes and
// the given quadrant active. It replaces any frozen pane.
func (s *Sheet) CreateSplitPane(xSplit, ySplit, leftCol, topRow int, active Quadrant) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	if xSplit < 0 || ySplit < 0 || leftCol < 0 || topRow < 0 || active > PaneUpperLeft {
		return fmt.Errorf("%w: split (%d, %d) at (%d, %d)", ErrInvalidPane, xSplit, ySplit, leftCol, topRow)
	}
	s.pane = Pane{
		Kind:     PaneSplit,
		ColSplit: xSplit,
		RowSplit: ySplit,
		LeftCol:  leftCol,
		TopRow:   topRow,
		Active:   active,
	}
	return nil
}

// Pane returns the pane state.
func (s *Sheet) Pane() Pane { return s.pane }

// Header returns the page header.
func (s *Sheet) Header() HeaderFooter { return s.header }

// SetHeader replaces the page header.
func (s *Sheet) SetHeader(h HeaderFooter) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	if err := checkHeaderFooter(h); err != nil {
		return err
	}
	s.header = h
	return nil
}

// Footer returns the page footer.
func (s *Sheet) Footer() HeaderFooter { return s.footer }

// SetFooter replaces the page footer.
func (s *Sheet) SetFooter(f HeaderFooter) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	if err := checkHeaderFooter(f); err != nil {
		return err
	}
	s.footer = f
	return nil
}

func checkHeaderFooter(h HeaderFooter) error {
	if n := len([]rune(h.Codes())); n > MaxHeaderFooterLen {
		return fmt.Errorf("header/footer text of %d characters exceeds %d", n, MaxHeaderFooterLen)
	}
	return nil
}

// PrintArea returns the print area, if set.
func (s *Sheet) PrintArea() (CellRange, bool) {
	if s.printArea == nil {
		return CellRange{}, false
	}
	return *s.printArea, true
}

// SetPrintArea sets the print area; see Workbook.SetPrintArea for the
// expression form.
func (s *Sheet) SetPrintArea(r CellRange) {
	s.printArea = &r
}

// ClearPrintArea removes the print area.
func (s *Sheet) ClearPrintArea() { s.printArea = nil }

// SetRepeatingRows sets the rows printed at the top of every page, e.g. the
// range parsed from "4:5". A zero CellRange pointer clears them.
func (s *Sheet) SetRepeatingRows(r *CellRange) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	if r != nil && !r.WholeRows() {
		return fmt.Errorf("%w: repeating rows need a whole-row range, got %s", ErrRangeParse, r)
	}
	s.repeatRows = r
	return nil
}

// SetRepeatingColumns sets the columns printed at the left of every page,
// e.g. the range parsed from "A:C". A nil range clears them.
func (s *Sheet) SetRepeatingColumns(r *CellRange) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	if r != nil && !r.WholeColumns() {
		return fmt.Errorf("%w: repeating columns need a whole-column range, got %s", ErrRangeParse, r)
	}
	s.repeatCols = r
	return nil
}

// RepeatingRows returns the repeating rows, if set.
func (s *Sheet) RepeatingRows() (CellRange, bool) {
	if s.repeatRows == nil {
		return CellRange{}, false
	}
	return *s.repeatRows, true
}

// RepeatingColumns returns the repeating columns, if set.
func (s *Sheet) RepeatingColumns() (CellRange, bool) {
	if s.repeatCols == nil {
		return CellRange{}, false
	}
	return *s.repeatCols, true
}

// PrintSetup returns the page setup.
func (s *Sheet) PrintSetup() PrintSetup { return s.setup }

// SetPrintSetup replaces the page setup.
func (s *Sheet) SetPrintSetup(p PrintSetup) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	if p.FitWidth < 0 || p.FitHeight < 0 || p.FitWidth > 0x7FFF || p.FitHeight > 0x7FFF {
		return fmt.Errorf("fit to %dx%d pages out of range", p.FitWidth, p.FitHeight)
	}
	s.setup = p
	return nil
}

// SetFitToPage toggles fitting the sheet to the FitWidth x FitHeight pages.
func (s *Sheet) SetFitToPage(b bool) { s.setup.FitToPage = b }

// SetAutobreaks toggles the display of automatic page breaks.
func (s *Sheet) SetAutobreaks(b bool) { s.setup.Autobreaks = b }

// DefaultRowHeight returns the height in points of rows without their own height.
func (s *Sheet) DefaultRowHeight() float64 { return s.defaultRowH }

// SetDefaultRowHeight sets the default row height in points.
func (s *Sheet) SetDefaultRowHeight(points float64) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	if points <= 0 || points > MaxRowHeight {
		return fmt.Errorf("row height %v out of range (0, %v]", points, MaxRowHeight)
	}
	s.defaultRowH = points
	return nil
}

// ColumnWidth returns the width of a column in characters and whether it
// was set explicitly.
func (s *Sheet) ColumnWidth(col int) (float64, bool) {
	w, ok := s.colWidths[col]
	if !ok {
		return DefaultColumnWidth, false
	}
	return w, true
}

// SetColumnWidth sets the width of a column in characters.
func (s *Sheet) SetColumnWidth(col int, chars float64) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	if col < 0 || chars < 0 || chars > MaxColumnWidth {
		return fmt.Errorf("column %d width %v out of range 0..%d", col, chars, MaxColumnWidth)
	}
	s.colWidths[col] = chars
	return nil
}

// ColumnWidths returns the explicitly set widths keyed by column.
func (s *Sheet) ColumnWidths() map[int]float64 {
	out := make(map[int]float64, len(s.colWidths))
	for k, v := range s.colWidths {
		out[k] = v
	}
	return out
}

// SetRegionBorder draws a border along the selected outer edges of a
// bounded range. Cells along those edges get a derived style; missing cells
// are created.
func (s *Sheet) SetRegionBorder(r CellRange, edges Edge, b Border) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	if !r.Bounded() {
		return fmt.Errorf("%w: %s is not a bounded range", ErrRangeParse, r)
	}
	apply := func(row, col int, e Edge) error {
		return s.CreateCell(row, col).UpdateStyle(func(cs *CellStyle) {
			*cs = cs.withBorder(e, b)
		})
	}
	for col := r.FirstCol; col <= r.LastCol; col++ {
		if edges&EdgeTop != 0 {
			if err := apply(r.FirstRow, col, EdgeTop); err != nil {
				return err
			}
		}
		if edges&EdgeBottom != 0 {
			if err := apply(r.LastRow, col, EdgeBottom); err != nil {
				return err
			}
		}
	}
	for row := r.FirstRow; row <= r.LastRow; row++ {
		if edges&EdgeLeft != 0 {
			if err := apply(row, r.FirstCol, EdgeLeft); err != nil {
				return err
			}
		}
		if edges&EdgeRight != 0 {
			if err := apply(row, r.LastCol, EdgeRight); err != nil {
				return err
			}
		}
	}
	return nil
}
