package xls

import (
	"fmt"
	"sort"

	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
)

// WINDOW2 option bits.
const (
	win2Default  uint16 = 0x04B6 // grid, headers, zeros, default colors, outline, paged
	win2Selected uint16 = 0x0200
	win2Frozen   uint16 = 0x0008
	win2NoSplit  uint16 = 0x0100
)

// WSBOOL option bits.
const (
	wsDefault    uint16 = 0x04C0 // outline symbols, summary rows below and columns right
	wsAutobreaks uint16 = 0x0001
	wsFitToPage  uint16 = 0x0100
)

// mergedPerRecord is the most ranges one MERGEDCELLS record holds.
const mergedPerRecord = 1026

// sheetWriter encodes one worksheet substream.
type sheetWriter struct {
	out   stream
	s     *models.Sheet
	sst   *sst
	first bool
}

func (w *sheetWriter) write() error {
	if err := w.checkLimits(); err != nil {
		return err
	}
	w.out.record(recBOF, bof(bofWorksheet))
	w.writeDefaults()
	if err := w.writePageSetup(); err != nil {
		return err
	}
	w.writeColumns()
	w.writeDimensions()
	if err := w.writeRows(); err != nil {
		return err
	}
	w.writeWindow()
	w.writeMerged()
	w.writeLinks()
	w.out.record(recEOF, nil)
	return nil
}

func (w *sheetWriter) checkLimits() error {
	for _, row := range w.s.Rows() {
		if row.Index() >= MaxRows {
			return fmt.Errorf("%w: row %d beyond %d rows", ErrLimit, row.Index()+1, MaxRows)
		}
		for _, c := range row.Cells() {
			if c.ColumnIndex() >= MaxColumns {
				return fmt.Errorf("%w: cell %s beyond %d columns", ErrLimit, c.Name(), MaxColumns)
			}
		}
	}
	for col := range w.s.ColumnWidths() {
		if col >= MaxColumns {
			return fmt.Errorf("%w: column width for column %d", ErrLimit, col+1)
		}
	}
	for _, m := range w.s.MergedRegions() {
		if m.LastRow >= MaxRows || m.LastCol >= MaxColumns {
			return fmt.Errorf("%w: merged region %s", ErrLimit, m)
		}
	}
	return nil
}

func (w *sheetWriter) writeDefaults() {
	h := w.s.DefaultRowHeight()
	var grbit uint16
	if h != models.DefaultRowHeight {
		grbit = 0x0001
	}
	w.out.record(recDefaultRowHeight, rec(nil).u16(grbit).u16(uint16(models.PointsToTwips(h))))

	ps := w.s.PrintSetup()
	opts := wsDefault
	if ps.Autobreaks {
		opts |= wsAutobreaks
	}
	if ps.FitToPage {
		opts |= wsFitToPage
	}
	w.out.record(recWSBool, rec(nil).u16(opts))
}

func (w *sheetWriter) writePageSetup() error {
	if h := w.s.Header(); !h.Empty() {
		b, err := xlString(h.Codes())
		if err != nil {
			return err
		}
		w.out.record(recHeader, b)
	}
	if f := w.s.Footer(); !f.Empty() {
		b, err := xlString(f.Codes())
		if err != nil {
			return err
		}
		w.out.record(recFooter, b)
	}

	ps := w.s.PrintSetup()
	fitW, fitH := 1, 1
	if ps.FitToPage {
		fitW, fitH = ps.FitWidth, ps.FitHeight
	}
	opts := uint16(0x0002) // portrait
	if ps.Landscape {
		opts = 0
	}
	w.out.record(recSetup, rec(nil).
		u16(1).   // letter
		u16(100). // scale
		u16(1).   // first page number
		u16(uint16(fitW)).
		u16(uint16(fitH)).
		u16(opts).
		u16(300).
		u16(300).
		f64(0.5). // header margin, inches
		f64(0.5).
		u16(1))
	return nil
}

func (w *sheetWriter) writeColumns() {
	widths := w.s.ColumnWidths()
	cols := make([]int, 0, len(widths))
	for col := range widths {
		cols = append(cols, col)
	}
	sort.Ints(cols)
	for _, col := range cols {
		w.out.record(recColInfo, rec(nil).
			u16(uint16(col)).
			u16(uint16(col)).
			u16(uint16(models.WidthUnits(widths[col]))).
			u16(xfIndex(0)).
			u16(0x0002). // user set
			u16(0))
	}
}

func (w *sheetWriter) writeDimensions() {
	d, ok := w.s.Dimension()
	if !ok {
		w.out.record(recDimensions, rec(nil).zeros(14))
		return
	}
	w.out.record(recDimensions, rec(nil).
		u32(uint32(d.FirstRow)).
		u32(uint32(d.LastRow+1)).
		u16(uint16(d.FirstCol)).
		u16(uint16(d.LastCol+1)).
		u16(0))
}

// writeRows emits each ROW record followed by its cells.
func (w *sheetWriter) writeRows() error {
	for _, row := range w.s.Rows() {
		cells := row.Cells()
		var colMic, colMac int
		if len(cells) > 0 {
			colMic = cells[0].ColumnIndex()
			colMac = cells[len(cells)-1].ColumnIndex() + 1
		}
		grbit := uint16(0x0100)
		if row.CustomHeight() {
			grbit |= 0x0040
		}
		w.out.record(recRow, rec(nil).
			u16(uint16(row.Index())).
			u16(uint16(colMic)).
			u16(uint16(colMac)).
			u16(uint16(models.PointsToTwips(row.Height()))).
			u16(0).
			u16(0).
			u16(grbit).
			u16(xfIndex(0)))
		for _, c := range cells {
			if err := w.writeCell(c); err != nil {
				return fmt.Errorf("cell %s: %w", c.Name(), err)
			}
		}
	}
	return nil
}

func (w *sheetWriter) writeCell(c *models.Cell) error {
	head := rec(nil).u16(uint16(c.RowIndex())).u16(uint16(c.ColumnIndex())).u16(xfIndex(c.Style()))
	v := c.Value()
	switch v.Type() {
	case models.CellNumber, models.CellDate:
		w.out.record(recNumber, head.f64(v.Number()))
	case models.CellText:
		i, err := w.sst.add(v, fontIndex)
		if err != nil {
			return err
		}
		w.out.record(recLabelSST, head.u32(uint32(i)))
	case models.CellBool:
		var b uint8
		if v.Bool() {
			b = 1
		}
		w.out.record(recBoolErr, head.u8(b).u8(0))
	case models.CellError:
		w.out.record(recBoolErr, head.u8(uint8(v.ErrorCode())).u8(1))
	default:
		w.out.record(recBlank, head)
	}
	return nil
}

func (w *sheetWriter) writeWindow() {
	p := w.s.Pane()
	opts := win2Default
	if w.first {
		opts |= win2Selected
	}
	if p.Kind == models.PaneFreeze {
		opts |= win2Frozen | win2NoSplit
	}
	w.out.record(recWindow2, rec(nil).
		u16(opts).
		u16(0).
		u16(0).
		u32(0x40). // grid color
		u16(0).
		u16(0).
		u32(0))
	if p.Kind == models.PaneNone {
		return
	}
	w.out.record(recPane, rec(nil).
		u16(uint16(p.ColSplit)).
		u16(uint16(p.RowSplit)).
		u16(uint16(p.TopRow)).
		u16(uint16(p.LeftCol)).
		u8(uint8(p.Active)).
		u8(0))
}

func (w *sheetWriter) writeMerged() {
	merged := w.s.MergedRegions()
	for len(merged) > 0 {
		n := len(merged)
		if n > mergedPerRecord {
			n = mergedPerRecord
		}
		r := rec(nil).u16(uint16(n))
		for _, m := range merged[:n] {
			r = r.ref8(m.FirstRow, m.LastRow, m.FirstCol, m.LastCol)
		}
		w.out.record(recMergedCells, r)
		merged = merged[n:]
	}
}

func (w *sheetWriter) writeLinks() {
	for _, row := range w.s.Rows() {
		for _, c := range row.Cells() {
			l, ok := c.Hyperlink()
			if !ok {
				continue
			}
			w.out.record(recHLink, hlinkRecord(c.RowIndex(), c.ColumnIndex(), l))
			if l.Tooltip != "" {
				w.out.record(recQuickTip, quickTipRecord(c.RowIndex(), c.ColumnIndex(), l.Tooltip))
			}
		}
	}
}
