// Package xlsx writes workbooks as ZIP-packaged SpreadsheetML using excelize.
package xlsx

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
	"github.com/xuri/excelize/v2"
)

// placeholderSheet is the sheet excelize creates with every new file.
const placeholderSheet = "Sheet1"

// Encoder builds an excelize file from a workbook. Use it once: Open, then
// WriteSheet for each sheet in order, then Flush and Close.
type Encoder struct {
	log    *logrus.Entry
	f      *excelize.File
	wb     *models.Workbook
	styles *styleCache
}

// NewEncoder returns an encoder logging to log, or to the standard logger
// when log is nil.
func NewEncoder(log *logrus.Entry) *Encoder {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Encoder{log: log.WithField("format", "xlsx")}
}

// Open creates the file and one worksheet per sheet, in workbook order. An
// empty workbook keeps excelize's blank placeholder sheet.
func (e *Encoder) Open(wb *models.Workbook) error {
	e.f = excelize.NewFile()
	e.wb = wb
	e.styles = newStyleCache(e.f, wb.Styles())

	for i, s := range wb.Sheets() {
		if i == 0 {
			if s.Name() != placeholderSheet {
				if err := e.f.SetSheetName(placeholderSheet, s.Name()); err != nil {
					return fmt.Errorf("rename sheet %q: %w", s.Name(), err)
				}
			}
			continue
		}
		if _, err := e.f.NewSheet(s.Name()); err != nil {
			return fmt.Errorf("create sheet %q: %w", s.Name(), err)
		}
	}
	e.f.SetActiveSheet(0)
	e.log.WithField("sheets", wb.NumSheets()).Debug("opened xlsx workbook")
	return nil
}

// WriteSheet writes the cells and settings of one sheet.
func (e *Encoder) WriteSheet(s *models.Sheet) error {
	if e.f == nil {
		return errors.New("xlsx: WriteSheet before Open")
	}
	name := s.Name()
	cells := 0
	for _, row := range s.Rows() {
		if row.CustomHeight() {
			if err := e.f.SetRowHeight(name, row.Index()+1, row.Height()); err != nil {
				return fmt.Errorf("row %d height: %w", row.Index()+1, err)
			}
		}
		for _, c := range row.Cells() {
			if err := e.writeCell(name, c); err != nil {
				return fmt.Errorf("cell %s!%s: %w", name, c.Name(), err)
			}
			cells++
		}
	}
	if err := e.writeLayout(s); err != nil {
		return fmt.Errorf("sheet %q: %w", name, err)
	}
	e.log.WithFields(logrus.Fields{"sheet": name, "cells": cells}).Debug("wrote sheet")
	return nil
}

func (e *Encoder) writeCell(sheet string, c *models.Cell) error {
	ref := c.Name()
	v := c.Value()
	var err error
	switch v.Type() {
	case models.CellNumber, models.CellDate:
		err = e.f.SetCellFloat(sheet, ref, v.Number(), -1, 64)
	case models.CellText:
		if len(v.Runs()) > 0 {
			err = e.f.SetCellRichText(sheet, ref, e.richText(v))
		} else {
			err = e.f.SetCellStr(sheet, ref, v.Text())
		}
	case models.CellBool:
		err = e.f.SetCellBool(sheet, ref, v.Bool())
	case models.CellError:
		// A constant error formula; recalculation yields the error value.
		err = e.f.SetCellFormula(sheet, ref, v.ErrorCode().String())
	}
	if err != nil {
		return err
	}
	if c.Style() != 0 {
		id, err := e.styles.id(c.Style())
		if err != nil {
			return err
		}
		if err := e.f.SetCellStyle(sheet, ref, ref, id); err != nil {
			return err
		}
	}
	if l, ok := c.Hyperlink(); ok {
		if err := e.writeLink(sheet, ref, l); err != nil {
			return err
		}
	}
	return nil
}

// richText splits text at run boundaries. Text ahead of the first run keeps
// the cell font.
func (e *Encoder) richText(v models.Value) []excelize.RichTextRun {
	runes := []rune(v.Text())
	runs := v.Runs()
	var out []excelize.RichTextRun
	if runs[0].Start > 0 {
		out = append(out, excelize.RichTextRun{Text: string(runes[:runs[0].Start])})
	}
	for i, r := range runs {
		end := len(runes)
		if i+1 < len(runs) {
			end = runs[i+1].Start
		}
		run := excelize.RichTextRun{Text: string(runes[r.Start:end])}
		if f, ok := e.wb.Styles().Font(r.Font); ok {
			run.Font = convertFont(f, e.wb.Palette())
		}
		out = append(out, run)
	}
	return out
}

func (e *Encoder) writeLink(sheet, ref string, l models.Hyperlink) error {
	var opts excelize.HyperlinkOpts
	if l.Tooltip != "" {
		tip := l.Tooltip
		opts.Tooltip = &tip
	}
	linkType := "External"
	if l.Kind == models.LinkDocument {
		linkType = "Location"
	}
	return e.f.SetCellHyperLink(sheet, ref, l.Address, linkType, opts)
}

func (e *Encoder) writeLayout(s *models.Sheet) error {
	name := s.Name()
	if d, ok := s.Dimension(); ok {
		if err := e.f.SetSheetDimension(name, d.String()); err != nil {
			return err
		}
	}
	for col, w := range s.ColumnWidths() {
		cn := models.ColumnName(col)
		if err := e.f.SetColWidth(name, cn, cn, w); err != nil {
			return err
		}
	}
	if h := s.DefaultRowHeight(); h != models.DefaultRowHeight {
		if err := e.f.SetSheetProps(name, &excelize.SheetPropsOptions{DefaultRowHeight: &h}); err != nil {
			return err
		}
	}
	for _, m := range s.MergedRegions() {
		if err := e.f.MergeCell(name, models.CellName(m.FirstRow, m.FirstCol), models.CellName(m.LastRow, m.LastCol)); err != nil {
			return err
		}
	}
	if err := e.writePane(s); err != nil {
		return err
	}
	if err := e.writeHeaderFooter(s); err != nil {
		return err
	}
	if err := e.writePrintSetup(s); err != nil {
		return err
	}
	return e.writeNames(s)
}

func (e *Encoder) writePane(s *models.Sheet) error {
	p := s.Pane()
	if p.Kind == models.PaneNone {
		return nil
	}
	topLeft := models.CellName(p.TopRow, p.LeftCol)
	return e.f.SetPanes(s.Name(), &excelize.Panes{
		Freeze:      p.Kind == models.PaneFreeze,
		Split:       p.Kind == models.PaneSplit,
		XSplit:      p.ColSplit,
		YSplit:      p.RowSplit,
		TopLeftCell: topLeft,
		ActivePane:  p.Active.String(),
		Selection: []excelize.Selection{
			{SQRef: topLeft, ActiveCell: topLeft, Pane: p.Active.String()},
		},
	})
}

func (e *Encoder) writeHeaderFooter(s *models.Sheet) error {
	h, f := s.Header(), s.Footer()
	if h.Empty() && f.Empty() {
		return nil
	}
	return e.f.SetHeaderFooter(s.Name(), &excelize.HeaderFooterOptions{
		OddHeader: h.Codes(),
		OddFooter: f.Codes(),
	})
}

func (e *Encoder) writePrintSetup(s *models.Sheet) error {
	ps := s.PrintSetup()
	autobreaks := ps.Autobreaks
	fit := ps.FitToPage
	if err := e.f.SetSheetProps(s.Name(), &excelize.SheetPropsOptions{
		AutoPageBreaks: &autobreaks,
		FitToPage:      &fit,
	}); err != nil {
		return err
	}
	var layout excelize.PageLayoutOptions
	if ps.Landscape {
		o := "landscape"
		layout.Orientation = &o
	}
	if ps.FitToPage {
		w, h := ps.FitWidth, ps.FitHeight
		layout.FitToWidth = &w
		layout.FitToHeight = &h
	}
	if layout.Orientation == nil && layout.FitToWidth == nil {
		return nil
	}
	return e.f.SetPageLayout(s.Name(), &layout)
}

// writeNames adds the sheet-scoped print area and print titles.
func (e *Encoder) writeNames(s *models.Sheet) error {
	prefix := models.QuoteSheetName(s.Name()) + "!"
	if area, ok := s.PrintArea(); ok {
		if err := e.f.SetDefinedName(&excelize.DefinedName{
			Name:     "_xlnm.Print_Area",
			RefersTo: prefix + area.Absolute(),
			Scope:    s.Name(),
		}); err != nil {
			return err
		}
	}
	var titles string
	if cols, ok := s.RepeatingColumns(); ok {
		titles = prefix + cols.Absolute()
	}
	if rows, ok := s.RepeatingRows(); ok {
		if titles != "" {
			titles += ","
		}
		titles += prefix + rows.Absolute()
	}
	if titles == "" {
		return nil
	}
	return e.f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Titles",
		RefersTo: titles,
		Scope:    s.Name(),
	})
}

// Flush writes the package to w.
func (e *Encoder) Flush(w io.Writer) error {
	if e.f == nil {
		return errors.New("xlsx: Flush before Open")
	}
	n, err := e.f.WriteTo(w)
	if err != nil {
		return err
	}
	e.log.WithField("bytes", n).Debug("flushed xlsx package")
	return nil
}

// Close releases the file. It is safe to call without Flush.
func (e *Encoder) Close() error {
	if e.f == nil {
		return nil
	}
	err := e.f.Close()
	e.f = nil
	return err
}
