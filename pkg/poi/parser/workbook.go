// Package parser reads xlsx files back into the workbook model.
package parser

import (
	"fmt"
	"io"

	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook opens an xlsx file and rebuilds its workbook model.
func ReadWorkbook(path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readWorkbook(f)
}

// ReadWorkbookFrom is ReadWorkbook for an xlsx package held in r.
func ReadWorkbookFrom(r io.Reader) (*models.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readWorkbook(f)
}

func readWorkbook(f *excelize.File) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	styles := newStyleReader(f, wb.Styles())

	for _, name := range f.GetSheetList() {
		s, err := wb.CreateSheet(name)
		if err != nil {
			return nil, err
		}
		if err := readCells(f, s, styles); err != nil {
			return nil, fmt.Errorf("sheet %q cells: %w", name, err)
		}
		if err := readMerged(f, s); err != nil {
			return nil, fmt.Errorf("sheet %q merged cells: %w", name, err)
		}
		if err := readPanes(f, s); err != nil {
			return nil, fmt.Errorf("sheet %q panes: %w", name, err)
		}
	}
	if err := readPrintNames(f, wb); err != nil {
		return nil, err
	}
	return wb, nil
}

func readMerged(f *excelize.File, s *models.Sheet) error {
	merged, err := f.GetMergeCells(s.Name())
	if err != nil {
		return err
	}
	for _, m := range merged {
		r, err := models.ParseRange(m.GetStartAxis() + ":" + m.GetEndAxis())
		if err != nil {
			return err
		}
		if err := s.AddMergedRegion(r); err != nil {
			return err
		}
	}
	return nil
}

func readPanes(f *excelize.File, s *models.Sheet) error {
	p, err := f.GetPanes(s.Name())
	if err != nil {
		return err
	}
	left, top := 0, 0
	if p.TopLeftCell != "" {
		col, row, err := excelize.CellNameToCoordinates(p.TopLeftCell)
		if err != nil {
			return err
		}
		left, top = col-1, row-1
	}
	switch {
	case p.Freeze:
		return s.CreateFreezePaneAt(p.XSplit, p.YSplit, left, top)
	case p.Split || p.XSplit > 0 || p.YSplit > 0:
		return s.CreateSplitPane(p.XSplit, p.YSplit, left, top, parseQuadrant(p.ActivePane))
	}
	return nil
}

func parseQuadrant(name string) models.Quadrant {
	for q := models.PaneLowerRight; q <= models.PaneUpperLeft; q++ {
		if q.String() == name {
			return q
		}
	}
	return models.PaneUpperLeft
}
