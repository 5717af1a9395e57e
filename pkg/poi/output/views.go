// Package output renders workbooks as JSON summaries.
package output

import (
	"math"
	"strconv"

	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
	"github.com/xuri/excelize/v2"
)

// dateLayout formats date cells.
const dateLayout = "2006-01-02T15:04:05"

// CellRow represents a single row of cells with optional hyperlinks.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (1-based, as a string) to cell value.
	C map[string]interface{} `json:"c"`
	// Links maps column index to hyperlink address (optional).
	Links map[string]string `json:"links,omitempty"`
}

// PrintArea represents cell coordinate bounds, 1-based and inclusive.
type PrintArea struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}

// PaneView describes frozen or split panes.
type PaneView struct {
	Kind    string `json:"kind"`
	Col     int    `json:"col"`
	Row     int    `json:"row"`
	TopLeft string `json:"top_left"`
}

// SheetData represents the contents and settings of one sheet.
type SheetData struct {
	Name string `json:"name"`
	// Dimension is the used range, e.g. "A1:C10"; empty for blank sheets.
	Dimension   string     `json:"dimension,omitempty"`
	Rows        []CellRow  `json:"rows,omitempty"`
	MergedCells []string   `json:"merged_cells,omitempty"`
	PrintArea   *PrintArea `json:"print_area,omitempty"`
	Pane        *PaneView  `json:"pane,omitempty"`
	Header      string     `json:"header,omitempty"`
	Footer      string     `json:"footer,omitempty"`
}

// WorkbookData represents a workbook with its sheets in order.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string      `json:"book_name"`
	Sheets   []SheetData `json:"sheets"`
}

// FromWorkbook builds the JSON view of wb.
func FromWorkbook(wb *models.Workbook, bookName string) *WorkbookData {
	data := &WorkbookData{BookName: bookName, Sheets: make([]SheetData, 0, wb.NumSheets())}
	for _, s := range wb.Sheets() {
		data.Sheets = append(data.Sheets, FromSheet(s))
	}
	return data
}

// FromSheet builds the JSON view of one sheet. Blank cells are left out.
func FromSheet(s *models.Sheet) SheetData {
	sd := SheetData{
		Name:   s.Name(),
		Header: s.Header().Codes(),
		Footer: s.Footer().Codes(),
	}
	if d, ok := s.Dimension(); ok {
		sd.Dimension = d.String()
	}

	for _, row := range s.Rows() {
		cr := CellRow{R: row.Index() + 1, C: make(map[string]interface{})}
		for _, c := range row.Cells() {
			v, ok := cellValue(c)
			if !ok {
				continue
			}
			col := strconv.Itoa(c.ColumnIndex() + 1)
			cr.C[col] = v
			if l, ok := c.Hyperlink(); ok {
				if cr.Links == nil {
					cr.Links = make(map[string]string)
				}
				cr.Links[col] = l.Address
			}
		}
		if len(cr.C) > 0 {
			sd.Rows = append(sd.Rows, cr)
		}
	}

	for _, m := range s.MergedRegions() {
		sd.MergedCells = append(sd.MergedCells, m.String())
	}
	if area, ok := s.PrintArea(); ok {
		area = area.Clamp(excelize.TotalRows, excelize.MaxColumns)
		sd.PrintArea = &PrintArea{R1: area.FirstRow + 1, C1: area.FirstCol + 1, R2: area.LastRow + 1, C2: area.LastCol + 1}
	}
	if p := s.Pane(); p.Kind != models.PaneNone {
		kind := "freeze"
		if p.Kind == models.PaneSplit {
			kind = "split"
		}
		sd.Pane = &PaneView{Kind: kind, Col: p.ColSplit, Row: p.RowSplit, TopLeft: models.CellName(p.TopRow, p.LeftCol)}
	}
	return sd
}

// cellValue converts a cell to a JSON value. Integral numbers become int64,
// dates ISO 8601 strings and errors their literal.
func cellValue(c *models.Cell) (interface{}, bool) {
	v := c.Value()
	switch v.Type() {
	case models.CellNumber:
		n := v.Number()
		if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
			return int64(n), true
		}
		return n, true
	case models.CellText:
		return v.Text(), true
	case models.CellBool:
		return v.Bool(), true
	case models.CellDate:
		t, err := c.Date()
		if err != nil {
			return v.Number(), true
		}
		return t.Format(dateLayout), true
	case models.CellError:
		return v.ErrorCode().String(), true
	}
	return nil, false
}
