// Package demo builds the sample workbooks shipped with the poi command: one
// small workbook per feature of the document model, ready to be saved as xls
// or xlsx.
package demo

import (
	"fmt"
	"time"

	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
)

// Demo is a named sample workbook.
type Demo struct {
	// Name identifies the demo on the command line.
	Name string
	// File is the suggested output file name; its extension is the format
	// the demo was written for.
	File string
	// Build creates the workbook. now is used for date cells.
	Build func(now time.Time) (*models.Workbook, error)
}

// All returns every demo in a stable order.
func All() []Demo {
	return []Demo{
		{"new-workbook", "workbook.xls", newWorkbook},
		{"xssf-workbook", "workbook.xlsx", newWorkbook},
		{"sheets", "sheets.xls", sheets},
		{"cells", "cells.xls", cells},
		{"date-cells", "date-cells.xls", dateCells},
		{"cell-types", "cell-types.xls", cellTypes},
		{"alignment", "xssf-align.xlsx", alignment},
		{"borders", "borders.xls", borders},
		{"colors", "colors.xlsx", colors},
		{"merge-cells", "merge-cells.xls", mergeCells},
		{"fonts", "fonts.xls", fonts},
		{"default-palette", "default_palette.xls", paletteDemo(false)},
		{"modified-palette", "modified_palette.xls", paletteDemo(true)},
		{"newlines", "ooxml-newlines.xlsx", newlines},
		{"data-formats", "data-formats.xls", dataFormats},
		{"fit-to-page", "fit-to-page.xls", fitToPage},
		{"print-area", "print-area.xls", printArea},
		{"page-numbers", "page-numbers.xls", pageNumbers},
		{"region-borders", "region-borders.xls", regionBorders},
		{"panes", "panes.xls", panes},
		{"repeating-titles", "repeating-titles.xls", repeatingTitles},
		{"headers-footers", "headers-footers.xls", headersFooters},
		{"hyperlinks", "hyperlinks.xlsx", hyperlinks},
	}
}

// Find returns the demo with the given name.
func Find(name string) (Demo, bool) {
	for _, d := range All() {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

func newWorkbook(time.Time) (*models.Workbook, error) {
	return models.NewWorkbook(), nil
}

func sheets(time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	for _, name := range []string{"new sheet1", "second sheet2", models.SanitizeSheetName("O'Brien's sales*?]")} {
		if _, err := wb.CreateSheet(name); err != nil {
			return nil, err
		}
	}
	return wb, nil
}

func cells(time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	s, err := wb.CreateSheet("new sheet")
	if err != nil {
		return nil, err
	}
	row := s.CreateRow(0)
	row.CreateCell(0).SetNumber(1)
	row.CreateCell(1).SetNumber(1.2)
	if err := row.CreateCell(2).SetRichText("This is a string", nil); err != nil {
		return nil, err
	}
	row.CreateCell(3).SetBool(true)
	return wb, nil
}

func dateCells(now time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	s, err := wb.CreateSheet("new sheet")
	if err != nil {
		return nil, err
	}
	style, err := wb.Styles().RegisterStyle(models.CellStyle{NumberFormat: "m/d/yy h:mm"})
	if err != nil {
		return nil, err
	}
	row := s.CreateRow(0)
	// A1 keeps the default style and shows the bare serial.
	for col := 0; col < 3; col++ {
		c := row.CreateCell(col)
		if err := c.SetDate(now); err != nil {
			return nil, err
		}
		if col == 0 {
			continue
		}
		if err := c.SetStyle(style); err != nil {
			return nil, err
		}
	}
	return wb, nil
}

func cellTypes(now time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	s, err := wb.CreateSheet("new sheet")
	if err != nil {
		return nil, err
	}
	row := s.CreateRow(2)
	row.CreateCell(0).SetNumber(1.1)
	if err := row.CreateCell(1).SetDate(now); err != nil {
		return nil, err
	}
	if err := row.CreateCell(2).SetDate(now); err != nil {
		return nil, err
	}
	row.CreateCell(3).SetText("a string")
	row.CreateCell(4).SetBool(true)
	if err := row.CreateCell(5).SetError(models.ErrorValue); err != nil {
		return nil, err
	}
	return wb, nil
}

func alignment(time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	s, err := wb.CreateSheet("")
	if err != nil {
		return nil, err
	}
	row := s.CreateRow(2)
	if err := row.SetHeight(30); err != nil {
		return nil, err
	}
	aligns := []struct {
		h models.HorizontalAlignment
		v models.VerticalAlignment
	}{
		{models.HAlignCenter, models.VAlignBottom},
		{models.HAlignCenterSelection, models.VAlignBottom},
		{models.HAlignFill, models.VAlignCenter},
		{models.HAlignGeneral, models.VAlignCenter},
		{models.HAlignJustify, models.VAlignJustify},
		{models.HAlignLeft, models.VAlignTop},
		{models.HAlignRight, models.VAlignTop},
	}
	for col, a := range aligns {
		id, err := wb.Styles().RegisterStyle(models.CellStyle{HAlign: a.h, VAlign: a.v})
		if err != nil {
			return nil, err
		}
		c := row.CreateCell(col)
		c.SetText("Align It")
		if err := c.SetStyle(id); err != nil {
			return nil, err
		}
	}
	return wb, nil
}

func borders(time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	s, err := wb.CreateSheet("new sheet")
	if err != nil {
		return nil, err
	}
	id, err := wb.Styles().RegisterStyle(models.CellStyle{Border: models.Borders{
		Bottom: models.Border{Style: models.BorderThin, Color: models.ColorBlack},
		Left:   models.Border{Style: models.BorderThin, Color: models.ColorGreen},
		Right:  models.Border{Style: models.BorderThin, Color: models.ColorBlue},
		Top:    models.Border{Style: models.BorderMediumDashed, Color: models.ColorBlack},
	}})
	if err != nil {
		return nil, err
	}
	c := s.CreateCell(1, 1)
	c.SetNumber(4)
	return wb, c.SetStyle(id)
}

func colors(time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	s, err := wb.CreateSheet("new sheet")
	if err != nil {
		return nil, err
	}
	fills := []models.Fill{
		{Pattern: models.FillBigSpots, Background: models.ColorAqua},
		{Pattern: models.FillSolid, Foreground: models.ColorOrange},
	}
	for i, f := range fills {
		id, err := wb.Styles().RegisterStyle(models.CellStyle{Fill: f})
		if err != nil {
			return nil, err
		}
		c := s.CreateCell(1, i+1)
		c.SetText("X")
		if err := c.SetStyle(id); err != nil {
			return nil, err
		}
	}
	return wb, nil
}

func mergeCells(time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	s, err := wb.CreateSheet("new sheet")
	if err != nil {
		return nil, err
	}
	s.CreateCell(1, 1).SetText("This is a test of merging")
	return wb, s.AddMergedRegion(models.NewCellRange(1, 1, 1, 2))
}

func fonts(time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	s, err := wb.CreateSheet("new sheet")
	if err != nil {
		return nil, err
	}
	font := wb.Styles().RegisterFont(models.Font{Name: "Courier New", Size: 24, Italic: true, Strikeout: true})
	id, err := wb.Styles().RegisterStyle(models.CellStyle{Font: font})
	if err != nil {
		return nil, err
	}
	c := s.CreateCell(1, 1)
	c.SetText("This is a test of fonts")
	return wb, c.SetStyle(id)
}

// paletteDemo draws red text on lime. The modified variant redefines both
// palette entries, so the same style indexes render in the new colors.
func paletteDemo(modified bool) func(time.Time) (*models.Workbook, error) {
	return func(time.Time) (*models.Workbook, error) {
		wb := models.NewWorkbook()
		s, err := wb.CreateSheet("")
		if err != nil {
			return nil, err
		}
		font := wb.Styles().RegisterFont(models.Font{Name: models.DefaultFont.Name, Size: models.DefaultFont.Size, Color: models.ColorRed})
		id, err := wb.Styles().RegisterStyle(models.CellStyle{
			Fill: models.Fill{Pattern: models.FillSolid, Foreground: models.ColorLime},
			Font: font,
		})
		if err != nil {
			return nil, err
		}
		c := s.CreateCell(0, 0)
		if err := c.SetStyle(id); err != nil {
			return nil, err
		}
		if !modified {
			c.SetText("Default Palette")
			return wb, nil
		}
		c.SetText("Modified Palette")
		if err := wb.Palette().SetColorAtIndex(models.ColorRed, 153, 0, 0); err != nil {
			return nil, err
		}
		if err := wb.Palette().SetColorAtIndex(models.ColorLime, 255, 204, 102); err != nil {
			return nil, err
		}
		return wb, nil
	}
}

func newlines(time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	s, err := wb.CreateSheet("")
	if err != nil {
		return nil, err
	}
	id, err := wb.Styles().RegisterStyle(models.CellStyle{WrapText: true})
	if err != nil {
		return nil, err
	}
	row := s.CreateRow(2)
	c := row.CreateCell(2)
	c.SetText("Use \n with word wrap on to create a new line")
	if err := c.SetStyle(id); err != nil {
		return nil, err
	}
	if err := row.SetHeight(2 * s.DefaultRowHeight()); err != nil {
		return nil, err
	}
	s.AutoSizeColumn(2, nil)
	return wb, nil
}

func dataFormats(time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	s, err := wb.CreateSheet("format sheet")
	if err != nil {
		return nil, err
	}
	values := []struct {
		v       float64
		pattern string
	}{
		{11111.25, "0.0"},
		{11111111111.25, "#,##0.0000"},
	}
	for i, v := range values {
		id, err := wb.Styles().RegisterStyle(models.CellStyle{NumberFormat: v.pattern})
		if err != nil {
			return nil, err
		}
		c := s.CreateCell(i, 0)
		c.SetNumber(v.v)
		if err := c.SetStyle(id); err != nil {
			return nil, err
		}
	}
	return wb, nil
}

func fitToPage(time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	s, err := wb.CreateSheet("format sheet")
	if err != nil {
		return nil, err
	}
	return wb, s.SetPrintSetup(models.PrintSetup{FitWidth: 1, FitHeight: 1, FitToPage: true, Autobreaks: true})
}

func printArea(time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	if _, err := wb.CreateSheet("Sheet1"); err != nil {
		return nil, err
	}
	return wb, wb.SetPrintArea(0, "$A$1:$C$2")
}

func pageNumbers(time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	s, err := wb.CreateSheet("format sheet")
	if err != nil {
		return nil, err
	}
	return wb, s.SetFooter(models.HeaderFooter{
		Right: "Page " + models.HeaderPage() + " of " + models.HeaderNumPages(),
	})
}

func regionBorders(time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	s, err := wb.CreateSheet("new sheet")
	if err != nil {
		return nil, err
	}
	s.CreateCell(1, 1).SetText("This is a test of merging")
	region := models.MustParseRange("B2:E5")
	if err := s.AddMergedRegion(region); err != nil {
		return nil, err
	}
	border := models.Border{Style: models.BorderMediumDashed, Color: models.ColorAqua}
	if err := s.SetRegionBorder(region, models.EdgeAll, border); err != nil {
		return nil, err
	}

	indented, err := wb.Styles().RegisterStyle(models.CellStyle{Indent: 4})
	if err != nil {
		return nil, err
	}
	c := s.CreateCell(1, 8)
	c.SetText("This is the value of the cell")
	if err := c.SetStyle(indented); err != nil {
		return nil, err
	}
	c = s.CreateCell(2, 8)
	c.SetText("This is the value of the cell")
	return wb, c.UpdateStyle(func(cs *models.CellStyle) { cs.HAlign = models.HAlignCenter })
}

func panes(time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	names := []string{"new sheet", "second sheet", "third sheet", "fourth sheet"}
	sheets := make([]*models.Sheet, len(names))
	for i, name := range names {
		s, err := wb.CreateSheet(name)
		if err != nil {
			return nil, err
		}
		sheets[i] = s
	}
	steps := []func() error{
		func() error { return sheets[0].CreateFreezePaneAt(0, 1, 0, 1) },
		func() error { return sheets[1].CreateFreezePaneAt(1, 0, 1, 0) },
		func() error { return sheets[2].CreateFreezePane(2, 2) },
		func() error { return sheets[3].CreateSplitPane(2000, 2000, 0, 0, models.PaneLowerLeft) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			return nil, fmt.Errorf("%s: %w", names[i], err)
		}
	}
	return wb, nil
}

func repeatingTitles(time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	s1, err := wb.CreateSheet("Sheet1")
	if err != nil {
		return nil, err
	}
	s2, err := wb.CreateSheet("Sheet2")
	if err != nil {
		return nil, err
	}
	rows := models.MustParseRange("4:5")
	if err := s1.SetRepeatingRows(&rows); err != nil {
		return nil, err
	}
	cols := models.MustParseRange("A:C")
	return wb, s2.SetRepeatingColumns(&cols)
}

func headersFooters(time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	s, err := wb.CreateSheet("new sheet")
	if err != nil {
		return nil, err
	}
	return wb, s.SetHeader(models.HeaderFooter{
		Left:   "Left Header",
		Center: "Center Header",
		Right: models.HeaderFont("Stencil-Normal", "Italic") + models.HeaderFontSize(16) +
			"Right w/ Stencil-Normal Italic font and size 16",
	})
}

func hyperlinks(time.Time) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	font := wb.Styles().RegisterFont(models.Font{
		Name:      models.DefaultFont.Name,
		Size:      models.DefaultFont.Size,
		Underline: models.UnderlineSingle,
		Color:     models.ColorBlue,
	})
	linkStyle, err := wb.Styles().RegisterStyle(models.CellStyle{Font: font})
	if err != nil {
		return nil, err
	}

	s, err := wb.CreateSheet("Hyperlinks")
	if err != nil {
		return nil, err
	}
	target, err := wb.CreateSheet("Target Sheet")
	if err != nil {
		return nil, err
	}
	target.CreateCell(0, 0).SetText("Target Cell")

	links := []struct {
		label string
		link  models.Hyperlink
	}{
		{"URL Link", models.Hyperlink{Kind: models.LinkURL, Address: "http://poi.apache.org/"}},
		{"File Link", models.Hyperlink{Kind: models.LinkFile, Address: "link1.xls"}},
		{"Email Link", models.Hyperlink{Kind: models.LinkEmail, Address: "mailto:poi@apache.org?subject=Hyperlinks"}},
		{"Worksheet Link", models.Hyperlink{Kind: models.LinkDocument, Address: "'Target Sheet'!A1"}},
	}
	for i, l := range links {
		c := s.CreateCell(i, 0)
		c.SetText(l.label)
		if err := c.SetHyperlink(l.link); err != nil {
			return nil, err
		}
		if err := c.SetStyle(linkStyle); err != nil {
			return nil, err
		}
	}
	return wb, nil
}
