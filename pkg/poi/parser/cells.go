package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
	"github.com/xuri/excelize/v2"
)

// readCells restores the values, styles and hyperlinks of a sheet. Numbers
// under a date format become dates; constant error formulas become errors.
func readCells(f *excelize.File, s *models.Sheet, styles *styleReader) error {
	name := s.Name()
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return err
	}

	for rowIdx, row := range rows {
		for colIdx, raw := range row {
			ref, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return err
			}
			v, ok, err := readValue(f, name, ref, raw)
			if err != nil {
				return fmt.Errorf("%s: %w", ref, err)
			}
			if !ok {
				continue
			}
			sid, isDate, err := styles.cellStyle(name, ref)
			if err != nil {
				return fmt.Errorf("%s style: %w", ref, err)
			}
			if isDate && v.Type() == models.CellNumber {
				v = models.DateValue(v.Number())
			}

			c := s.CreateCell(rowIdx, colIdx)
			c.SetValue(v)
			if v.Type() == models.CellText {
				if err := readRichText(f, name, ref, c, styles.reg); err != nil {
					return fmt.Errorf("%s rich text: %w", ref, err)
				}
			}
			if err := c.SetStyle(sid); err != nil {
				return err
			}
			if err := readLink(f, name, ref, c); err != nil {
				return fmt.Errorf("%s hyperlink: %w", ref, err)
			}
		}
	}
	return readStyledBlanks(f, s, styles)
}

// maxBlankScan bounds the used range searched for styled blank cells.
const maxBlankScan = 1 << 20

// readStyledBlanks restores cells without content that carry a style. Such
// cells are absent from GetRows, so the used range is searched instead.
func readStyledBlanks(f *excelize.File, s *models.Sheet, styles *styleReader) error {
	name := s.Name()
	ref, err := f.GetSheetDimension(name)
	if err != nil || ref == "" {
		return err
	}
	used, err := models.ParseRange(ref)
	if err != nil || !used.Bounded() || used.NumCells() > maxBlankScan {
		return nil
	}
	for row := used.FirstRow; row <= used.LastRow; row++ {
		for col := used.FirstCol; col <= used.LastCol; col++ {
			if s.Cell(row, col) != nil {
				continue
			}
			cell := models.CellName(row, col)
			sid, _, err := styles.cellStyle(name, cell)
			if err != nil {
				return fmt.Errorf("%s style: %w", cell, err)
			}
			if sid == 0 {
				continue
			}
			if err := s.CreateCell(row, col).SetStyle(sid); err != nil {
				return err
			}
		}
	}
	return nil
}

// readValue types a raw cell value. ok is false for cells without content.
func readValue(f *excelize.File, sheet, ref, raw string) (models.Value, bool, error) {
	typ, err := f.GetCellType(sheet, ref)
	if err != nil {
		return models.Value{}, false, err
	}
	switch typ {
	case excelize.CellTypeBool:
		return models.BoolValue(raw == "1" || strings.EqualFold(raw, "true")), true, nil
	case excelize.CellTypeError:
		if code, ok := models.ParseErrorCode(raw); ok {
			return models.ErrorCodeValue(code), true, nil
		}
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return models.TextValue(raw), true, nil
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			serial, err := models.DateSerial(t)
			if err != nil {
				return models.Value{}, false, err
			}
			return models.DateValue(serial), true, nil
		}
	}

	if raw == "" {
		formula, err := f.GetCellFormula(sheet, ref)
		if err != nil {
			return models.Value{}, false, err
		}
		if code, ok := models.ParseErrorCode(strings.TrimPrefix(formula, "=")); ok {
			return models.ErrorCodeValue(code), true, nil
		}
		return models.Value{}, false, nil
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil && typ != excelize.CellTypeFormula {
		return models.NumberValue(n), true, nil
	}
	return models.TextValue(raw), true, nil
}

// readRichText replaces the plain text of c with its runs when the cell
// carries inline formatting. A leading run without a font keeps the cell
// font and is not recorded.
func readRichText(f *excelize.File, sheet, ref string, c *models.Cell, reg *models.StyleRegistry) error {
	runs, err := f.GetCellRichText(sheet, ref)
	if err != nil || len(runs) == 0 {
		return err
	}
	if len(runs) == 1 && runs[0].Font == nil {
		return nil
	}
	var text strings.Builder
	var out []models.TextRun
	for _, r := range runs {
		start := utf8.RuneCountInString(text.String())
		text.WriteString(r.Text)
		if r.Font == nil && len(out) == 0 {
			continue
		}
		var id models.FontID
		if r.Font != nil {
			id = reg.RegisterFont(fontFromExcelize(r.Font, reg.Palette()))
		}
		if r.Text != "" {
			out = append(out, models.TextRun{Start: start, Font: id})
		}
	}
	return c.SetRichText(text.String(), out)
}

func readLink(f *excelize.File, sheet, ref string, c *models.Cell) error {
	ok, target, err := f.GetCellHyperLink(sheet, ref)
	if err != nil || !ok || target == "" {
		return err
	}
	return c.SetHyperlink(models.Hyperlink{Kind: models.GuessLinkKind(target), Address: target})
}
