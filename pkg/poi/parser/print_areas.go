package parser

import (
	"fmt"
	"strings"

	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
	"github.com/xuri/excelize/v2"
)

// Built-in defined names carrying print settings.
const (
	namePrintArea   = "_xlnm.Print_Area"
	namePrintTitles = "_xlnm.Print_Titles"
)

// readPrintNames restores print areas and repeating rows and columns from
// the workbook's defined names.
func readPrintNames(f *excelize.File, wb *models.Workbook) error {
	for _, dn := range f.GetDefinedName() {
		var apply func(*models.Sheet, []models.CellRange) error
		switch {
		case strings.EqualFold(dn.Name, namePrintArea):
			apply = applyPrintArea
		case strings.EqualFold(dn.Name, namePrintTitles):
			apply = applyPrintTitles
		default:
			continue
		}
		sheet, ranges, err := parseReference(dn.RefersTo)
		if err != nil {
			return fmt.Errorf("%s: %w", dn.Name, err)
		}
		if dn.Scope != "" && dn.Scope != "Workbook" {
			sheet = dn.Scope
		}
		s := wb.SheetByName(sheet)
		if s == nil || len(ranges) == 0 {
			continue
		}
		if err := apply(s, ranges); err != nil {
			return fmt.Errorf("%s on %q: %w", dn.Name, sheet, err)
		}
	}
	return nil
}

// applyPrintArea keeps the first area; the model holds one per sheet.
func applyPrintArea(s *models.Sheet, ranges []models.CellRange) error {
	s.SetPrintArea(ranges[0])
	return nil
}

func applyPrintTitles(s *models.Sheet, ranges []models.CellRange) error {
	for i := range ranges {
		r := ranges[i]
		var err error
		switch {
		case r.WholeRows():
			err = s.SetRepeatingRows(&r)
		case r.WholeColumns():
			err = s.SetRepeatingColumns(&r)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// parseReference splits a reference such as 'My Sheet'!$A$1:$D$10, or a
// comma-separated list of them, into the sheet name and its ranges.
func parseReference(ref string) (string, []models.CellRange, error) {
	var sheet string
	var ranges []models.CellRange
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, expr := models.SplitLocation(part)
		if sheet == "" {
			sheet = name
		}
		r, err := models.ParseRange(expr)
		if err != nil {
			return "", nil, err
		}
		ranges = append(ranges, r)
	}
	return sheet, ranges, nil
}
