package models

import (
	"strings"

	"golang.org/x/text/width"
)

// FontMetrics measures rendered text. Widths are in units of the default
// font's digit width, the unit of column widths.
type FontMetrics interface {
	TextWidth(text string, f Font) float64
}

// ApproxMetrics estimates widths without font files: narrow runes count as
// one digit width, East Asian wide and fullwidth runes as two, scaled by the
// font size relative to the default font and widened for bold text.
type ApproxMetrics struct{}

// TextWidth implements FontMetrics.
func (ApproxMetrics) TextWidth(text string, f Font) float64 {
	var units float64
	for _, r := range text {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			units += 2
		default:
			units++
		}
	}
	size := f.Size
	if size <= 0 {
		size = DefaultFont.Size
	}
	units *= size / DefaultFont.Size
	if f.Bold {
		units *= 1.1
	}
	return units
}

// autoSizePadding is added to the widest content so text does not touch the
// cell border.
const autoSizePadding = 1.0

// AutoSizeColumn sets the width of col to fit its widest rendered cell,
// measuring each cell with the font of its style. Cells inside merged regions
// are skipped. A column without measurable cells keeps its width. A nil
// metrics uses ApproxMetrics.
func (s *Sheet) AutoSizeColumn(col int, metrics FontMetrics) {
	if metrics == nil {
		metrics = ApproxMetrics{}
	}
	widest := -1.0
	for _, row := range s.rows {
		c := row.cells[col]
		if c == nil || s.InMergedRegion(row.index, col) {
			continue
		}
		text := c.DisplayText()
		if text == "" {
			continue
		}
		f := DefaultFont
		if cs, ok := s.wb.styles.Style(c.style); ok {
			if font, ok := s.wb.styles.Font(cs.Font); ok {
				f = font
			}
		}
		for _, line := range strings.Split(text, "\n") {
			if w := metrics.TextWidth(line, f); w > widest {
				widest = w
			}
		}
	}
	if widest < 0 {
		return
	}
	w := widest + autoSizePadding
	if w > MaxColumnWidth {
		w = MaxColumnWidth
	}
	s.colWidths[col] = w
}
