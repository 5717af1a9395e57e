package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Cell is one cell of a row. A cell holds a typed value, a style id and at
// most one hyperlink.
type Cell struct {
	row   *Row
	col   int
	value Value
	style StyleID
	link  *Hyperlink
}

// Row returns the owning row.
func (c *Cell) Row() *Row { return c.row }

// RowIndex returns the 0-based row index.
func (c *Cell) RowIndex() int { return c.row.index }

// ColumnIndex returns the 0-based column index.
func (c *Cell) ColumnIndex() int { return c.col }

// Name returns the A1 reference of the cell.
func (c *Cell) Name() string { return CellName(c.row.index, c.col) }

// Value returns the cell content.
func (c *Cell) Value() Value { return c.value }

// Type returns the kind of the cell content.
func (c *Cell) Type() CellType { return c.value.typ }

// SetValue replaces the cell content.
func (c *Cell) SetValue(v Value) { c.value = v }

// SetNumber stores a number.
func (c *Cell) SetNumber(v float64) { c.value = NumberValue(v) }

// SetText stores plain text.
func (c *Cell) SetText(s string) { c.value = TextValue(s) }

// SetRichText stores text with per-run fonts. Runs must start at increasing
// rune offsets inside s and refer to registered fonts.
func (c *Cell) SetRichText(s string, runs []TextRun) error {
	reg := c.row.sheet.wb.styles
	n := utf8.RuneCountInString(s)
	prev := -1
	for _, r := range runs {
		if r.Start <= prev || r.Start < 0 || r.Start >= n {
			return fmt.Errorf("text run at %d out of order or outside %d runes", r.Start, n)
		}
		if _, ok := reg.Font(r.Font); !ok {
			return fmt.Errorf("%w: %d", ErrUnknownFont, r.Font)
		}
		prev = r.Start
	}
	c.value = Value{typ: CellText, text: s, runs: append([]TextRun(nil), runs...)}
	return nil
}

// SetBool stores a boolean.
func (c *Cell) SetBool(b bool) { c.value = BoolValue(b) }

// SetDate stores t as a date serial. Without a date number format on its
// style the cell displays the bare serial.
func (c *Cell) SetDate(t time.Time) error {
	serial, err := DateSerial(t)
	if err != nil {
		return err
	}
	c.value = DateValue(serial)
	return nil
}

// SetError stores an error code.
func (c *Cell) SetError(code ErrorCode) error {
	if !code.Valid() {
		return fmt.Errorf("unknown error code 0x%02X", uint8(code))
	}
	c.value = ErrorCodeValue(code)
	return nil
}

// SetBlank clears the content and keeps the style.
func (c *Cell) SetBlank() { c.value = Value{} }

// Number returns the numeric content of number and date cells.
func (c *Cell) Number() float64 { return c.value.num }

// Text returns the content of text cells.
func (c *Cell) Text() string { return c.value.text }

// Bool returns the content of boolean cells.
func (c *Cell) Bool() bool { return c.value.b }

// Date converts the serial of a date or number cell back to a time.
func (c *Cell) Date() (time.Time, error) {
	switch c.value.typ {
	case CellDate, CellNumber:
		return SerialTime(c.value.num)
	}
	return time.Time{}, fmt.Errorf("cell %s holds %s, not a date", c.Name(), c.value.typ)
}

// ErrorCode returns the content of error cells.
func (c *Cell) ErrorCode() ErrorCode { return c.value.code }

// Style returns the style id; 0 is the default style.
func (c *Cell) Style() StyleID { return c.style }

// SetStyle assigns a registered style.
func (c *Cell) SetStyle(id StyleID) error {
	if _, ok := c.row.sheet.wb.styles.Style(id); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownStyle, id)
	}
	c.style = id
	return nil
}

// UpdateStyle derives a new style from the cell's current one, registers it
// and assigns it. The registered original is never modified, so other cells
// sharing it keep their formatting.
func (c *Cell) UpdateStyle(fn func(*CellStyle)) error {
	reg := c.row.sheet.wb.styles
	s, _ := reg.Style(c.style)
	fn(&s)
	id, err := reg.RegisterStyle(s)
	if err != nil {
		return err
	}
	c.style = id
	return nil
}

// Hyperlink returns the cell's link, if any.
func (c *Cell) Hyperlink() (Hyperlink, bool) {
	if c.link == nil {
		return Hyperlink{}, false
	}
	return *c.link, true
}

// SetHyperlink attaches a link, replacing any previous one.
func (c *Cell) SetHyperlink(l Hyperlink) error {
	if err := l.validate(); err != nil {
		return err
	}
	c.link = &l
	return nil
}

// RemoveHyperlink detaches the cell's link.
func (c *Cell) RemoveHyperlink() { c.link = nil }

// DisplayText renders the cell as it appears on screen, using the date format
// of its style when it holds a date.
func (c *Cell) DisplayText() string {
	if c.value.typ != CellDate {
		return c.value.String()
	}
	t, err := SerialTime(c.value.num)
	if err != nil {
		return c.value.String()
	}
	pattern := ""
	if s, ok := c.row.sheet.wb.styles.Style(c.style); ok {
		pattern = s.NumberFormat
	}
	return formatDate(t, pattern)
}

func formatGeneral(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if len(s) <= 11 {
		return s
	}
	return strconv.FormatFloat(v, 'G', 6, 64)
}

// formatDate approximates a date pattern with a Go layout. It is used for
// display widths and JSON output only.
func formatDate(t time.Time, pattern string) string {
	switch {
	case pattern == "":
		return t.Format("2006-01-02 15:04:05")
	case strings.ContainsAny(pattern, "hs") && strings.ContainsAny(pattern, "dy"):
		return t.Format("1/2/06 15:04")
	case strings.ContainsAny(pattern, "hs"):
		return t.Format("15:04:05")
	}
	return t.Format("1/2/06")
}
