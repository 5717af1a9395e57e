// Package models holds the in-memory spreadsheet document: workbooks, sheets,
// rows, cells and the style registry they share.
package models

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// MaxSheetNameLength is the longest sheet name both formats accept.
	MaxSheetNameLength = 31
	// MaxColumnWidth is the widest column in characters.
	MaxColumnWidth = 255
	// MaxRowHeight is the tallest row in points.
	MaxRowHeight = 409
	// DefaultRowHeight is the height in points of rows without their own height.
	DefaultRowHeight = 15
	// DefaultColumnWidth is the width in characters of columns without their own width.
	DefaultColumnWidth = 8.43
	// MaxHeaderFooterLen is the longest header or footer, codes included.
	MaxHeaderFooterLen = 255
)

const forbiddenSheetChars = `/\?*[]:`

// Workbook is an ordered sequence of uniquely named sheets sharing one style
// registry. It is not safe for concurrent use.
type Workbook struct {
	sheets  []*Sheet
	styles  *StyleRegistry
	written bool
}

// NewWorkbook returns an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{styles: NewStyleRegistry()}
}

// CreateSheet appends a sheet. An empty name generates "Sheet<N>" with the
// lowest free N starting at 1. Names are validated as given; use
// SanitizeSheetName first for untrusted input.
func (w *Workbook) CreateSheet(name string) (*Sheet, error) {
	if w.written {
		return nil, ErrWorkbookWritten
	}
	if name == "" {
		name = w.nextSheetName()
	}
	if err := ValidateSheetName(name); err != nil {
		return nil, err
	}
	if w.SheetIndex(name) >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	s := newSheet(w, name)
	w.sheets = append(w.sheets, s)
	return s, nil
}

func (w *Workbook) nextSheetName() string {
	for n := 1; ; n++ {
		name := "Sheet" + strconv.Itoa(n)
		if w.SheetIndex(name) < 0 {
			return name
		}
	}
}

// ValidateSheetName checks the length and character rules for sheet names.
func ValidateSheetName(name string) error {
	n := utf8.RuneCountInString(name)
	switch {
	case n == 0:
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case n > MaxSheetNameLength:
		return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidName, name, MaxSheetNameLength)
	case strings.ContainsAny(name, forbiddenSheetChars):
		return fmt.Errorf("%w: %q contains one of %s", ErrInvalidName, name, forbiddenSheetChars)
	case name[0] == '\'' || name[len(name)-1] == '\'':
		return fmt.Errorf("%w: %q starts or ends with an apostrophe", ErrInvalidName, name)
	}
	return nil
}

// SanitizeSheetName turns arbitrary text into a valid sheet name: forbidden
// characters are removed, apostrophes at either end are trimmed and the
// result is truncated to MaxSheetNameLength characters. Nothing surviving
// yields "Sheet". The function is idempotent.
func SanitizeSheetName(raw string) string {
	s := strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbiddenSheetChars, r) || r == utf8.RuneError {
			return -1
		}
		return r
	}, raw)
	for {
		s = strings.Trim(s, "'")
		if utf8.RuneCountInString(s) <= MaxSheetNameLength {
			break
		}
		s = string([]rune(s)[:MaxSheetNameLength])
	}
	if s == "" {
		return "Sheet"
	}
	return s
}

// Sheets returns the sheets in insertion order.
func (w *Workbook) Sheets() []*Sheet {
	return append([]*Sheet(nil), w.sheets...)
}

// NumSheets returns the sheet count.
func (w *Workbook) NumSheets() int { return len(w.sheets) }

// Sheet returns the sheet at index.
func (w *Workbook) Sheet(index int) (*Sheet, error) {
	if index < 0 || index >= len(w.sheets) {
		return nil, fmt.Errorf("%w: %d of %d", ErrSheetIndex, index, len(w.sheets))
	}
	return w.sheets[index], nil
}

// SheetByName returns the sheet with the given name, compared case-insensitively.
func (w *Workbook) SheetByName(name string) *Sheet {
	if i := w.SheetIndex(name); i >= 0 {
		return w.sheets[i]
	}
	return nil
}

// SheetIndex returns the index of the named sheet, or -1.
func (w *Workbook) SheetIndex(name string) int {
	for i, s := range w.sheets {
		if strings.EqualFold(s.name, name) {
			return i
		}
	}
	return -1
}

// MarkWritten makes the workbook read-only. Serializers call it once the
// workbook has been written; later changes through the error-returning
// mutators fail with ErrWorkbookWritten.
func (w *Workbook) MarkWritten() {
	w.written = true
	w.styles.freeze()
}

// Written reports whether the workbook has been written.
func (w *Workbook) Written() bool { return w.written }

// Styles returns the workbook style registry.
func (w *Workbook) Styles() *StyleRegistry { return w.styles }

// Palette returns the workbook color palette.
func (w *Workbook) Palette() *Palette { return w.styles.palette }

// SetPrintArea parses a range expression ("A1:C2", "$A$1:$C$2", "4:5",
// "A:C") and sets it as the print area of the sheet at index. On error the
// sheet is left unchanged.
func (w *Workbook) SetPrintArea(index int, expr string) error {
	s, err := w.Sheet(index)
	if err != nil {
		return err
	}
	if err := s.checkWritable(); err != nil {
		return err
	}
	r, err := ParseRange(expr)
	if err != nil {
		return err
	}
	s.SetPrintArea(r)
	return nil
}

// PrintArea returns the print area of the sheet at index in absolute
// notation, or "" when none is set.
func (w *Workbook) PrintArea(index int) (string, error) {
	s, err := w.Sheet(index)
	if err != nil {
		return "", err
	}
	r, ok := s.PrintArea()
	if !ok {
		return "", nil
	}
	return r.Absolute(), nil
}
