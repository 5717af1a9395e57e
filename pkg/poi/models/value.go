package models

import "fmt"

// CellType is the kind of value a cell holds.
type CellType uint8

// Cell types.
const (
	CellBlank CellType = iota
	CellNumber
	CellText
	CellBool
	CellDate
	CellError
)

var cellTypeNames = [...]string{"blank", "number", "text", "bool", "date", "error"}

func (t CellType) String() string {
	if int(t) < len(cellTypeNames) {
		return cellTypeNames[t]
	}
	return fmt.Sprintf("CellType(%d)", uint8(t))
}

// ErrorCode is a spreadsheet error value. The numeric values are the codes
// stored in BIFF8 BOOLERR records.
type ErrorCode uint8

// Error codes.
const (
	ErrorNull  ErrorCode = 0x00
	ErrorDiv0  ErrorCode = 0x07
	ErrorValue ErrorCode = 0x0F
	ErrorRef   ErrorCode = 0x17
	ErrorName  ErrorCode = 0x1D
	ErrorNum   ErrorCode = 0x24
	ErrorNA    ErrorCode = 0x2A
)

var errorCodeText = map[ErrorCode]string{
	ErrorNull:  "#NULL!",
	ErrorDiv0:  "#DIV/0!",
	ErrorValue: "#VALUE!",
	ErrorRef:   "#REF!",
	ErrorName:  "#NAME?",
	ErrorNum:   "#NUM!",
	ErrorNA:    "#N/A",
}

// String returns the literal shown in a cell, e.g. "#DIV/0!".
func (e ErrorCode) String() string {
	if s, ok := errorCodeText[e]; ok {
		return s
	}
	return fmt.Sprintf("#ERR%d", uint8(e))
}

// Valid reports whether e is one of the defined codes.
func (e ErrorCode) Valid() bool {
	_, ok := errorCodeText[e]
	return ok
}

// ParseErrorCode maps a literal such as "#N/A" to its code.
func ParseErrorCode(s string) (ErrorCode, bool) {
	for code, text := range errorCodeText {
		if text == s {
			return code, true
		}
	}
	return 0, false
}

// TextRun applies a font to the text from Start (a rune offset) up to the
// next run or the end of the string.
type TextRun struct {
	Start int
	Font  FontID
}

// Value is the typed content of a cell. Dates are held as 1900-system serials
// so that the number a file stores and the number a caller reads agree.
type Value struct {
	typ  CellType
	num  float64
	text string
	runs []TextRun
	b    bool
	code ErrorCode
}

// NumberValue returns a numeric value.
func NumberValue(v float64) Value { return Value{typ: CellNumber, num: v} }

// TextValue returns a plain text value.
func TextValue(s string) Value { return Value{typ: CellText, text: s} }

// BoolValue returns a boolean value.
func BoolValue(b bool) Value { return Value{typ: CellBool, b: b} }

// DateValue returns a date value from a serial; see DateSerial.
func DateValue(serial float64) Value { return Value{typ: CellDate, num: serial} }

// ErrorCodeValue returns an error value.
func ErrorCodeValue(code ErrorCode) Value { return Value{typ: CellError, code: code} }

// Type returns the kind of the value.
func (v Value) Type() CellType { return v.typ }

// Number returns the numeric content of number and date values.
func (v Value) Number() float64 { return v.num }

// Text returns the content of text values.
func (v Value) Text() string { return v.text }

// Runs returns the rich text runs of a text value, nil for plain text.
func (v Value) Runs() []TextRun { return v.runs }

// Bool returns the content of boolean values.
func (v Value) Bool() bool { return v.b }

// ErrorCode returns the content of error values.
func (v Value) ErrorCode() ErrorCode { return v.code }

// String renders the value the way a general-format cell displays it.
func (v Value) String() string {
	switch v.typ {
	case CellNumber, CellDate:
		return formatGeneral(v.num)
	case CellText:
		return v.text
	case CellBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case CellError:
		return v.code.String()
	}
	return ""
}
