package models

import (
	"github.com/xuri/nfp"
)

// FormatID is a number format code. Codes below FirstCustomFormat are
// built in; custom patterns are numbered from FirstCustomFormat upward.
type FormatID int

const (
	// FormatGeneral is the code of the "General" format.
	FormatGeneral FormatID = 0
	// FirstCustomFormat is the first code handed out to custom patterns.
	FirstCustomFormat FormatID = 164
	// MaxCustomFormats caps the custom format table.
	MaxCustomFormats = 250
)

// builtinFormats are the reserved format codes shared by both file formats.
var builtinFormats = map[FormatID]string{
	0x00: "General",
	0x01: "0",
	0x02: "0.00",
	0x03: "#,##0",
	0x04: "#,##0.00",
	0x05: `"$"#,##0_);("$"#,##0)`,
	0x06: `"$"#,##0_);[Red]("$"#,##0)`,
	0x07: `"$"#,##0.00_);("$"#,##0.00)`,
	0x08: `"$"#,##0.00_);[Red]("$"#,##0.00)`,
	0x09: "0%",
	0x0a: "0.00%",
	0x0b: "0.00E+00",
	0x0c: "# ?/?",
	0x0d: "# ??/??",
	0x0e: "m/d/yy",
	0x0f: "d-mmm-yy",
	0x10: "d-mmm",
	0x11: "mmm-yy",
	0x12: "h:mm AM/PM",
	0x13: "h:mm:ss AM/PM",
	0x14: "h:mm",
	0x15: "h:mm:ss",
	0x16: "m/d/yy h:mm",
	0x25: "#,##0_);(#,##0)",
	0x26: "#,##0_);[Red](#,##0)",
	0x27: "#,##0.00_);(#,##0.00)",
	0x28: "#,##0.00_);[Red](#,##0.00)",
	0x29: `_(* #,##0_);_(* (#,##0);_(* "-"_);_(@_)`,
	0x2a: `_("$"* #,##0_);_("$"* (#,##0);_("$"* "-"_);_(@_)`,
	0x2b: `_(* #,##0.00_);_(* (#,##0.00);_(* "-"??_);_(@_)`,
	0x2c: `_("$"* #,##0.00_);_("$"* (#,##0.00);_("$"* "-"??_);_(@_)`,
	0x2d: "mm:ss",
	0x2e: "[h]:mm:ss",
	0x2f: "mm:ss.0",
	0x30: "##0.0E+0",
	0x31: "@",
}

var builtinByPattern = func() map[string]FormatID {
	m := make(map[string]FormatID, len(builtinFormats))
	for id, p := range builtinFormats {
		m[p] = id
	}
	return m
}()

// BuiltinFormat returns the pattern of a built-in format code.
func BuiltinFormat(id FormatID) (string, bool) {
	p, ok := builtinFormats[id]
	return p, ok
}

// IsBuiltinFormat reports whether id is a reserved code.
func IsBuiltinFormat(id FormatID) bool {
	_, ok := builtinFormats[id]
	return ok
}

// IsDatePattern reports whether a format pattern renders a date or time.
// The pattern is tokenized with the same parser excelize uses for its
// number formatting.
func IsDatePattern(pattern string) bool {
	if pattern == "" || pattern == "General" {
		return false
	}
	p := nfp.NumberFormatParser()
	for _, section := range p.Parse(pattern) {
		for _, token := range section.Items {
			if token.TType == nfp.TokenTypeDateTimes || token.TType == nfp.TokenTypeElapsedDateTimes {
				return true
			}
		}
	}
	return false
}
