package models

import (
	"fmt"
)

// StyleRegistry owns the fonts, cell styles, number formats and palette of a
// workbook. Fonts and styles are deduplicated by structural equality; ids are
// allocated sequentially and never reused.
type StyleRegistry struct {
	fonts      []Font
	fontIDs    map[Font]FontID
	styles     []CellStyle
	styleIDs   map[CellStyle]StyleID
	formats    []string
	formatIDs  map[string]FormatID
	palette    *Palette
	maxFormats int
	frozen     bool
}

// NewStyleRegistry returns a registry holding only the default font and the
// default style.
func NewStyleRegistry() *StyleRegistry {
	r := &StyleRegistry{
		fontIDs:    make(map[Font]FontID),
		styleIDs:   make(map[CellStyle]StyleID),
		formatIDs:  make(map[string]FormatID),
		palette:    newPalette(),
		maxFormats: MaxCustomFormats,
	}
	r.RegisterFont(DefaultFont)
	r.styles = append(r.styles, CellStyle{})
	r.styleIDs[CellStyle{}] = 0
	return r
}

// RegisterFont returns the id of f, registering it if no equal font exists.
func (r *StyleRegistry) RegisterFont(f Font) FontID {
	if id, ok := r.fontIDs[f]; ok {
		return id
	}
	id := FontID(len(r.fonts))
	r.fonts = append(r.fonts, f)
	r.fontIDs[f] = id
	return id
}

// Font returns a registered font.
func (r *StyleRegistry) Font(id FontID) (Font, bool) {
	if id < 0 || int(id) >= len(r.fonts) {
		return Font{}, false
	}
	return r.fonts[id], true
}

// Fonts returns all registered fonts indexed by FontID.
func (r *StyleRegistry) Fonts() []Font {
	return append([]Font(nil), r.fonts...)
}

// RegisterStyle returns the id of s, registering it if no equal style exists.
// The style's number format is resolved first, so a style carrying a new
// custom pattern fails with ErrFormatTableFull once the table is exhausted.
func (r *StyleRegistry) RegisterStyle(s CellStyle) (StyleID, error) {
	if id, ok := r.styleIDs[s]; ok {
		return id, nil
	}
	if r.frozen {
		return 0, ErrWorkbookWritten
	}
	font, ok := r.Font(s.Font)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownFont, s.Font)
	}
	if err := validateStyle(s, font); err != nil {
		return 0, err
	}
	if _, err := r.ResolveDataFormat(s.NumberFormat); err != nil {
		return 0, err
	}
	id := StyleID(len(r.styles))
	r.styles = append(r.styles, s)
	r.styleIDs[s] = id
	return id, nil
}

func validateStyle(s CellStyle, font Font) error {
	switch {
	case s.Indent < 0 || s.Indent > 15:
		return fmt.Errorf("%w: indent %d out of range 0..15", ErrInvalidStyle, s.Indent)
	case s.HAlign > HAlignDistributed:
		return fmt.Errorf("%w: horizontal alignment %d", ErrInvalidStyle, s.HAlign)
	case s.VAlign > VAlignDistributed:
		return fmt.Errorf("%w: vertical alignment %d", ErrInvalidStyle, s.VAlign)
	case s.Fill.Pattern > FillLeastDots:
		return fmt.Errorf("%w: fill pattern %d", ErrInvalidStyle, s.Fill.Pattern)
	case font.Underline > UnderlineDouble:
		return fmt.Errorf("%w: underline %d", ErrInvalidStyle, font.Underline)
	}
	for _, b := range []Border{s.Border.Top, s.Border.Bottom, s.Border.Left, s.Border.Right} {
		if b.Style > BorderSlantedDashDot {
			return fmt.Errorf("%w: border style %d", ErrInvalidStyle, b.Style)
		}
	}
	return nil
}

// freeze rejects new styles and formats from now on. Lookups of already
// registered values keep working.
func (r *StyleRegistry) freeze() { r.frozen = true }

// Style returns a registered style.
func (r *StyleRegistry) Style(id StyleID) (CellStyle, bool) {
	if id < 0 || int(id) >= len(r.styles) {
		return CellStyle{}, false
	}
	return r.styles[id], true
}

// Styles returns all registered styles indexed by StyleID.
func (r *StyleRegistry) Styles() []CellStyle {
	return append([]CellStyle(nil), r.styles...)
}

// ResolveDataFormat maps a format pattern to its code. Built-in patterns map
// to their reserved codes; other patterns are appended to the custom table.
// Patterns are opaque: they are compared byte for byte and not validated.
func (r *StyleRegistry) ResolveDataFormat(pattern string) (FormatID, error) {
	if pattern == "" {
		return FormatGeneral, nil
	}
	if id, ok := builtinByPattern[pattern]; ok {
		return id, nil
	}
	if id, ok := r.formatIDs[pattern]; ok {
		return id, nil
	}
	if r.frozen {
		return 0, ErrWorkbookWritten
	}
	if len(r.formats) >= r.maxFormats {
		return 0, fmt.Errorf("%w: %d custom formats", ErrFormatTableFull, len(r.formats))
	}
	id := FirstCustomFormat + FormatID(len(r.formats))
	r.formats = append(r.formats, pattern)
	r.formatIDs[pattern] = id
	return id, nil
}

// FormatID returns the code of a pattern that was already resolved.
func (r *StyleRegistry) FormatID(pattern string) (FormatID, bool) {
	if pattern == "" {
		return FormatGeneral, true
	}
	if id, ok := builtinByPattern[pattern]; ok {
		return id, true
	}
	id, ok := r.formatIDs[pattern]
	return id, ok
}

// DataFormat returns the pattern of a format code.
func (r *StyleRegistry) DataFormat(id FormatID) (string, bool) {
	if p, ok := builtinFormats[id]; ok {
		return p, true
	}
	i := int(id - FirstCustomFormat)
	if i < 0 || i >= len(r.formats) {
		return "", false
	}
	return r.formats[i], true
}

// CustomFormat is one entry of the custom format table.
type CustomFormat struct {
	ID      FormatID
	Pattern string
}

// CustomFormats returns the custom format table in allocation order.
func (r *StyleRegistry) CustomFormats() []CustomFormat {
	out := make([]CustomFormat, len(r.formats))
	for i, p := range r.formats {
		out[i] = CustomFormat{ID: FirstCustomFormat + FormatID(i), Pattern: p}
	}
	return out
}

// IsDateFormat reports whether the format code renders dates or times.
func (r *StyleRegistry) IsDateFormat(id FormatID) bool {
	switch {
	case id >= 0x0e && id <= 0x16, id >= 0x2d && id <= 0x2f:
		return true
	case IsBuiltinFormat(id):
		return false
	}
	p, ok := r.DataFormat(id)
	return ok && IsDatePattern(p)
}

// Palette returns the workbook palette.
func (r *StyleRegistry) Palette() *Palette { return r.palette }
