package xls

import (
	"fmt"

	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
)

// Palette indexes meaning "automatic" in the different color fields.
const (
	icvFontAuto   uint16 = 0x7FFF
	icvForeAuto   uint16 = 0x40
	icvBackAuto   uint16 = 0x41
	icvBorderAuto uint16 = 0x40
)

// styleXFCount is the number of style XFs ahead of the cell XFs. The
// registry's style 0 becomes XF 15, the default cell format.
const styleXFCount = 15

// Built-in NAME identifiers.
const (
	builtinPrintArea   uint8 = 0x06
	builtinPrintTitles uint8 = 0x07
)

// fontIndex maps a registry font to its BIFF index. BIFF has no font 4, so
// fonts after the default shift by four.
func fontIndex(id models.FontID) uint16 {
	if id == 0 {
		return 0
	}
	return uint16(id) + 4
}

// xfIndex maps a registry style to its XF index.
func xfIndex(id models.StyleID) uint16 {
	return uint16(styleXFCount + int(id))
}

func colorIndex(c models.Color, auto uint16) uint16 {
	if c == models.ColorAutomatic {
		return auto
	}
	return uint16(c)
}

func fontRecord(f models.Font) ([]byte, error) {
	var grbit uint16
	if f.Italic {
		grbit |= 0x0002
	}
	if f.Strikeout {
		grbit |= 0x0008
	}
	weight := uint16(400)
	if f.Bold {
		weight = 700
	}
	name, err := shortString(f.Name)
	if err != nil {
		return nil, err
	}
	return rec(nil).
		u16(uint16(models.PointsToTwips(f.Size))).
		u16(grbit).
		u16(colorIndex(f.Color, icvFontAuto)).
		u16(weight).
		u16(0). // no super/subscript
		u8(uint8(f.Underline)).
		u8(0). // family
		u8(0). // charset
		u8(0).
		raw(name), nil
}

// biffVAlign maps vertical alignment to the BIFF order (top, center, bottom).
func biffVAlign(v models.VerticalAlignment) uint8 {
	switch v {
	case models.VAlignTop:
		return 0
	case models.VAlignCenter:
		return 1
	case models.VAlignJustify:
		return 3
	case models.VAlignDistributed:
		return 4
	}
	return 2
}

func borderColor(b models.Border) uint32 {
	if b.Style == models.BorderNone {
		return 0
	}
	return uint32(colorIndex(b.Color, icvBorderAuto))
}

// xfRecord encodes a 20-byte XF. typ carries the locked, style and parent
// bits; used is the attribute-used byte.
func xfRecord(ifnt, ifmt, typ uint16, cs models.CellStyle, used uint8) []byte {
	align := uint8(cs.HAlign)&0x07 | biffVAlign(cs.VAlign)<<4
	if cs.WrapText {
		align |= 0x08
	}
	b := cs.Border
	lines := uint32(b.Left.Style)&0x0F |
		(uint32(b.Right.Style)&0x0F)<<4 |
		(uint32(b.Top.Style)&0x0F)<<8 |
		(uint32(b.Bottom.Style)&0x0F)<<12 |
		(borderColor(b.Left)&0x7F)<<16 |
		(borderColor(b.Right)&0x7F)<<23
	colors := borderColor(b.Top)&0x7F |
		(borderColor(b.Bottom)&0x7F)<<7 |
		(uint32(cs.Fill.Pattern)&0x3F)<<26
	fill := colorIndex(cs.Fill.Foreground, icvForeAuto)&0x7F |
		(colorIndex(cs.Fill.Background, icvBackAuto)&0x7F)<<7
	return rec(nil).
		u16(ifnt).
		u16(ifmt).
		u16(typ).
		u8(align).
		u8(0). // rotation
		u8(uint8(cs.Indent) & 0x0F).
		u8(used).
		u32(lines).
		u32(colors).
		u16(fill)
}

// writeFonts emits the default font as BIFF fonts 0-3, then the rest.
func writeFonts(out *stream, fonts []models.Font) error {
	def, err := fontRecord(fonts[0])
	if err != nil {
		return err
	}
	for i := 0; i < 4; i++ {
		out.record(recFont, def)
	}
	for _, f := range fonts[1:] {
		r, err := fontRecord(f)
		if err != nil {
			return fmt.Errorf("font %q: %w", f.Name, err)
		}
		out.record(recFont, r)
	}
	return nil
}

func writeFormats(out *stream, formats []models.CustomFormat) error {
	for _, f := range formats {
		s, err := xlString(f.Pattern)
		if err != nil {
			return err
		}
		out.record(recFormat, rec(nil).u16(uint16(f.ID)).raw(s))
	}
	return nil
}

// writeXFs emits the 15 style XFs followed by one cell XF per registry style.
func writeXFs(out *stream, reg *models.StyleRegistry) {
	for i := 0; i < styleXFCount; i++ {
		var ifnt uint16
		var used uint8
		switch {
		case i == 1 || i == 2:
			ifnt = 1
		case i == 3 || i == 4:
			ifnt = 2
		}
		if i > 0 {
			used = 0xF4
		}
		out.record(recXF, xfRecord(ifnt, 0, 0xFFF5, models.CellStyle{}, used))
	}
	for id, cs := range reg.Styles() {
		ifmt, _ := reg.FormatID(cs.NumberFormat)
		used := uint8(0xFC)
		if id == 0 {
			used = 0
		}
		out.record(recXF, xfRecord(fontIndex(cs.Font), uint16(ifmt), 0x0001, cs, used))
	}
	// Normal style, built in, bound to XF 0.
	out.record(recStyle, rec(nil).u16(0x8000).u8(0).u8(0xFF))
}

func writePalette(out *stream, p *models.Palette) {
	if !p.Modified() {
		return
	}
	colors := p.Colors()
	r := rec(nil).u16(uint16(len(colors)))
	for _, c := range colors {
		r = r.u8(c.R).u8(c.G).u8(c.B).u8(0)
	}
	out.record(recPalette, r)
}

// writeBoundSheets emits one BOUNDSHEET per sheet and returns the offsets of
// their stream position fields for later patching.
func writeBoundSheets(out *stream, names []string) ([]int, error) {
	offsets := make([]int, len(names))
	for i, name := range names {
		s, err := shortString(name)
		if err != nil {
			return nil, err
		}
		offsets[i] = out.Len() + 4
		out.record(recBoundSheet, rec(nil).u32(0).u8(0).u8(0).raw(s))
	}
	return offsets, nil
}

// definedName is a sheet-local built-in name and its formula tokens.
type definedName struct {
	builtin uint8
	sheet   int
	rgce    []byte
}

// area3d encodes a ptgArea3d token with absolute references.
func area3d(ixti int, r models.CellRange) rec {
	return rec(nil).
		u8(0x3B).
		u16(uint16(ixti)).
		u16(uint16(r.FirstRow)).
		u16(uint16(r.LastRow)).
		u16(uint16(r.FirstCol)).
		u16(uint16(r.LastCol))
}

// sheetNames collects the print area and print titles of sheet i.
func sheetNames(i int, s *models.Sheet) ([]definedName, error) {
	var out []definedName
	if area, ok := s.PrintArea(); ok {
		r, err := clampRange(area)
		if err != nil {
			return nil, fmt.Errorf("print area: %w", err)
		}
		out = append(out, definedName{builtin: builtinPrintArea, sheet: i, rgce: area3d(i, r)})
	}

	var parts []rec
	if cols, ok := s.RepeatingColumns(); ok {
		r, err := clampRange(cols)
		if err != nil {
			return nil, fmt.Errorf("repeating columns: %w", err)
		}
		parts = append(parts, area3d(i, r))
	}
	if rows, ok := s.RepeatingRows(); ok {
		r, err := clampRange(rows)
		if err != nil {
			return nil, fmt.Errorf("repeating rows: %w", err)
		}
		parts = append(parts, area3d(i, r))
	}
	switch len(parts) {
	case 1:
		out = append(out, definedName{builtin: builtinPrintTitles, sheet: i, rgce: parts[0]})
	case 2:
		// ptgMemFunc wrapping both areas and a ptgUnion.
		sub := rec(nil).raw(parts[0]).raw(parts[1]).u8(0x10)
		rgce := rec(nil).u8(0x29).u16(uint16(len(sub))).raw(sub)
		out = append(out, definedName{builtin: builtinPrintTitles, sheet: i, rgce: rgce})
	}
	return out, nil
}

// clampRange bounds whole-row and whole-column ranges to the sheet and
// checks the result fits.
func clampRange(r models.CellRange) (models.CellRange, error) {
	r = r.Clamp(MaxRows, MaxColumns)
	if r.FirstRow < 0 || r.FirstCol < 0 || r.LastRow >= MaxRows || r.LastCol >= MaxColumns {
		return r, fmt.Errorf("%w: range %s", ErrLimit, r)
	}
	return r, nil
}

// writeNames emits the reference tables and NAME records. Each sheet gets
// one EXTERNSHEET entry with the same index.
func writeNames(out *stream, nsheets int, names []definedName) {
	if len(names) == 0 {
		return
	}
	out.record(recSupBook, rec(nil).u16(uint16(nsheets)).u16(0x0401))
	ext := rec(nil).u16(uint16(nsheets))
	for i := 0; i < nsheets; i++ {
		ext = ext.u16(0).u16(uint16(i)).u16(uint16(i))
	}
	out.record(recExternSheet, ext)
	for _, n := range names {
		out.record(recName, rec(nil).
			u16(0x0020). // built-in
			u8(0).
			u8(1).
			u16(uint16(len(n.rgce))).
			u16(0).
			u16(uint16(n.sheet+1)).
			u8(0).u8(0).u8(0).u8(0).
			u8(0). // compressed name
			u8(n.builtin).
			raw(n.rgce))
	}
}
