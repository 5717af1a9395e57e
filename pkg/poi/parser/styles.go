package parser

import (
	"strings"

	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
	"github.com/xuri/excelize/v2"
)

// styleReader converts excelize cell styles into registry styles, once per
// excelize style id.
type styleReader struct {
	f     *excelize.File
	reg   *models.StyleRegistry
	ids   map[int]models.StyleID
	dates map[int]bool
}

func newStyleReader(f *excelize.File, reg *models.StyleRegistry) *styleReader {
	return &styleReader{
		f:     f,
		reg:   reg,
		ids:   map[int]models.StyleID{0: 0},
		dates: map[int]bool{0: false},
	}
}

// cellStyle returns the registry style of a cell and whether its number
// format renders dates.
func (r *styleReader) cellStyle(sheet, ref string) (models.StyleID, bool, error) {
	xid, err := r.f.GetCellStyle(sheet, ref)
	if err != nil {
		return 0, false, err
	}
	if id, ok := r.ids[xid]; ok {
		return id, r.dates[xid], nil
	}
	xs, err := r.f.GetStyle(xid)
	if err != nil {
		return 0, false, err
	}
	cs := r.convert(xs)
	id, err := r.reg.RegisterStyle(cs)
	if err != nil {
		return 0, false, err
	}
	r.ids[xid] = id
	r.dates[xid] = models.IsDatePattern(cs.NumberFormat)
	return id, r.dates[xid], nil
}

func (r *styleReader) convert(xs *excelize.Style) models.CellStyle {
	var cs models.CellStyle
	if a := xs.Alignment; a != nil {
		cs.HAlign = parseHAlign(a.Horizontal)
		cs.VAlign = parseVAlign(a.Vertical)
		cs.WrapText = a.WrapText
		if a.Indent >= 0 && a.Indent <= 15 {
			cs.Indent = a.Indent
		}
	}
	if xs.Font != nil {
		cs.Font = r.reg.RegisterFont(fontFromExcelize(xs.Font, r.reg.Palette()))
	}
	for _, b := range xs.Border {
		edge := models.Border{Style: models.BorderStyle(b.Style), Color: paletteIndex(r.reg.Palette(), b.Color)}
		switch b.Type {
		case "left":
			cs.Border.Left = edge
		case "right":
			cs.Border.Right = edge
		case "top":
			cs.Border.Top = edge
		case "bottom":
			cs.Border.Bottom = edge
		}
	}
	if xs.Fill.Type == "pattern" && xs.Fill.Pattern > 0 {
		cs.Fill.Pattern = models.FillPattern(xs.Fill.Pattern)
		if len(xs.Fill.Color) > 0 {
			cs.Fill.Foreground = paletteIndex(r.reg.Palette(), xs.Fill.Color[0])
		}
	}
	switch {
	case xs.CustomNumFmt != nil:
		cs.NumberFormat = *xs.CustomNumFmt
	case xs.NumFmt != 0:
		cs.NumberFormat, _ = models.BuiltinFormat(models.FormatID(xs.NumFmt))
	}
	return cs
}

// fontFromExcelize maps an excelize font to a model font. A missing size
// means the default size.
func fontFromExcelize(xf *excelize.Font, p *models.Palette) models.Font {
	f := models.Font{
		Name:      xf.Family,
		Size:      xf.Size,
		Bold:      xf.Bold,
		Italic:    xf.Italic,
		Strikeout: xf.Strike,
		Color:     paletteIndex(p, xf.Color),
	}
	if f.Name == "" {
		f.Name = models.DefaultFont.Name
	}
	if f.Size == 0 {
		f.Size = models.DefaultFont.Size
	}
	switch xf.Underline {
	case "single":
		f.Underline = models.UnderlineSingle
	case "double":
		f.Underline = models.UnderlineDouble
	}
	return f
}

// paletteIndex finds the palette entry with the given hex color ("RRGGBB" or
// "AARRGGBB"). Colors outside the palette read as automatic.
func paletteIndex(p *models.Palette, hex string) models.Color {
	hex = strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(hex) == 8 {
		hex = hex[2:]
	}
	if len(hex) != 6 {
		return models.ColorAutomatic
	}
	for i, c := range p.Colors() {
		if c.Hex() == hex {
			return models.Color(models.PaletteFirst + i)
		}
	}
	return models.ColorAutomatic
}

func parseHAlign(s string) models.HorizontalAlignment {
	for a := models.HAlignGeneral; a <= models.HAlignDistributed; a++ {
		if a.String() == s {
			return a
		}
	}
	return models.HAlignGeneral
}

func parseVAlign(s string) models.VerticalAlignment {
	for a := models.VAlignBottom; a <= models.VAlignDistributed; a++ {
		if a.String() == s {
			return a
		}
	}
	return models.VAlignBottom
}
