package xlsx

import (
	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
	"github.com/xuri/excelize/v2"
)

// styleCache maps registry styles to excelize style ids, creating each
// excelize style once per file.
type styleCache struct {
	f   *excelize.File
	reg *models.StyleRegistry
	ids map[models.StyleID]int
}

func newStyleCache(f *excelize.File, reg *models.StyleRegistry) *styleCache {
	return &styleCache{f: f, reg: reg, ids: make(map[models.StyleID]int)}
}

// id returns the excelize style for a registry style. The default style maps
// to 0 without creating anything.
func (c *styleCache) id(sid models.StyleID) (int, error) {
	if sid == 0 {
		return 0, nil
	}
	if id, ok := c.ids[sid]; ok {
		return id, nil
	}
	cs, ok := c.reg.Style(sid)
	if !ok {
		return 0, models.ErrUnknownStyle
	}
	id, err := c.f.NewStyle(c.convert(cs))
	if err != nil {
		return 0, err
	}
	c.ids[sid] = id
	return id, nil
}

func (c *styleCache) convert(cs models.CellStyle) *excelize.Style {
	s := &excelize.Style{
		Alignment: &excelize.Alignment{
			Vertical: cs.VAlign.String(),
			WrapText: cs.WrapText,
			Indent:   cs.Indent,
		},
		Font: c.font(cs.Font),
	}
	if cs.HAlign != models.HAlignGeneral {
		s.Alignment.Horizontal = cs.HAlign.String()
	}
	for _, e := range []struct {
		side string
		b    models.Border
	}{
		{"top", cs.Border.Top},
		{"bottom", cs.Border.Bottom},
		{"left", cs.Border.Left},
		{"right", cs.Border.Right},
	} {
		if e.b.Style == models.BorderNone {
			continue
		}
		s.Border = append(s.Border, excelize.Border{
			Type:  e.side,
			Style: int(e.b.Style),
			Color: c.color(e.b.Color),
		})
	}
	if cs.Fill.Pattern != models.FillNone {
		fg := c.color(cs.Fill.Foreground)
		if fg == "" {
			fg = "000000"
		}
		s.Fill = excelize.Fill{Type: "pattern", Pattern: int(cs.Fill.Pattern), Color: []string{fg}}
	}
	c.numFmt(s, cs.NumberFormat)
	return s
}

// excelizeBuiltin reports whether excelize renders a built-in code without
// a custom pattern. The currency and accounting codes depend on the locale
// and are written out as patterns.
func excelizeBuiltin(id models.FormatID) bool {
	switch {
	case id <= 4, id >= 9 && id <= 22, id >= 37 && id <= 40, id >= 45 && id <= 49:
		return true
	}
	return false
}

func (c *styleCache) numFmt(s *excelize.Style, pattern string) {
	if pattern == "" {
		return
	}
	if id, ok := c.reg.FormatID(pattern); ok && models.IsBuiltinFormat(id) && excelizeBuiltin(id) {
		s.NumFmt = int(id)
		return
	}
	p := pattern
	s.CustomNumFmt = &p
}

func (c *styleCache) font(id models.FontID) *excelize.Font {
	f, ok := c.reg.Font(id)
	if !ok || f == models.DefaultFont {
		return nil
	}
	return convertFont(f, c.reg.Palette())
}

func convertFont(f models.Font, p *models.Palette) *excelize.Font {
	out := &excelize.Font{
		Family: f.Name,
		Size:   f.Size,
		Bold:   f.Bold,
		Italic: f.Italic,
		Strike: f.Strikeout,
		Color:  colorHex(p, f.Color),
	}
	switch f.Underline {
	case models.UnderlineSingle:
		out.Underline = "single"
	case models.UnderlineDouble:
		out.Underline = "double"
	}
	return out
}

func (c *styleCache) color(idx models.Color) string {
	return colorHex(c.reg.Palette(), idx)
}

// colorHex resolves a palette index through the workbook palette, so custom
// palette entries carry over as plain RGB colors.
func colorHex(p *models.Palette, idx models.Color) string {
	rgb, ok := p.Lookup(idx)
	if !ok {
		return ""
	}
	return rgb.Hex()
}
