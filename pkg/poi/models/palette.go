package models

import "fmt"

// Color is an index into the workbook palette. The zero value means automatic
// (black text, no fill color).
type Color uint8

// Indexed colors of the default palette.
const (
	ColorAutomatic           Color = 0
	ColorBlack               Color = 8
	ColorWhite               Color = 9
	ColorRed                 Color = 10
	ColorBrightGreen         Color = 11
	ColorBlue                Color = 12
	ColorYellow              Color = 13
	ColorPink                Color = 14
	ColorTurquoise           Color = 15
	ColorDarkRed             Color = 16
	ColorGreen               Color = 17
	ColorDarkBlue            Color = 18
	ColorDarkYellow          Color = 19
	ColorViolet              Color = 20
	ColorTeal                Color = 21
	ColorGrey25              Color = 22
	ColorGrey50              Color = 23
	ColorCornflowerBlue      Color = 24
	ColorMaroon              Color = 25
	ColorLemonChiffon        Color = 26
	ColorOrchid              Color = 28
	ColorCoral               Color = 29
	ColorRoyalBlue           Color = 30
	ColorLightCornflowerBlue Color = 31
	ColorSkyBlue             Color = 40
	ColorLightTurquoise      Color = 41
	ColorLightGreen          Color = 42
	ColorLightYellow         Color = 43
	ColorPaleBlue            Color = 44
	ColorRose                Color = 45
	ColorLavender            Color = 46
	ColorTan                 Color = 47
	ColorLightBlue           Color = 48
	ColorAqua                Color = 49
	ColorLime                Color = 50
	ColorGold                Color = 51
	ColorLightOrange         Color = 52
	ColorOrange              Color = 53
	ColorBlueGrey            Color = 54
	ColorGrey40              Color = 55
	ColorDarkTeal            Color = 56
	ColorSeaGreen            Color = 57
	ColorDarkGreen           Color = 58
	ColorOliveGreen          Color = 59
	ColorBrown               Color = 60
	ColorPlum                Color = 61
	ColorIndigo              Color = 62
	ColorGrey80              Color = 63
)

const (
	// PaletteFirst is the first customizable palette index.
	PaletteFirst = 8
	// PaletteSize is the number of customizable palette entries.
	PaletteSize = 56
)

// RGB is a 24-bit color.
type RGB struct{ R, G, B uint8 }

// Hex returns the color as "RRGGBB".
func (c RGB) Hex() string { return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B) }

var defaultPalette = [PaletteSize]RGB{
	{0x00, 0x00, 0x00}, {0xFF, 0xFF, 0xFF}, {0xFF, 0x00, 0x00}, {0x00, 0xFF, 0x00},
	{0x00, 0x00, 0xFF}, {0xFF, 0xFF, 0x00}, {0xFF, 0x00, 0xFF}, {0x00, 0xFF, 0xFF},
	{0x80, 0x00, 0x00}, {0x00, 0x80, 0x00}, {0x00, 0x00, 0x80}, {0x80, 0x80, 0x00},
	{0x80, 0x00, 0x80}, {0x00, 0x80, 0x80}, {0xC0, 0xC0, 0xC0}, {0x80, 0x80, 0x80},
	{0x99, 0x99, 0xFF}, {0x99, 0x33, 0x66}, {0xFF, 0xFF, 0xCC}, {0xCC, 0xFF, 0xFF},
	{0x66, 0x00, 0x66}, {0xFF, 0x80, 0x80}, {0x00, 0x66, 0xCC}, {0xCC, 0xCC, 0xFF},
	{0x00, 0x00, 0x80}, {0xFF, 0x00, 0xFF}, {0xFF, 0xFF, 0x00}, {0x00, 0xFF, 0xFF},
	{0x80, 0x00, 0x80}, {0x80, 0x00, 0x00}, {0x00, 0x80, 0x80}, {0x00, 0x00, 0xFF},
	{0x00, 0xCC, 0xFF}, {0xCC, 0xFF, 0xFF}, {0xCC, 0xFF, 0xCC}, {0xFF, 0xFF, 0x99},
	{0x99, 0xCC, 0xFF}, {0xFF, 0x99, 0xCC}, {0xCC, 0x99, 0xFF}, {0xFF, 0xCC, 0x99},
	{0x33, 0x66, 0xFF}, {0x33, 0xCC, 0xCC}, {0x99, 0xCC, 0x00}, {0xFF, 0xCC, 0x00},
	{0xFF, 0x99, 0x00}, {0xFF, 0x66, 0x00}, {0x66, 0x66, 0x99}, {0x96, 0x96, 0x96},
	{0x00, 0x33, 0x66}, {0x33, 0x99, 0x66}, {0x00, 0x33, 0x00}, {0x33, 0x33, 0x00},
	{0x99, 0x33, 0x00}, {0x99, 0x33, 0x66}, {0x33, 0x33, 0x99}, {0x33, 0x33, 0x33},
}

// Palette is the indexed color table of one workbook. Styles refer to
// palette indexes, so replacing an entry recolors every style using it.
type Palette struct {
	colors   [PaletteSize]RGB
	modified bool
}

func newPalette() *Palette {
	return &Palette{colors: defaultPalette}
}

// SetColorAtIndex replaces the color at a palette index (8..63).
func (p *Palette) SetColorAtIndex(idx Color, r, g, b uint8) error {
	if idx < PaletteFirst || int(idx) >= PaletteFirst+PaletteSize {
		return fmt.Errorf("palette index %d out of range %d..%d", idx, PaletteFirst, PaletteFirst+PaletteSize-1)
	}
	p.colors[int(idx)-PaletteFirst] = RGB{r, g, b}
	p.modified = true
	return nil
}

// Lookup returns the color at idx. Automatic and out-of-range indexes
// report false.
func (p *Palette) Lookup(idx Color) (RGB, bool) {
	if idx < PaletteFirst || int(idx) >= PaletteFirst+PaletteSize {
		return RGB{}, false
	}
	return p.colors[int(idx)-PaletteFirst], true
}

// Colors returns the 56 customizable entries in index order.
func (p *Palette) Colors() [PaletteSize]RGB { return p.colors }

// Modified reports whether any entry differs from the default palette.
func (p *Palette) Modified() bool { return p.modified }
