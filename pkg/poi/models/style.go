package models

// HorizontalAlignment is the horizontal placement of cell content.
type HorizontalAlignment uint8

// Horizontal alignments, numbered as stored in BIFF8 XF records.
const (
	HAlignGeneral HorizontalAlignment = iota
	HAlignLeft
	HAlignCenter
	HAlignRight
	HAlignFill
	HAlignJustify
	HAlignCenterSelection
	HAlignDistributed
)

var hAlignNames = [...]string{"general", "left", "center", "right", "fill", "justify", "centerContinuous", "distributed"}

// String returns the OOXML name of the alignment.
func (a HorizontalAlignment) String() string {
	if int(a) < len(hAlignNames) {
		return hAlignNames[a]
	}
	return "general"
}

// VerticalAlignment is the vertical placement of cell content.
type VerticalAlignment uint8

// Vertical alignments. The zero value is bottom, the default of both formats.
const (
	VAlignBottom VerticalAlignment = iota
	VAlignTop
	VAlignCenter
	VAlignJustify
	VAlignDistributed
)

var vAlignNames = [...]string{"bottom", "top", "center", "justify", "distributed"}

// String returns the OOXML name of the alignment.
func (a VerticalAlignment) String() string {
	if int(a) < len(vAlignNames) {
		return vAlignNames[a]
	}
	return "bottom"
}

// BorderStyle is the line style of one cell edge.
type BorderStyle uint8

// Border styles, numbered as in BIFF8 and the excelize style index.
const (
	BorderNone BorderStyle = iota
	BorderThin
	BorderMedium
	BorderDashed
	BorderDotted
	BorderThick
	BorderDouble
	BorderHair
	BorderMediumDashed
	BorderDashDot
	BorderMediumDashDot
	BorderDashDotDot
	BorderMediumDashDotDot
	BorderSlantedDashDot
)

// FillPattern is the pattern of a cell background.
type FillPattern uint8

// Fill patterns, numbered as in BIFF8 and the excelize pattern index.
const (
	FillNone FillPattern = iota
	FillSolid
	FillFineDots
	FillAltBars
	FillSparseDots
	FillThickHorzBands
	FillThickVertBands
	FillThickBackwardDiag
	FillThickForwardDiag
	FillBigSpots
	FillBricks
	FillThinHorzBands
	FillThinVertBands
	FillThinBackwardDiag
	FillThinForwardDiag
	FillSquares
	FillDiamonds
	FillLessDots
	FillLeastDots
)

// Underline is the underline kind of a font.
type Underline uint8

// Underline kinds.
const (
	UnderlineNone Underline = iota
	UnderlineSingle
	UnderlineDouble
)

// Border is the style and color of one edge.
type Border struct {
	Style BorderStyle
	Color Color
}

// Borders groups the four edges of a cell.
type Borders struct {
	Top    Border
	Bottom Border
	Left   Border
	Right  Border
}

// Fill is a cell background: a pattern drawn in the foreground color over the
// background color. A solid fill uses only the foreground color.
type Fill struct {
	Pattern    FillPattern
	Foreground Color
	Background Color
}

// Font describes a typeface. Fonts are values: registering one with the
// StyleRegistry returns a FontID that styles refer to.
type Font struct {
	// Name is the family name, e.g. "Courier New".
	Name string
	// Size is the height in points.
	Size      float64
	Bold      bool
	Italic    bool
	Strikeout bool
	Underline Underline
	Color     Color
}

// DefaultFont is font 0 of every workbook.
var DefaultFont = Font{Name: "Calibri", Size: 11}

// FontID refers to a font registered with a StyleRegistry. 0 is the default font.
type FontID int

// CellStyle is the formatting of a cell. Styles are values: registering one
// with the StyleRegistry returns a StyleID that cells refer to, and two
// structurally equal styles share an id.
type CellStyle struct {
	HAlign   HorizontalAlignment
	VAlign   VerticalAlignment
	Border   Borders
	Fill     Fill
	WrapText bool
	// Indent is the indentation level, 0..15.
	Indent int
	// NumberFormat is a format pattern such as "0.0" or "m/d/yy h:mm".
	// Empty means "General".
	NumberFormat string
	Font         FontID
}

// StyleID refers to a style registered with a StyleRegistry. 0 is the default style.
type StyleID int

// Edge selects cell edges for border updates.
type Edge uint8

// Edges, combinable with |.
const (
	EdgeTop Edge = 1 << iota
	EdgeBottom
	EdgeLeft
	EdgeRight

	EdgeAll = EdgeTop | EdgeBottom | EdgeLeft | EdgeRight
)

// withBorder returns a copy of s with b applied to the selected edges.
func (s CellStyle) withBorder(edges Edge, b Border) CellStyle {
	if edges&EdgeTop != 0 {
		s.Border.Top = b
	}
	if edges&EdgeBottom != 0 {
		s.Border.Bottom = b
	}
	if edges&EdgeLeft != 0 {
		s.Border.Left = b
	}
	if edges&EdgeRight != 0 {
		s.Border.Right = b
	}
	return s
}
