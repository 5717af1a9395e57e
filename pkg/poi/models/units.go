package models

// TwipsPerPoint is the number of twips (1/20 pt) in a point.
// Row heights and split pane offsets are stored in twips by both formats.
const TwipsPerPoint = 20

// PointsPerPixel converts pixels at 96 DPI to points (72 per inch).
const PointsPerPixel = 0.75

// PointsToTwips converts points to twips, rounding to the nearest twip.
func PointsToTwips(pt float64) int {
	return int(pt*TwipsPerPoint + 0.5)
}

// PixelsToTwips converts pixels at 96 DPI to twips.
func PixelsToTwips(px int) int {
	return PointsToTwips(float64(px) * PointsPerPixel)
}

// WidthUnits converts a column width in characters to 1/256 character units,
// clamped to the 255 character maximum.
func WidthUnits(chars float64) int {
	if chars > MaxColumnWidth {
		chars = MaxColumnWidth
	}
	if chars < 0 {
		chars = 0
	}
	return int(chars*256 + 0.5)
}
