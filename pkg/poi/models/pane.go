package models

// PaneKind distinguishes frozen panes from split panes.
type PaneKind uint8

// Pane kinds.
const (
	PaneNone PaneKind = iota
	PaneFreeze
	PaneSplit
)

// Quadrant identifies one of the four panes of a split window.
type Quadrant uint8

// Quadrants, numbered as in the BIFF8 PANE record.
const (
	PaneLowerRight Quadrant = iota
	PaneUpperRight
	PaneLowerLeft
	PaneUpperLeft
)

var quadrantNames = [...]string{"bottomRight", "topRight", "bottomLeft", "topLeft"}

// String returns the OOXML name of the quadrant.
func (q Quadrant) String() string {
	if int(q) < len(quadrantNames) {
		return quadrantNames[q]
	}
	return "topLeft"
}

// Pane is the window split state of a sheet. For frozen panes ColSplit and
// RowSplit count columns and rows; for split panes they are offsets in twips.
// LeftCol and TopRow locate the first visible cell of the scrolling pane.
type Pane struct {
	Kind     PaneKind
	ColSplit int
	RowSplit int
	LeftCol  int
	TopRow   int
	Active   Quadrant
}

func freezeQuadrant(col, row int) Quadrant {
	switch {
	case col > 0 && row > 0:
		return PaneLowerRight
	case col > 0:
		return PaneUpperRight
	case row > 0:
		return PaneLowerLeft
	}
	return PaneUpperLeft
}
