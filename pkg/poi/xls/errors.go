package xls

import "errors"

// ErrLimit indicates content beyond what a BIFF8 file can hold.
var ErrLimit = errors.New("exceeds xls format limits")

// Format limits.
const (
	MaxRows    = 65536
	MaxColumns = 256
	// maxXF is the XF table capacity Excel accepts.
	maxXF = 4050
)
