package poi

import (
	"errors"
	"fmt"

	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/xls"
)

// ErrClosedStream indicates an operation on a closed serializer.
var ErrClosedStream = errors.New("serializer is closed")

// ErrSerializerState indicates serializer operations called out of order.
var ErrSerializerState = errors.New("serializer operation out of order")

// ErrUnsupportedFormat indicates a file format or extension this package
// cannot handle.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Model and backend errors, re-exported for callers of the facade.
var (
	ErrInvalidName     = models.ErrInvalidName
	ErrDuplicateName   = models.ErrDuplicateName
	ErrRangeParse      = models.ErrRangeParse
	ErrOverlap         = models.ErrOverlap
	ErrInvalidRegion   = models.ErrInvalidRegion
	ErrFormatTableFull = models.ErrFormatTableFull
	ErrInvalidPane     = models.ErrInvalidPane
	ErrUnknownFont     = models.ErrUnknownFont
	ErrSheetIndex      = models.ErrSheetIndex
	ErrDateRange       = models.ErrDateRange
	ErrInvalidStyle    = models.ErrInvalidStyle
	ErrWorkbookWritten = models.ErrWorkbookWritten
	ErrLimit           = xls.ErrLimit
)

// IOError represents a failure reading or writing a file.
type IOError struct {
	Op   string // "create", "write", "replace", "read"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError.
func NewIOError(op, path string, err error) *IOError {
	return &IOError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}
