package models

import "errors"

// ErrInvalidName indicates a sheet name with forbidden characters or too long.
var ErrInvalidName = errors.New("invalid sheet name")

// ErrDuplicateName indicates a sheet name already used in the workbook.
var ErrDuplicateName = errors.New("duplicate sheet name")

// ErrRangeParse indicates a malformed cell range expression.
var ErrRangeParse = errors.New("malformed range expression")

// ErrOverlap indicates a merged region intersecting an existing one.
var ErrOverlap = errors.New("merged region overlaps an existing region")

// ErrInvalidRegion indicates a merged region that is a single cell or unbounded.
var ErrInvalidRegion = errors.New("invalid merged region")

// ErrFormatTableFull indicates the custom number format table is exhausted.
var ErrFormatTableFull = errors.New("number format table full")

// ErrUnknownFont indicates a style referencing a font that was never registered.
var ErrUnknownFont = errors.New("unknown font")

// ErrUnknownStyle indicates a cell referencing a style that was never registered.
var ErrUnknownStyle = errors.New("unknown style")

// ErrInvalidStyle indicates a style with out-of-range attributes.
var ErrInvalidStyle = errors.New("invalid cell style")

// ErrInvalidPane indicates negative pane coordinates.
var ErrInvalidPane = errors.New("invalid pane coordinates")

// ErrSheetIndex indicates a sheet index out of range.
var ErrSheetIndex = errors.New("sheet index out of range")

// ErrDateRange indicates a date that cannot be represented as a serial.
var ErrDateRange = errors.New("date outside the serial range")

// ErrWorkbookWritten indicates a change to a workbook that a serializer has
// already written.
var ErrWorkbookWritten = errors.New("workbook already written")
