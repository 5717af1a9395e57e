// Package poi builds spreadsheets in memory and writes them as .xls (BIFF8)
// or .xlsx (SpreadsheetML) files.
package poi

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Format represents an output file format.
type Format string

const (
	// FormatXLS is the BIFF8 binary format of Excel 97-2003.
	FormatXLS Format = "xls"
	// FormatXLSX is the ZIP-packaged XML format of Excel 2007 and later.
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a format name such as "xlsx" or ".XLS".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatXLS, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath selects the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Options configures saving and serialization.
type Options struct {
	// Format overrides the format implied by the file extension.
	Format Format
	// Logger receives debug output. If nil, the standard logger is used.
	Logger *logrus.Logger
	// Perm is the permission of saved files. If zero, 0644 is used.
	Perm os.FileMode
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Perm: 0o644,
	}
}

// ResolveFormat returns the explicit format, or the one implied by path.
func (o Options) ResolveFormat(path string) (Format, error) {
	if o.Format != "" {
		return ParseFormat(string(o.Format))
	}
	return FormatFromPath(path)
}

func (o Options) logger() *logrus.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

func (o Options) perm() os.FileMode {
	if o.Perm != 0 {
		return o.Perm
	}
	return 0o644
}
