package poi

import (
	"fmt"
	"io"

	"github.com/google/renameio/v2"
	"github.com/sirupsen/logrus"
	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/parser"
)

// writeRecorder remembers the first error of the underlying writer, so that
// file errors can be told apart from encoding errors.
type writeRecorder struct {
	w   io.Writer
	err error
}

func (r *writeRecorder) Write(p []byte) (int, error) {
	n, err := r.w.Write(p)
	if err != nil && r.err == nil {
		r.err = err
	}
	return n, err
}

// Save writes wb to path. The workbook is encoded into a temporary file in
// the same directory, which replaces path only when encoding succeeded; on
// failure the temporary file is removed and path is left as it was.
func Save(wb *models.Workbook, path string, opts Options) error {
	format, err := opts.ResolveFormat(path)
	if err != nil {
		return err
	}
	log := opts.logger().WithFields(logrus.Fields{
		"path":   path,
		"format": string(format),
		"sheets": wb.NumSheets(),
	})

	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(opts.perm()))
	if err != nil {
		return NewIOError("create", path, err)
	}
	defer func() {
		if err := pf.Cleanup(); err != nil {
			log.WithError(err).Warn("removing temporary file")
		}
	}()

	out := &writeRecorder{w: pf}
	if err := WriteTo(out, wb, format, opts); err != nil {
		if out.err != nil {
			return NewIOError("write", path, out.err)
		}
		return err
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return NewIOError("replace", path, err)
	}
	log.Debug("saved workbook")
	return nil
}

// Open reads an xlsx file into a workbook model. Reading .xls files is not
// supported.
func Open(path string) (*models.Workbook, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	if format != FormatXLSX {
		return nil, fmt.Errorf("%w: reading %s files", ErrUnsupportedFormat, format)
	}
	wb, err := parser.ReadWorkbook(path)
	if err != nil {
		return nil, NewIOError("read", path, err)
	}
	return wb, nil
}
