// Package xls writes workbooks in the BIFF8 format used by .xls files: a
// stream of binary records stored as the "Workbook" stream of an OLE2
// compound file.
package xls

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
)

// placeholderSheet names the blank sheet written for a workbook without
// sheets; spreadsheet applications refuse files with none.
const placeholderSheet = "Sheet1"

// Encoder assembles a BIFF8 workbook. Sheets are encoded as they are
// written; the globals, which need the complete string table, are built on
// Flush.
type Encoder struct {
	log    *logrus.Entry
	wb     *models.Workbook
	sst    *sst
	names  []string
	bodies [][]byte
	defs   []definedName
}

// NewEncoder returns an encoder logging to log, or to the standard logger
// when log is nil.
func NewEncoder(log *logrus.Entry) *Encoder {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Encoder{log: log.WithField("format", "xls")}
}

// Open checks the workbook-wide limits and resets the encoder.
func (e *Encoder) Open(wb *models.Workbook) error {
	if n := styleXFCount + len(wb.Styles().Styles()); n > maxXF {
		return fmt.Errorf("%w: %d cell formats", ErrLimit, n-styleXFCount)
	}
	if n := len(wb.Styles().Fonts()) + 4; n > 0xFFFF {
		return fmt.Errorf("%w: %d fonts", ErrLimit, n)
	}
	e.wb = wb
	e.sst = newSST()
	e.names = nil
	e.bodies = nil
	e.defs = nil
	e.log.WithField("sheets", wb.NumSheets()).Debug("opened xls workbook")
	return nil
}

// WriteSheet encodes one sheet. Sheets must be written in workbook order.
func (e *Encoder) WriteSheet(s *models.Sheet) error {
	if e.wb == nil {
		return errors.New("xls: WriteSheet before Open")
	}
	index := len(e.bodies)
	w := &sheetWriter{s: s, sst: e.sst, first: index == 0}
	if err := w.write(); err != nil {
		return fmt.Errorf("sheet %q: %w", s.Name(), err)
	}
	defs, err := sheetNames(index, s)
	if err != nil {
		return fmt.Errorf("sheet %q: %w", s.Name(), err)
	}
	e.names = append(e.names, s.Name())
	e.bodies = append(e.bodies, w.out.Bytes())
	e.defs = append(e.defs, defs...)
	e.log.WithFields(logrus.Fields{"sheet": s.Name(), "bytes": w.out.Len()}).Debug("encoded sheet")
	return nil
}

// Flush writes the compound file to w.
func (e *Encoder) Flush(w io.Writer) error {
	if e.wb == nil {
		return errors.New("xls: Flush before Open")
	}
	if len(e.bodies) == 0 {
		if err := e.writePlaceholder(); err != nil {
			return err
		}
	}

	var out stream
	if err := e.writeGlobals(&out); err != nil {
		return err
	}
	offsets, err := writeBoundSheets(&out, e.names)
	if err != nil {
		return err
	}
	writeNames(&out, len(e.names), e.defs)
	e.sst.write(&out)
	out.record(recEOF, nil)

	for i, body := range e.bodies {
		out.patchU32(offsets[i], uint32(out.Len()))
		out.Write(body)
	}
	e.log.WithFields(logrus.Fields{
		"bytes":   out.Len(),
		"strings": len(e.sst.entries),
	}).Debug("flushing xls workbook stream")
	return writeCompoundFile(w, workbookStream, out.Bytes())
}

func (e *Encoder) writePlaceholder() error {
	wb := models.NewWorkbook()
	s, err := wb.CreateSheet(placeholderSheet)
	if err != nil {
		return err
	}
	return e.WriteSheet(s)
}

func (e *Encoder) writeGlobals(out *stream) error {
	out.record(recBOF, bof(bofGlobals))
	out.record(recCodepage, rec(nil).u16(1200)) // UTF-16
	out.record(recWindow1, rec(nil).
		u16(0x0168).
		u16(0x010E).
		u16(0x3A5C).
		u16(0x23BE).
		u16(0x0038).
		u16(0). // active sheet
		u16(0). // first visible tab
		u16(1). // selected tabs
		u16(0x0258))
	out.record(recDateMode, rec(nil).u16(0)) // 1900 date system
	out.record(recPrecision, rec(nil).u16(1))

	reg := e.wb.Styles()
	if err := writeFonts(out, reg.Fonts()); err != nil {
		return err
	}
	if err := writeFormats(out, reg.CustomFormats()); err != nil {
		return err
	}
	writeXFs(out, reg)
	writePalette(out, reg.Palette())
	return nil
}

// Close drops the encoded data.
func (e *Encoder) Close() error {
	e.wb = nil
	e.sst = nil
	e.bodies = nil
	return nil
}
