package poi

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/xls"
	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/xlsx"
)

// Encoder is a file format backend. Open is called once, WriteSheet once per
// sheet in workbook order, then Flush. Close releases the encoder whether or
// not Flush ran.
type Encoder interface {
	Open(wb *models.Workbook) error
	WriteSheet(s *models.Sheet) error
	Flush(w io.Writer) error
	Close() error
}

// NewEncoder returns the backend for a format.
func NewEncoder(format Format, log *logrus.Entry) (Encoder, error) {
	switch format {
	case FormatXLS:
		return xls.NewEncoder(log), nil
	case FormatXLSX:
		return xlsx.NewEncoder(log), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

type state int

const (
	stateEmpty state = iota
	stateOpened
	stateWritten
	stateClosed
)

var stateNames = [...]string{"empty", "workbook opened", "sheets written", "closed"}

func (s state) String() string { return stateNames[s] }

// Serializer writes one workbook to w. Its states advance in one direction:
// Open, WriteSheets, Close. Output reaches w only on Close, and only when
// every sheet was written; a failed step closes the serializer and discards
// what was encoded.
type Serializer struct {
	w     io.Writer
	enc   Encoder
	log   *logrus.Entry
	state state
	wb    *models.Workbook
}

// NewSerializer returns a serializer writing format to w.
func NewSerializer(w io.Writer, format Format, opts Options) (*Serializer, error) {
	log := opts.logger().WithField("format", string(format))
	enc, err := NewEncoder(format, log)
	if err != nil {
		return nil, err
	}
	return &Serializer{w: w, enc: enc, log: log}, nil
}

func (s *Serializer) expect(want state, op string) error {
	switch s.state {
	case want:
		return nil
	case stateClosed:
		return fmt.Errorf("%s: %w", op, ErrClosedStream)
	}
	return fmt.Errorf("%w: %s in state %q", ErrSerializerState, op, s.state)
}

// abort closes the encoder after a failed step.
func (s *Serializer) abort(err error) error {
	if cerr := s.enc.Close(); cerr != nil {
		s.log.WithError(cerr).Warn("closing encoder after failure")
	}
	s.state = stateClosed
	s.wb = nil
	return err
}

// Open binds the workbook to serialize.
func (s *Serializer) Open(wb *models.Workbook) error {
	if err := s.expect(stateEmpty, "open"); err != nil {
		return err
	}
	if err := s.enc.Open(wb); err != nil {
		return s.abort(err)
	}
	s.wb = wb
	s.state = stateOpened
	s.log.WithField("sheets", wb.NumSheets()).Debug("serializer opened")
	return nil
}

// WriteSheets encodes every sheet in workbook order.
func (s *Serializer) WriteSheets() error {
	if err := s.expect(stateOpened, "write sheets"); err != nil {
		return err
	}
	for _, sh := range s.wb.Sheets() {
		if err := s.enc.WriteSheet(sh); err != nil {
			return s.abort(err)
		}
	}
	s.state = stateWritten
	return nil
}

// Close flushes the encoded workbook to the writer if all sheets were
// written, then releases the encoder. Closing earlier discards the output.
// After a successful flush the workbook is read-only.
func (s *Serializer) Close() error {
	if s.state == stateClosed {
		return fmt.Errorf("close: %w", ErrClosedStream)
	}
	var err error
	if s.state == stateWritten {
		err = s.enc.Flush(s.w)
	} else {
		s.log.WithField("state", s.state.String()).Debug("closing serializer without output")
	}
	if cerr := s.enc.Close(); err == nil {
		err = cerr
	}
	if err == nil && s.state == stateWritten {
		s.wb.MarkWritten()
	}
	s.state = stateClosed
	s.wb = nil
	return err
}

// WriteTo serializes wb to w in the given format.
func WriteTo(w io.Writer, wb *models.Workbook, format Format, opts Options) error {
	s, err := NewSerializer(w, format, opts)
	if err != nil {
		return err
	}
	if err := s.Open(wb); err != nil {
		return err
	}
	if err := s.WriteSheets(); err != nil {
		return err
	}
	return s.Close()
}
