package xls

import (
	"bytes"
	"encoding/binary"
	"math"
)

// BIFF8 record identifiers.
const (
	recEOF              uint16 = 0x000A
	recPrecision        uint16 = 0x000E
	recHeader           uint16 = 0x0014
	recFooter           uint16 = 0x0015
	recExternSheet      uint16 = 0x0017
	recName             uint16 = 0x0018
	recDateMode         uint16 = 0x0022
	recWindow1          uint16 = 0x003D
	recContinue         uint16 = 0x003C
	recPane             uint16 = 0x0041
	recCodepage         uint16 = 0x0042
	recColInfo          uint16 = 0x007D
	recWSBool           uint16 = 0x0081
	recBoundSheet       uint16 = 0x0085
	recPalette          uint16 = 0x0092
	recSetup            uint16 = 0x00A1
	recMergedCells      uint16 = 0x00E5
	recXF               uint16 = 0x00E0
	recSST              uint16 = 0x00FC
	recLabelSST         uint16 = 0x00FD
	recExtSST           uint16 = 0x00FF
	recSupBook          uint16 = 0x01AE
	recHLink            uint16 = 0x01B8
	recDimensions       uint16 = 0x0200
	recBlank            uint16 = 0x0201
	recNumber           uint16 = 0x0203
	recBoolErr          uint16 = 0x0205
	recRow              uint16 = 0x0208
	recDefaultRowHeight uint16 = 0x0225
	recWindow2          uint16 = 0x023E
	recStyle            uint16 = 0x0293
	recFont             uint16 = 0x0031
	recFormat           uint16 = 0x041E
	recQuickTip         uint16 = 0x0800
	recBOF              uint16 = 0x0809
)

// BOF substream types.
const (
	bofGlobals   uint16 = 0x0005
	bofWorksheet uint16 = 0x0010
)

// maxRecordData is the largest record payload; longer data continues in
// CONTINUE records.
const maxRecordData = 8224

// rec builds a little-endian record payload.
type rec []byte

func (r rec) u8(v uint8) rec { return append(r, v) }
func (r rec) u16(v uint16) rec { return binary.LittleEndian.AppendUint16(r, v) }
func (r rec) u32(v uint32) rec { return binary.LittleEndian.AppendUint32(r, v) }
func (r rec) f64(v float64) rec { return binary.LittleEndian.AppendUint64(r, math.Float64bits(v)) }
func (r rec) raw(b []byte) rec { return append(r, b...) }
func (r rec) zeros(n int) rec { return append(r, make([]byte, n)...) }
func (r rec) ref8(a, b, c, d int) rec {
	return r.u16(uint16(a)).u16(uint16(b)).u16(uint16(c)).u16(uint16(d))
}

// stream is a sequence of BIFF records.
type stream struct {
	bytes.Buffer
}

// record appends one record, splitting payloads over maxRecordData into
// CONTINUE records.
func (s *stream) record(op uint16, data []byte) {
	for {
		n := len(data)
		if n > maxRecordData {
			n = maxRecordData
		}
		var hdr [4]byte
		binary.LittleEndian.PutUint16(hdr[0:], op)
		binary.LittleEndian.PutUint16(hdr[2:], uint16(n))
		s.Write(hdr[:])
		s.Write(data[:n])
		data = data[n:]
		if len(data) == 0 {
			return
		}
		op = recContinue
	}
}

// patchU32 overwrites four bytes at off.
func (s *stream) patchU32(off int, v uint32) {
	binary.LittleEndian.PutUint32(s.Bytes()[off:], v)
}

func bof(dt uint16) []byte {
	return rec(nil).
		u16(0x0600). // BIFF8
		u16(dt).
		u16(0x0DBB). // build
		u16(0x07CC). // year
		u32(0x00000041).
		u32(0x00000006)
}
