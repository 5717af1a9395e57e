package xls

import (
	"fmt"
	"unicode/utf8"

	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
)

// formatRun is one rich text run: a UTF-16 offset and a BIFF font index.
type formatRun struct {
	ich  uint16
	ifnt uint16
}

type sstEntry struct {
	t    text
	runs []formatRun
}

// sst is the shared string table. Plain strings are stored once; rich
// strings are stored per occurrence.
type sst struct {
	index   map[string]int
	entries []sstEntry
	refs    int
}

func newSST() *sst {
	return &sst{index: make(map[string]int)}
}

// add returns the table index of a text value, adding it when new.
func (s *sst) add(v models.Value, fontIndex func(models.FontID) uint16) (int, error) {
	t := encodeText(v.Text())
	if t.units > MaxStringLength {
		return 0, fmt.Errorf("%w: string of %d characters exceeds %d", ErrLimit, t.units, MaxStringLength)
	}
	s.refs++
	if len(v.Runs()) == 0 {
		if i, ok := s.index[v.Text()]; ok {
			return i, nil
		}
		s.index[v.Text()] = len(s.entries)
		s.entries = append(s.entries, sstEntry{t: t})
		return len(s.entries) - 1, nil
	}
	e := sstEntry{t: t}
	offsets := runeToUnitOffsets(v.Text())
	for _, r := range v.Runs() {
		e.runs = append(e.runs, formatRun{ich: uint16(offsets[r.Start]), ifnt: fontIndex(r.Font)})
	}
	s.entries = append(s.entries, e)
	return len(s.entries) - 1, nil
}

// runeToUnitOffsets maps rune offsets to UTF-16 offsets.
func runeToUnitOffsets(s string) []int {
	out := make([]int, 0, utf8.RuneCountInString(s)+1)
	u := 0
	for _, r := range s {
		out = append(out, u)
		if r >= 0x10000 {
			u += 2
		} else {
			u++
		}
	}
	return append(out, u)
}

// continuer fills records up to maxRecordData and starts CONTINUE records
// when one is full.
type continuer struct {
	out *stream
	op  uint16
	buf rec
}

func (c *continuer) room() int { return maxRecordData - len(c.buf) }

// pos returns the stream offset of the next byte written and its offset
// within the current record, header included.
func (c *continuer) pos() (stream uint32, inRecord uint16) {
	return uint32(c.out.Len() + 4 + len(c.buf)), uint16(4 + len(c.buf))
}

func (c *continuer) flush() {
	c.out.record(c.op, c.buf)
	c.op = recContinue
	c.buf = c.buf[:0]
}

// write emits SST and its CONTINUE records followed by EXTSST. A string
// header never straddles a record; character data does, and each
// continuation restates the character width.
func (s *sst) write(out *stream) {
	c := &continuer{out: out, op: recSST}
	c.buf = rec(nil).u32(uint32(s.refs)).u32(uint32(len(s.entries)))

	bucket := extSSTBucket(len(s.entries))
	ext := rec(nil).u16(uint16(bucket))

	for i, e := range s.entries {
		grbit := e.t.grbit()
		hdr := rec(nil).u16(uint16(e.t.units))
		if len(e.runs) > 0 {
			hdr = hdr.u8(grbit | 0x08).u16(uint16(len(e.runs)))
		} else {
			hdr = hdr.u8(grbit)
		}
		need := len(hdr)
		if e.t.units > 0 {
			need += e.t.unitSize()
		}
		if c.room() < need {
			c.flush()
		}
		if i%bucket == 0 {
			ib, cb := c.pos()
			ext = ext.u32(ib).u16(cb).u16(0)
		}
		c.buf = c.buf.raw(hdr)

		data := e.t.data
		for len(data) > 0 {
			n := c.room() / e.t.unitSize() * e.t.unitSize()
			if n == 0 {
				c.flush()
				c.buf = c.buf.u8(grbit)
				continue
			}
			if n > len(data) {
				n = len(data)
			}
			c.buf = c.buf.raw(data[:n])
			data = data[n:]
		}
		for _, r := range e.runs {
			if c.room() < 4 {
				c.flush()
			}
			c.buf = c.buf.u16(r.ich).u16(r.ifnt)
		}
	}
	c.flush()
	out.record(recExtSST, ext)
}

// extSSTBucket is the number of strings per EXTSST entry, keeping the
// record within 128 entries.
func extSSTBucket(n int) int {
	b := 8
	if q := (n + 127) / 128; q > b {
		b = q
	}
	return b
}
