package xls

import (
	"strings"

	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
)

var (
	stdLinkCLSID     = []byte{0xD0, 0xC9, 0xEA, 0x79, 0xF9, 0xBA, 0xCE, 0x11, 0x8C, 0x82, 0x00, 0xAA, 0x00, 0x4B, 0xA9, 0x0B}
	urlMonikerCLSID  = []byte{0xE0, 0xC9, 0xEA, 0x79, 0xF9, 0xBA, 0xCE, 0x11, 0x8C, 0x82, 0x00, 0xAA, 0x00, 0x4B, 0xA9, 0x0B}
	fileMonikerCLSID = []byte{0x03, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}
)

// Hyperlink object flags.
const (
	hlHasMoniker  uint32 = 0x01
	hlAbsolute    uint32 = 0x02
	hlHasLocation uint32 = 0x08
)

// hlinkRecord encodes the HLINK payload for a link on one cell.
func hlinkRecord(row, col int, l models.Hyperlink) []byte {
	r := rec(nil).ref8(row, row, col, col).raw(stdLinkCLSID).u32(2)
	switch l.Kind {
	case models.LinkDocument:
		return r.u32(hlHasLocation).raw(hyperlinkString(strings.TrimPrefix(l.Address, "#")))
	case models.LinkFile:
		flags := hlHasMoniker
		if isAbsolutePath(l.Address) {
			flags |= hlAbsolute
		}
		return r.u32(flags).raw(fileMoniker(l.Address))
	}
	url := utf16z(l.Address)
	return r.u32(hlHasMoniker | hlAbsolute).
		raw(urlMonikerCLSID).
		u32(uint32(len(url))).
		raw(url)
}

// quickTipRecord encodes the tooltip that follows an HLINK.
func quickTipRecord(row, col int, tip string) []byte {
	return rec(nil).u16(recQuickTip).u16(0).ref8(row, row, col, col).raw(utf16z(tip))
}

// hyperlinkString is a character count including the terminator, then
// null-terminated UTF-16LE.
func hyperlinkString(s string) []byte {
	u := utf16z(s)
	return rec(nil).u32(uint32(len(u) / 2)).raw(u)
}

// fileMoniker encodes a path. Leading "..\" segments become the up-level
// count; the path goes out as ANSI, with a UTF-16 copy when it is not ASCII.
func fileMoniker(path string) []byte {
	up := 0
	for strings.HasPrefix(path, `..\`) || strings.HasPrefix(path, "../") {
		up++
		path = path[3:]
	}
	a := ansiz(path)
	r := rec(nil).
		raw(fileMonikerCLSID).
		u16(uint16(up)).
		u32(uint32(len(a))).
		raw(a).
		u16(0xFFFF).
		u16(0xDEAD).
		zeros(20)
	if isASCII(path) {
		return r.u32(0)
	}
	w := utf16z(path)
	w = w[:len(w)-2]
	return r.u32(uint32(6 + len(w))).u32(uint32(len(w))).u16(3).raw(w)
}

func isAbsolutePath(p string) bool {
	switch {
	case strings.HasPrefix(p, `\\`), strings.HasPrefix(p, "/"):
		return true
	case len(p) >= 3 && p[1] == ':' && (p[2] == '\\' || p[2] == '/'):
		return true
	}
	return false
}
