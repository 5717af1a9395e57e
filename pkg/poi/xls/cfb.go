package xls

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Compound file constants for version 3 files with 512-byte sectors.
const (
	sectorSize     = 512
	dirEntrySize   = 128
	fatPerSector   = sectorSize / 4
	headerDIFAT    = 109
	miniCutoff     = 4096
	secFree        = 0xFFFFFFFF
	secEndOfChain  = 0xFFFFFFFE
	secFAT         = 0xFFFFFFFD
	noStream       = 0xFFFFFFFF
	typeStream     = 2
	typeRoot       = 5
	colorBlack     = 1
	workbookStream = "Workbook"
)

var cfbSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// writeCompoundFile packs data as the single stream of an OLE2 compound
// file. Streams shorter than the mini stream cutoff are padded to it so the
// file needs no mini FAT. The FAT must fit the header's DIFAT array.
func writeCompoundFile(w io.Writer, name string, data []byte) error {
	if len(data) < miniCutoff {
		padded := make([]byte, miniCutoff)
		copy(padded, data)
		data = padded
	}
	streamSectors := (len(data) + sectorSize - 1) / sectorSize
	fatSectors := (streamSectors + 1 + fatPerSector - 2) / (fatPerSector - 1)
	if fatSectors > headerDIFAT {
		return fmt.Errorf("%w: workbook stream of %d bytes", ErrLimit, len(data))
	}
	dirSector := streamSectors
	firstFAT := dirSector + 1

	// FAT: stream chain, directory, FAT sectors.
	fat := make([]uint32, fatSectors*fatPerSector)
	for i := range fat {
		fat[i] = secFree
	}
	for i := 0; i < streamSectors-1; i++ {
		fat[i] = uint32(i + 1)
	}
	fat[streamSectors-1] = secEndOfChain
	fat[dirSector] = secEndOfChain
	for i := 0; i < fatSectors; i++ {
		fat[firstFAT+i] = secFAT
	}

	hdr := rec(nil).
		raw(cfbSignature).
		zeros(16).
		u16(0x003E).
		u16(0x0003).
		u16(0xFFFE).
		u16(9). // sector shift
		u16(6). // mini sector shift
		zeros(6).
		u32(0). // directory sectors, always 0 in version 3
		u32(uint32(fatSectors)).
		u32(uint32(dirSector)).
		u32(0).
		u32(miniCutoff).
		u32(secEndOfChain).
		u32(0).
		u32(secEndOfChain).
		u32(0)
	for i := 0; i < headerDIFAT; i++ {
		if i < fatSectors {
			hdr = hdr.u32(uint32(firstFAT + i))
		} else {
			hdr = hdr.u32(secFree)
		}
	}

	dir := rec(nil).
		raw(dirEntry("Root Entry", typeRoot, 1, secEndOfChain, 0)).
		raw(dirEntry(name, typeStream, noStream, 0, uint32(len(data)))).
		raw(dirEntry("", 0, noStream, 0, 0)).
		raw(dirEntry("", 0, noStream, 0, 0))

	pad := make([]byte, streamSectors*sectorSize-len(data))
	fatBytes := make([]byte, 0, len(fat)*4)
	for _, v := range fat {
		fatBytes = binary.LittleEndian.AppendUint32(fatBytes, v)
	}
	for _, part := range [][]byte{hdr, data, pad, dir, fatBytes} {
		if _, err := w.Write(part); err != nil {
			return err
		}
	}
	return nil
}

func dirEntry(name string, typ uint8, child, start, size uint32) []byte {
	var nameField [64]byte
	nameLen := 0
	if name != "" {
		b := utf16z(name)
		copy(nameField[:], b)
		nameLen = len(b)
	}
	r := rec(nil).
		raw(nameField[:]).
		u16(uint16(nameLen)).
		u8(typ)
	if typ == 0 {
		r = r.u8(0)
	} else {
		r = r.u8(colorBlack)
	}
	return r.
		u32(noStream). // left sibling
		u32(noStream). // right sibling
		u32(child).
		zeros(16). // clsid
		u32(0).    // state
		zeros(16). // creation and modification times
		u32(start).
		u32(size).
		u32(0)
}
