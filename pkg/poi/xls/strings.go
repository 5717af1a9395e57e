package xls

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// MaxStringLength is the most UTF-16 units a cell string may hold.
const MaxStringLength = 32767

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// text is a string in BIFF8 character form: compressed (the low byte of each
// UTF-16 unit) when every character fits in Latin-1, UTF-16LE otherwise.
type text struct {
	data  []byte
	wide  bool
	units int
}

func (t text) grbit() uint8 {
	if t.wide {
		return 0x01
	}
	return 0x00
}

// unitSize is the byte size of one character.
func (t text) unitSize() int {
	if t.wide {
		return 2
	}
	return 1
}

func encodeText(s string) text {
	latin := true
	for _, r := range s {
		if r > 0xFF {
			latin = false
			break
		}
	}
	if latin {
		b, err := charmap.ISO8859_1.NewEncoder().String(s)
		if err == nil {
			return text{data: []byte(b), units: len(b)}
		}
	}
	b, _ := utf16le.NewEncoder().String(s)
	return text{data: []byte(b), wide: true, units: len(b) / 2}
}

// xlString is an XLUnicodeString: 16-bit length, flags, characters.
func xlString(s string) ([]byte, error) {
	t := encodeText(s)
	if t.units > 0xFFFF {
		return nil, fmt.Errorf("%w: string of %d characters", ErrLimit, t.units)
	}
	return rec(nil).u16(uint16(t.units)).u8(t.grbit()).raw(t.data), nil
}

// shortString is a ShortXLUnicodeString: 8-bit length, flags, characters.
func shortString(s string) ([]byte, error) {
	t := encodeText(s)
	if t.units > 0xFF {
		return nil, fmt.Errorf("%w: name of %d characters", ErrLimit, t.units)
	}
	return rec(nil).u8(uint8(t.units)).u8(t.grbit()).raw(t.data), nil
}

// utf16z returns s as null-terminated UTF-16LE.
func utf16z(s string) []byte {
	b, _ := utf16le.NewEncoder().String(s)
	return append([]byte(b), 0, 0)
}

// ansiz returns s as null-terminated Windows-1252, with unsupported
// characters replaced.
func ansiz(s string) []byte {
	b, _ := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()).String(s)
	return append([]byte(b), 0)
}

// isASCII reports whether s survives the ANSI encoding unchanged.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
