package xls

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		wide  bool
		units int
		data  []byte
	}{
		{"empty", "", false, 0, nil},
		{"ascii", "abc", false, 3, []byte("abc")},
		{"latin1", "café", false, 4, []byte{'c', 'a', 'f', 0xE9}},
		{"cjk", "日本", true, 2, []byte{0xE5, 0x65, 0x2C, 0x67}},
		{"surrogate pair", "a😀", true, 3, []byte{'a', 0, 0x3D, 0xD8, 0x00, 0xDE}},
	}

	for _, tt := range tests {
		got := encodeText(tt.in)
		if got.wide != tt.wide || got.units != tt.units {
			t.Errorf("%s: wide=%v units=%d, want wide=%v units=%d", tt.name, got.wide, got.units, tt.wide, tt.units)
		}
		if !bytes.Equal(got.data, tt.data) {
			t.Errorf("%s: data = % X, want % X", tt.name, got.data, tt.data)
		}
	}
}

func TestShortStringLimit(t *testing.T) {
	if _, err := shortString(strings.Repeat("a", 255)); err != nil {
		t.Errorf("255 characters: unexpected error %v", err)
	}
	if _, err := shortString(strings.Repeat("a", 256)); !errors.Is(err, ErrLimit) {
		t.Errorf("256 characters: expected ErrLimit, got %v", err)
	}
}

func TestFileMoniker(t *testing.T) {
	m := fileMoniker(`..\..\docs\report.xls`)
	if got := int(m[16]) | int(m[17])<<8; got != 2 {
		t.Errorf("up-level count = %d, want 2", got)
	}
	if !bytes.Contains(m, []byte("docs\\report.xls\x00")) {
		t.Errorf("moniker missing ANSI path: % X", m)
	}
	if !bytes.HasSuffix(m, []byte{0, 0, 0, 0}) {
		t.Errorf("ASCII path should end with an empty unicode part")
	}

	wide := fileMoniker("résumé-日本.xls")
	if !bytes.Contains(wide, utf16z("résumé-日本.xls")[:10]) {
		t.Errorf("moniker missing unicode path")
	}
}

func TestIsAbsolutePath(t *testing.T) {
	tests := map[string]bool{
		`C:\data\book.xls`:  true,
		`\\server\share\x`: true,
		"/tmp/book.xls":     true,
		"book.xls":          false,
		`..\book.xls`:       false,
	}
	for in, want := range tests {
		if got := isAbsolutePath(in); got != want {
			t.Errorf("isAbsolutePath(%q) = %v, want %v", in, got, want)
		}
	}
}
