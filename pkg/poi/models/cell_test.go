package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellTypedValues(t *testing.T) {
	s := newTestSheet(t)
	row := s.CreateRow(2)

	row.CreateCell(0).SetNumber(1.1)
	require.NoError(t, row.CreateCell(1).SetDate(time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)))
	row.CreateCell(2).SetText("a string")
	row.CreateCell(3).SetBool(true)
	require.NoError(t, row.CreateCell(4).SetError(ErrorDiv0))
	row.CreateCell(5)

	tests := []struct {
		col     int
		typ     CellType
		display string
	}{
		{0, CellNumber, "1.1"},
		{1, CellDate, "2024-05-17 12:00:00"},
		{2, CellText, "a string"},
		{3, CellBool, "TRUE"},
		{4, CellError, "#DIV/0!"},
		{5, CellBlank, ""},
	}
	for _, tt := range tests {
		c := row.Cell(tt.col)
		if c.Type() != tt.typ {
			t.Errorf("cell %s type = %s, want %s", c.Name(), c.Type(), tt.typ)
		}
		if got := c.DisplayText(); got != tt.display {
			t.Errorf("cell %s DisplayText() = %q, want %q", c.Name(), got, tt.display)
		}
	}

	assert.InDelta(t, 45429.5, row.Cell(1).Number(), 1e-9)
	assert.Equal(t, "C3", row.Cell(2).Name())
}

func TestCellSetErrorRejectsUnknownCode(t *testing.T) {
	s := newTestSheet(t)
	c := s.CreateCell(0, 0)
	c.SetNumber(3)
	assert.Error(t, c.SetError(ErrorCode(0x99)))
	assert.Equal(t, CellNumber, c.Type(), "failed SetError keeps the old value")
}

func TestCellDateDisplayUsesStyleFormat(t *testing.T) {
	s := newTestSheet(t)
	id, err := s.Workbook().Styles().RegisterStyle(CellStyle{NumberFormat: "m/d/yy h:mm"})
	require.NoError(t, err)

	c := s.CreateCell(0, 0)
	require.NoError(t, c.SetDate(time.Date(2008, 1, 2, 13, 45, 0, 0, time.UTC)))
	require.NoError(t, c.SetStyle(id))
	assert.Equal(t, "1/2/08 13:45", c.DisplayText())

	back, err := c.Date()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2008, 1, 2, 13, 45, 0, 0, time.UTC), back)
}

func TestCellSetStyleUnknown(t *testing.T) {
	s := newTestSheet(t)
	c := s.CreateCell(0, 0)
	if err := c.SetStyle(77); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("expected ErrUnknownStyle, got %v", err)
	}
	if c.Style() != 0 {
		t.Errorf("failed SetStyle changed style to %d", c.Style())
	}
}

func TestUpdateStyleDoesNotAlias(t *testing.T) {
	s := newTestSheet(t)
	reg := s.Workbook().Styles()
	shared, err := reg.RegisterStyle(CellStyle{HAlign: HAlignCenter})
	require.NoError(t, err)

	a := s.CreateCell(0, 0)
	b := s.CreateCell(0, 1)
	require.NoError(t, a.SetStyle(shared))
	require.NoError(t, b.SetStyle(shared))

	require.NoError(t, a.UpdateStyle(func(cs *CellStyle) { cs.Fill = Fill{Pattern: FillSolid, Foreground: ColorOrange} }))

	assert.NotEqual(t, shared, a.Style())
	assert.Equal(t, shared, b.Style())
	orig, _ := reg.Style(shared)
	assert.Equal(t, FillNone, orig.Fill.Pattern)
}

func TestRichTextRuns(t *testing.T) {
	s := newTestSheet(t)
	bold := s.Workbook().Styles().RegisterFont(Font{Name: "Arial", Size: 10, Bold: true})
	c := s.CreateCell(0, 0)

	require.NoError(t, c.SetRichText("plain bold", []TextRun{{Start: 6, Font: bold}}))
	assert.Equal(t, CellText, c.Type())
	assert.Equal(t, []TextRun{{Start: 6, Font: bold}}, c.Value().Runs())

	assert.Error(t, c.SetRichText("abc", []TextRun{{Start: 5, Font: bold}}))
	assert.ErrorIs(t, c.SetRichText("abc", []TextRun{{Start: 0, Font: 99}}), ErrUnknownFont)
	assert.Error(t, c.SetRichText("abc", []TextRun{{Start: 1, Font: 0}, {Start: 1, Font: bold}}))
}

func TestCellHyperlink(t *testing.T) {
	s := newTestSheet(t)
	c := s.CreateCell(0, 0)
	_, ok := c.Hyperlink()
	assert.False(t, ok)

	require.NoError(t, c.SetHyperlink(Hyperlink{Kind: LinkURL, Address: "https://poi.apache.org/"}))
	require.NoError(t, c.SetHyperlink(Hyperlink{Kind: LinkEmail, Address: "mailto:poi@apache.org?subject=Hyperlinks"}))
	l, ok := c.Hyperlink()
	require.True(t, ok)
	assert.Equal(t, LinkEmail, l.Kind, "a cell holds one link, the last one set")

	assert.Error(t, c.SetHyperlink(Hyperlink{Kind: LinkURL}))
	c.RemoveHyperlink()
	_, ok = c.Hyperlink()
	assert.False(t, ok)
}

func TestRowHeight(t *testing.T) {
	s := newTestSheet(t)
	r := s.CreateRow(0)
	assert.Equal(t, float64(DefaultRowHeight), r.Height())
	assert.False(t, r.CustomHeight())

	require.NoError(t, r.SetHeight(30))
	assert.Equal(t, 30.0, r.Height())
	assert.Error(t, r.SetHeight(500))

	require.NoError(t, s.SetDefaultRowHeight(20))
	assert.Equal(t, 20.0, s.CreateRow(1).Height())
}

func TestLinkHelpers(t *testing.T) {
	tests := []struct {
		address string
		kind    LinkKind
	}{
		{"https://poi.apache.org/", LinkURL},
		{"mailto:poi@apache.org", LinkEmail},
		{"'Target Sheet'!A1", LinkDocument},
		{"link1.xls", LinkFile},
	}
	for _, tt := range tests {
		if got := GuessLinkKind(tt.address); got != tt.kind {
			t.Errorf("GuessLinkKind(%q) = %s, want %s", tt.address, got, tt.kind)
		}
	}

	sheet, ref := SplitLocation("'It''s here'!B3")
	assert.Equal(t, "It's here", sheet)
	assert.Equal(t, "B3", ref)
	assert.Equal(t, "'Target Sheet'", QuoteSheetName("Target Sheet"))
	assert.Equal(t, "Data", QuoteSheetName("Data"))
}

func TestParseErrorCode(t *testing.T) {
	code, ok := ParseErrorCode("#N/A")
	assert.True(t, ok)
	assert.Equal(t, ErrorNA, code)
	_, ok = ParseErrorCode("#BOGUS")
	assert.False(t, ok)
}
