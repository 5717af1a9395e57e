package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSheet(t *testing.T) *Sheet {
	t.Helper()
	wb := NewWorkbook()
	s, err := wb.CreateSheet("Sheet1")
	require.NoError(t, err)
	return s
}

func TestCreateRowIsIdempotent(t *testing.T) {
	s := newTestSheet(t)
	r1 := s.CreateRow(3)
	r1.CreateCell(0).SetNumber(1)
	r2 := s.CreateRow(3)

	assert.Same(t, r1, r2)
	assert.Equal(t, 1, r2.Len())
	assert.Len(t, s.Rows(), 1)
	assert.Same(t, r1.CreateCell(0), r2.CreateCell(0))
}

func TestRowsAreSparseAndOrdered(t *testing.T) {
	s := newTestSheet(t)
	s.CreateRow(10)
	s.CreateRow(2)
	s.CreateRow(7)

	var got []int
	for _, r := range s.Rows() {
		got = append(got, r.Index())
	}
	assert.Equal(t, []int{2, 7, 10}, got)
	assert.Nil(t, s.Row(3))
}

func TestNegativeIndexPanics(t *testing.T) {
	s := newTestSheet(t)
	assert.Panics(t, func() { s.CreateRow(-1) })
	assert.Panics(t, func() { s.CreateRow(0).CreateCell(-2) })
}

func TestAddMergedRegionOverlap(t *testing.T) {
	s := newTestSheet(t)
	first := NewCellRange(1, 1, 1, 2)
	require.NoError(t, s.AddMergedRegion(first))

	err := s.AddMergedRegion(NewCellRange(1, 1, 2, 3))
	require.ErrorIs(t, err, ErrOverlap)
	assert.Equal(t, []CellRange{first}, s.MergedRegions())

	require.NoError(t, s.AddMergedRegion(NewCellRange(2, 3, 1, 2)))
	assert.Len(t, s.MergedRegions(), 2)
}

func TestAddMergedRegionInvalid(t *testing.T) {
	s := newTestSheet(t)
	tests := []struct {
		name string
		r    CellRange
	}{
		{"single cell", NewCellRange(0, 0, 0, 0)},
		{"whole rows", MustParseRange("4:5")},
		{"whole columns", MustParseRange("A:C")},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, s.AddMergedRegion(tt.r), ErrInvalidRegion, tt.name)
	}
	assert.Empty(t, s.MergedRegions())
}

func TestFreezePane(t *testing.T) {
	tests := []struct {
		col, row, left, top int
		active              Quadrant
	}{
		{0, 1, 0, 1, PaneLowerLeft},
		{1, 0, 1, 0, PaneUpperRight},
		{2, 2, 2, 2, PaneLowerRight},
		{3, 2, 4, 10, PaneLowerRight},
	}

	for _, tt := range tests {
		s := newTestSheet(t)
		if err := s.CreateFreezePaneAt(tt.col, tt.row, tt.left, tt.top); err != nil {
			t.Fatalf("CreateFreezePaneAt(%d, %d, %d, %d): %v", tt.col, tt.row, tt.left, tt.top, err)
		}
		want := Pane{Kind: PaneFreeze, ColSplit: tt.col, RowSplit: tt.row, LeftCol: tt.left, TopRow: tt.top, Active: tt.active}
		if got := s.Pane(); got != want {
			t.Errorf("Pane() = %+v, want %+v", got, want)
		}
	}
}

func TestFreezePaneDefaultsAnchorAndClears(t *testing.T) {
	s := newTestSheet(t)
	require.NoError(t, s.CreateFreezePane(1, 2))
	p := s.Pane()
	assert.Equal(t, 1, p.LeftCol)
	assert.Equal(t, 2, p.TopRow)

	require.NoError(t, s.CreateFreezePane(0, 0))
	assert.Equal(t, PaneNone, s.Pane().Kind)

	assert.ErrorIs(t, s.CreateFreezePane(-1, 0), ErrInvalidPane)
}

func TestSplitAndFreezeLastWins(t *testing.T) {
	s := newTestSheet(t)
	require.NoError(t, s.CreateFreezePane(1, 1))
	require.NoError(t, s.CreateSplitPane(2000, 2000, 0, 0, PaneLowerLeft))
	assert.Equal(t, PaneSplit, s.Pane().Kind)
	assert.Equal(t, PaneLowerLeft, s.Pane().Active)

	require.NoError(t, s.CreateFreezePane(0, 3))
	assert.Equal(t, PaneFreeze, s.Pane().Kind)
	assert.Equal(t, 3, s.Pane().RowSplit)

	assert.ErrorIs(t, s.CreateSplitPane(-5, 0, 0, 0, PaneUpperLeft), ErrInvalidPane)
	assert.Equal(t, PaneFreeze, s.Pane().Kind)
}

func TestHeaderFooterCodes(t *testing.T) {
	s := newTestSheet(t)
	require.NoError(t, s.SetHeader(HeaderFooter{
		Center: HeaderFont("Stencil-Normal", "Italic") + HeaderFontSize(16) + "Right w/ Stencil-Normal Italic font and size 16",
		Right:  "Page " + HeaderPage() + " of " + HeaderNumPages(),
	}))
	assert.Equal(t,
		"&C&\"Stencil-Normal,Italic\"&16Right w/ Stencil-Normal Italic font and size 16&RPage &P of &N",
		s.Header().Codes())
	assert.True(t, s.Footer().Empty())

	long := HeaderFooter{Left: string(make([]byte, 300))}
	assert.Error(t, s.SetFooter(long))
}

func TestRepeatingRowsAndColumns(t *testing.T) {
	s := newTestSheet(t)
	rows := MustParseRange("4:5")
	cols := MustParseRange("A:C")
	require.NoError(t, s.SetRepeatingRows(&rows))
	require.NoError(t, s.SetRepeatingColumns(&cols))

	got, ok := s.RepeatingRows()
	require.True(t, ok)
	assert.Equal(t, "$4:$5", got.Absolute())
	gotCols, ok := s.RepeatingColumns()
	require.True(t, ok)
	assert.Equal(t, "$A:$C", gotCols.Absolute())

	bad := MustParseRange("A1:B2")
	assert.ErrorIs(t, s.SetRepeatingRows(&bad), ErrRangeParse)
	require.NoError(t, s.SetRepeatingRows(nil))
	_, ok = s.RepeatingRows()
	assert.False(t, ok)
}

func TestDimension(t *testing.T) {
	s := newTestSheet(t)
	_, ok := s.Dimension()
	assert.False(t, ok)

	s.CreateCell(4, 2).SetText("x")
	s.CreateCell(1, 5).SetNumber(2)
	s.CreateRow(9)

	d, ok := s.Dimension()
	require.True(t, ok)
	assert.Equal(t, CellRange{FirstRow: 1, LastRow: 4, FirstCol: 2, LastCol: 5}, d)
}

func TestSetRegionBorder(t *testing.T) {
	s := newTestSheet(t)
	anchor := s.CreateCell(1, 1)
	anchor.SetText("boxed")

	border := Border{Style: BorderMediumDashed, Color: ColorBlue}
	require.NoError(t, s.SetRegionBorder(NewCellRange(1, 2, 1, 3), EdgeAll, border))

	styles := s.Workbook().Styles()
	topLeft, _ := styles.Style(s.Cell(1, 1).Style())
	assert.Equal(t, border, topLeft.Border.Top)
	assert.Equal(t, border, topLeft.Border.Left)
	assert.Equal(t, BorderNone, topLeft.Border.Bottom.Style)

	bottomRight, _ := styles.Style(s.Cell(2, 3).Style())
	assert.Equal(t, border, bottomRight.Border.Bottom)
	assert.Equal(t, border, bottomRight.Border.Right)

	assert.Nil(t, s.Cell(2, 4), "cells outside the region are not created")
	assert.Equal(t, "boxed", s.Cell(1, 1).Text())
}

func TestColumnWidthAndAutoSize(t *testing.T) {
	s := newTestSheet(t)
	w, set := s.ColumnWidth(0)
	assert.False(t, set)
	assert.Equal(t, DefaultColumnWidth, w)

	require.NoError(t, s.SetColumnWidth(0, 20))
	assert.Error(t, s.SetColumnWidth(1, 256))

	s.CreateCell(0, 1).SetText("short")
	s.CreateCell(1, 1).SetText("a considerably longer value")
	s.CreateCell(2, 1).SetText("two\nlines")
	s.AutoSizeColumn(1, nil)
	w, set = s.ColumnWidth(1)
	assert.True(t, set)
	assert.InDelta(t, float64(len("a considerably longer value"))+1, w, 0.001)

	s.AutoSizeColumn(7, nil)
	_, set = s.ColumnWidth(7)
	assert.False(t, set, "empty column keeps its width")
}

func TestAutoSizeUsesStyleFont(t *testing.T) {
	s := newTestSheet(t)
	styles := s.Workbook().Styles()
	big := styles.RegisterFont(Font{Name: "Arial", Size: 22, Bold: true})
	id, err := styles.RegisterStyle(CellStyle{Font: big})
	require.NoError(t, err)

	c := s.CreateCell(0, 0)
	c.SetText("abcd")
	require.NoError(t, c.SetStyle(id))
	s.AutoSizeColumn(0, nil)

	w, _ := s.ColumnWidth(0)
	assert.InDelta(t, 4*2*1.1+1, w, 0.001)
}

func TestAutoSizeSkipsMergedCells(t *testing.T) {
	s := newTestSheet(t)
	s.CreateCell(0, 0).SetText("a very very long merged title")
	require.NoError(t, s.AddMergedRegion(NewCellRange(0, 0, 0, 3)))
	s.CreateCell(1, 0).SetText("ab")
	s.AutoSizeColumn(0, nil)

	w, _ := s.ColumnWidth(0)
	assert.InDelta(t, 3, w, 0.001)
}

func TestApproxMetricsWideRunes(t *testing.T) {
	m := ApproxMetrics{}
	assert.InDelta(t, 4, m.TextWidth("日本", DefaultFont), 0.001)
	assert.InDelta(t, 2, m.TextWidth("ab", DefaultFont), 0.001)
}
