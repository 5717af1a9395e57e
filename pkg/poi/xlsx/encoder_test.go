package xlsx

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
	"github.com/xuri/excelize/v2"
)

// encode writes wb and opens the result with excelize.
func encode(t *testing.T, wb *models.Workbook) *excelize.File {
	t.Helper()
	e := NewEncoder(nil)
	require.NoError(t, e.Open(wb))
	for _, s := range wb.Sheets() {
		require.NoError(t, e.WriteSheet(s))
	}
	var buf bytes.Buffer
	require.NoError(t, e.Flush(&buf))
	require.NoError(t, e.Close())

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestSheetsInOrder(t *testing.T) {
	wb := models.NewWorkbook()
	for _, name := range []string{"Data", "Sheet1", "日本語"} {
		_, err := wb.CreateSheet(name)
		require.NoError(t, err)
	}
	f := encode(t, wb)
	assert.Equal(t, []string{"Data", "Sheet1", "日本語"}, f.GetSheetList())
	assert.Equal(t, 0, f.GetActiveSheetIndex())
}

func TestEmptyWorkbookKeepsPlaceholder(t *testing.T) {
	f := encode(t, models.NewWorkbook())
	assert.Equal(t, []string{"Sheet1"}, f.GetSheetList())
}

func TestCellValues(t *testing.T) {
	wb := models.NewWorkbook()
	s, _ := wb.CreateSheet("Values")
	s.CreateCell(0, 0).SetNumber(1.2)
	s.CreateCell(0, 1).SetBool(true)
	s.CreateCell(0, 2).SetText("hello")
	require.NoError(t, s.CreateCell(0, 3).SetError(models.ErrorDiv0))
	require.NoError(t, s.CreateCell(1, 0).SetDate(time.Date(2008, 1, 2, 0, 0, 0, 0, time.UTC)))

	f := encode(t, wb)
	tests := []struct {
		cell string
		want string
	}{
		{"A1", "1.2"},
		{"B1", "1"},
		{"C1", "hello"},
		{"A2", "39449"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue("Values", tt.cell, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.cell)
	}

	typ, err := f.GetCellType("Values", "B1")
	require.NoError(t, err)
	assert.Equal(t, excelize.CellTypeBool, typ)

	formula, err := f.GetCellFormula("Values", "D1")
	require.NoError(t, err)
	assert.Equal(t, "#DIV/0!", formula)
}

func TestRichText(t *testing.T) {
	wb := models.NewWorkbook()
	s, _ := wb.CreateSheet("Rich")
	bold := wb.Styles().RegisterFont(models.Font{Name: "Arial", Size: 12, Bold: true})
	require.NoError(t, s.CreateCell(0, 0).SetRichText("plain bold", []models.TextRun{{Start: 6, Font: bold}}))

	runs, err := encode(t, wb).GetCellRichText("Rich", "A1")
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "plain ", runs[0].Text)
	assert.Equal(t, "bold", runs[1].Text)
	require.NotNil(t, runs[1].Font)
	assert.True(t, runs[1].Font.Bold)
	assert.Equal(t, "Arial", runs[1].Font.Family)
}

func TestStyles(t *testing.T) {
	wb := models.NewWorkbook()
	s, _ := wb.CreateSheet("Styled")
	reg := wb.Styles()
	font := reg.RegisterFont(models.Font{Name: "Courier New", Size: 24, Italic: true, Color: models.ColorRed})
	id, err := reg.RegisterStyle(models.CellStyle{
		HAlign:       models.HAlignCenter,
		VAlign:       models.VAlignTop,
		WrapText:     true,
		NumberFormat: "0.0",
		Font:         font,
		Border:       models.Borders{Bottom: models.Border{Style: models.BorderThin, Color: models.ColorBlack}},
		Fill:         models.Fill{Pattern: models.FillSolid, Foreground: models.ColorAqua},
	})
	require.NoError(t, err)
	for col := 0; col < 2; col++ {
		c := s.CreateCell(0, col)
		c.SetNumber(1.25)
		require.NoError(t, c.SetStyle(id))
	}

	f := encode(t, wb)
	a1, err := f.GetCellStyle("Styled", "A1")
	require.NoError(t, err)
	b1, err := f.GetCellStyle("Styled", "B1")
	require.NoError(t, err)
	assert.Equal(t, a1, b1, "one excelize style per registry style")

	style, err := f.GetStyle(a1)
	require.NoError(t, err)
	assert.Equal(t, "center", style.Alignment.Horizontal)
	assert.Equal(t, "top", style.Alignment.Vertical)
	assert.True(t, style.Alignment.WrapText)
	require.NotNil(t, style.Font)
	assert.Equal(t, "Courier New", style.Font.Family)
	assert.True(t, style.Font.Italic)
	assert.True(t, strings.HasSuffix(style.Font.Color, "FF0000"), style.Font.Color)
	require.NotNil(t, style.CustomNumFmt)
	assert.Equal(t, "0.0", *style.CustomNumFmt)
	require.Len(t, style.Fill.Color, 1)
	assert.True(t, strings.HasSuffix(style.Fill.Color[0], "33CCCC"), style.Fill.Color[0])
}

func TestLayout(t *testing.T) {
	wb := models.NewWorkbook()
	s, _ := wb.CreateSheet("Layout")
	require.NoError(t, s.AddMergedRegion(models.NewCellRange(1, 1, 1, 2)))
	require.NoError(t, s.SetColumnWidth(2, 20))
	require.NoError(t, s.CreateRow(3).SetHeight(30))
	require.NoError(t, s.CreateFreezePane(1, 2))

	f := encode(t, wb)
	merged, err := f.GetMergeCells("Layout")
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "B2", merged[0].GetStartAxis())
	assert.Equal(t, "C2", merged[0].GetEndAxis())

	w, err := f.GetColWidth("Layout", "C")
	require.NoError(t, err)
	assert.Equal(t, 20.0, w)

	h, err := f.GetRowHeight("Layout", 4)
	require.NoError(t, err)
	assert.Equal(t, 30.0, h)

	panes, err := f.GetPanes("Layout")
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, 1, panes.XSplit)
	assert.Equal(t, 2, panes.YSplit)
	assert.Equal(t, "B3", panes.TopLeftCell)
	assert.Equal(t, "bottomRight", panes.ActivePane)
}

func TestSplitPane(t *testing.T) {
	wb := models.NewWorkbook()
	s, _ := wb.CreateSheet("Split")
	require.NoError(t, s.CreateSplitPane(2000, 2000, 0, 0, models.PaneLowerLeft))

	panes, err := encode(t, wb).GetPanes("Split")
	require.NoError(t, err)
	assert.False(t, panes.Freeze)
	assert.Equal(t, 2000, panes.XSplit)
	assert.Equal(t, 2000, panes.YSplit)
	assert.Equal(t, "bottomLeft", panes.ActivePane)
}

func TestHyperlinks(t *testing.T) {
	wb := models.NewWorkbook()
	s, _ := wb.CreateSheet("Links")
	_, _ = wb.CreateSheet("Target Sheet")
	links := []models.Hyperlink{
		{Kind: models.LinkURL, Address: "https://poi.apache.org/", Tooltip: "POI"},
		{Kind: models.LinkFile, Address: "link1.xls"},
		{Kind: models.LinkEmail, Address: "mailto:poi@apache.org?subject=Hyperlinks"},
		{Kind: models.LinkDocument, Address: "'Target Sheet'!A1"},
	}
	for i, l := range links {
		c := s.CreateCell(i, 0)
		c.SetText(l.Address)
		require.NoError(t, c.SetHyperlink(l))
	}

	f := encode(t, wb)
	for i, l := range links {
		ok, target, err := f.GetCellHyperLink("Links", models.CellName(i, 0))
		require.NoError(t, err)
		assert.True(t, ok, l.Address)
		assert.Equal(t, l.Address, target)
	}
}

func TestPrintSettings(t *testing.T) {
	wb := models.NewWorkbook()
	s, _ := wb.CreateSheet("My Sheet")
	require.NoError(t, wb.SetPrintArea(0, "A1:C2"))
	rows := models.MustParseRange("1:2")
	require.NoError(t, s.SetRepeatingRows(&rows))
	require.NoError(t, s.SetPrintSetup(models.PrintSetup{FitWidth: 1, FitHeight: 2, FitToPage: true, Landscape: true}))
	require.NoError(t, s.SetFooter(models.HeaderFooter{Center: "Page " + models.HeaderPage()}))

	f := encode(t, wb)
	names := map[string]excelize.DefinedName{}
	for _, n := range f.GetDefinedName() {
		names[n.Name] = n
	}
	require.Contains(t, names, "_xlnm.Print_Area")
	assert.Equal(t, "'My Sheet'!$A$1:$C$2", names["_xlnm.Print_Area"].RefersTo)
	assert.Equal(t, "My Sheet", names["_xlnm.Print_Area"].Scope)
	require.Contains(t, names, "_xlnm.Print_Titles")
	assert.Equal(t, "'My Sheet'!$1:$2", names["_xlnm.Print_Titles"].RefersTo)

	layout, err := f.GetPageLayout("My Sheet")
	require.NoError(t, err)
	require.NotNil(t, layout.Orientation)
	assert.Equal(t, "landscape", *layout.Orientation)
	require.NotNil(t, layout.FitToHeight)
	assert.Equal(t, 2, *layout.FitToHeight)

	props, err := f.GetSheetProps("My Sheet")
	require.NoError(t, err)
	require.NotNil(t, props.FitToPage)
	assert.True(t, *props.FitToPage)
}

func TestWriteSheetBeforeOpen(t *testing.T) {
	wb := models.NewWorkbook()
	s, _ := wb.CreateSheet("x")
	e := NewEncoder(nil)
	assert.Error(t, e.WriteSheet(s))
	assert.Error(t, e.Flush(&bytes.Buffer{}))
	assert.NoError(t, e.Close())
}
