package output

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/xiaobei-ihmhny/micro-server-poi/pkg/poi/models"
)

func buildWorkbook(t *testing.T) *models.Workbook {
	t.Helper()
	wb := models.NewWorkbook()
	s, err := wb.CreateSheet("Data")
	if err != nil {
		t.Fatalf("CreateSheet failed: %v", err)
	}
	s.CreateCell(0, 0).SetText("Header")
	s.CreateCell(0, 1).SetNumber(100)
	s.CreateCell(1, 1).SetNumber(200.5)
	s.CreateCell(1, 2).SetBool(true)
	if err := s.CreateCell(2, 0).SetDate(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)); err != nil {
		t.Fatalf("SetDate failed: %v", err)
	}
	if err := s.CreateCell(2, 1).SetError(models.ErrorNA); err != nil {
		t.Fatalf("SetError failed: %v", err)
	}
	s.CreateCell(4, 4) // blank, left out
	link := s.CreateCell(3, 0)
	link.SetText("site")
	if err := link.SetHyperlink(models.Hyperlink{Kind: models.LinkURL, Address: "https://example.com/"}); err != nil {
		t.Fatalf("SetHyperlink failed: %v", err)
	}
	if err := s.AddMergedRegion(models.MustParseRange("B4:C4")); err != nil {
		t.Fatalf("AddMergedRegion failed: %v", err)
	}
	if err := wb.SetPrintArea(0, "A1:C3"); err != nil {
		t.Fatalf("SetPrintArea failed: %v", err)
	}
	if err := s.CreateFreezePane(0, 1); err != nil {
		t.Fatalf("CreateFreezePane failed: %v", err)
	}
	return wb
}

func TestFromWorkbook(t *testing.T) {
	data := FromWorkbook(buildWorkbook(t), "book.xlsx")

	if data.BookName != "book.xlsx" || len(data.Sheets) != 1 {
		t.Fatalf("Unexpected workbook view: %+v", data)
	}
	sd := data.Sheets[0]
	if sd.Dimension != "A1:E5" {
		t.Errorf("Expected dimension A1:E5, got %q", sd.Dimension)
	}
	if len(sd.Rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(sd.Rows))
	}

	tests := []struct {
		row  int
		col  string
		want interface{}
	}{
		{0, "1", "Header"},
		{0, "2", int64(100)},
		{1, "2", 200.5},
		{1, "3", true},
		{2, "1", "2024-01-02T03:04:05"},
		{2, "2", "#N/A"},
	}
	for _, tt := range tests {
		if got := sd.Rows[tt.row].C[tt.col]; got != tt.want {
			t.Errorf("Row %d col %s: expected %v (%T), got %v (%T)", tt.row, tt.col, tt.want, tt.want, got, got)
		}
	}
	if sd.Rows[3].Links["1"] != "https://example.com/" {
		t.Errorf("Expected link on row 4, got %v", sd.Rows[3].Links)
	}
	if len(sd.MergedCells) != 1 || sd.MergedCells[0] != "B4:C4" {
		t.Errorf("Unexpected merged cells %v", sd.MergedCells)
	}
	if sd.PrintArea == nil || *sd.PrintArea != (PrintArea{R1: 1, C1: 1, R2: 3, C2: 3}) {
		t.Errorf("Unexpected print area %+v", sd.PrintArea)
	}
	if sd.Pane == nil || sd.Pane.Kind != "freeze" || sd.Pane.Row != 1 || sd.Pane.TopLeft != "A2" {
		t.Errorf("Unexpected pane %+v", sd.Pane)
	}
}

func TestPrintAreaWholeRowsAndColumns(t *testing.T) {
	tests := []struct {
		expr string
		want PrintArea
	}{
		{"4:5", PrintArea{R1: 4, C1: 1, R2: 5, C2: 16384}},
		{"B:C", PrintArea{R1: 1, C1: 2, R2: 1048576, C2: 3}},
	}
	for _, tt := range tests {
		wb := models.NewWorkbook()
		if _, err := wb.CreateSheet("Print"); err != nil {
			t.Fatalf("CreateSheet failed: %v", err)
		}
		if err := wb.SetPrintArea(0, tt.expr); err != nil {
			t.Fatalf("SetPrintArea(%q) failed: %v", tt.expr, err)
		}
		got := FromWorkbook(wb, "print.xlsx").Sheets[0].PrintArea
		if got == nil || *got != tt.want {
			t.Errorf("%s: expected print area %+v, got %+v", tt.expr, tt.want, got)
		}
	}
}

func TestToJSON(t *testing.T) {
	data := FromWorkbook(buildWorkbook(t), "book.xlsx")

	compact, err := ToJSON(data, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if strings.Contains(string(compact), "\n") {
		t.Error("Compact output should be a single line")
	}
	pretty, err := ToJSON(data, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  \"sheets\"") {
		t.Errorf("Pretty output not indented:\n%s", pretty)
	}

	var back map[string]interface{}
	if err := json.Unmarshal(compact, &back); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if back["book_name"] != "book.xlsx" {
		t.Errorf("Expected book_name, got %v", back["book_name"])
	}
}

func TestSheetToJSONOmitsEmpty(t *testing.T) {
	wb := models.NewWorkbook()
	s, _ := wb.CreateSheet("Empty")
	sd := FromSheet(s)
	b, err := SheetToJSON(&sd, false)
	if err != nil {
		t.Fatalf("SheetToJSON failed: %v", err)
	}
	if string(b) != `{"name":"Empty"}` {
		t.Errorf("Unexpected JSON %s", b)
	}
}
