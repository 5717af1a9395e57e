package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, log bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&log)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDemoThenInspect(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "demo", "--out", dir, "--only", "hyperlinks,cells"); err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	for _, name := range []string{"hyperlinks.xlsx", "cells.xls"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s: %v", name, err)
		}
	}

	jsonPath := filepath.Join(dir, "out.json")
	if _, err := execute(t, "inspect", filepath.Join(dir, "hyperlinks.xlsx"), "-o", jsonPath); err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	var got struct {
		BookName string `json:"book_name"`
		Sheets   []struct {
			Name string `json:"name"`
		} `json:"sheets"`
	}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if got.BookName != "hyperlinks.xlsx" {
		t.Errorf("Expected book name hyperlinks.xlsx, got %q", got.BookName)
	}
	if len(got.Sheets) != 2 || got.Sheets[0].Name != "Hyperlinks" || got.Sheets[1].Name != "Target Sheet" {
		t.Errorf("Unexpected sheets %+v", got.Sheets)
	}
}

func TestDemoFormatOverride(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "demo", "--out", dir, "--only", "alignment", "--format", "xls"); err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "xssf-align.xls")); err != nil {
		t.Errorf("Expected xssf-align.xls: %v", err)
	}
}

func TestInspectSheetsDir(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "demo", "--out", dir, "--only", "xssf-workbook"); err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	sheets := filepath.Join(dir, "sheets")
	out, err := execute(t, "inspect", filepath.Join(dir, "workbook.xlsx"), "--sheets-dir", sheets)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if out != "" {
		t.Errorf("Expected no stdout output with --sheets-dir, got %q", out)
	}
	if _, err := os.Stat(filepath.Join(sheets, "Sheet1.json")); err != nil {
		t.Errorf("Expected Sheet1.json: %v", err)
	}
}

func TestErrors(t *testing.T) {
	xlsPath := filepath.Join(t.TempDir(), "book.xls")
	if err := os.WriteFile(xlsPath, []byte("not read"), 0o644); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		args []string
	}{
		{"unknown demo", []string{"demo", "--out", t.TempDir(), "--only", "nope"}},
		{"bad format", []string{"demo", "--out", t.TempDir(), "--format", "ods"}},
		{"missing file", []string{"inspect", filepath.Join(t.TempDir(), "missing.xlsx")}},
		{"xls input", []string{"inspect", xlsPath}},
	}
	for _, tt := range tests {
		if _, err := execute(t, tt.args...); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
