package tablestore

import (
	"errors"
	"path/filepath"
	"testing"
)

func testHeaders() map[string][]string {
	return map[string][]string{
		"Pasien": {"RME", "Nama_Pasien", "No_HP"},
	}
}

func newTestWorkbook(t *testing.T) *Workbook {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "test.xlsx")
	return NewWorkbook(path, testHeaders())
}

func TestWorkbook_InitCreatesSheetWithHeader(t *testing.T) {
	wb := newTestWorkbook(t)
	if err := wb.Init([]string{"Pasien"}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	header, err := wb.Header("Pasien")
	if err != nil {
		t.Fatalf("Header() error = %v", err)
	}
	want := []string{"RME", "Nama_Pasien", "No_HP"}
	if len(header) != len(want) {
		t.Fatalf("header = %v, want %v", header, want)
	}
	for i := range want {
		if header[i] != want[i] {
			t.Errorf("header[%d] = %q, want %q", i, header[i], want[i])
		}
	}
}

func TestWorkbook_AppendAndReadAll(t *testing.T) {
	wb := newTestWorkbook(t)
	if err := wb.Init([]string{"Pasien"}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	rows := [][]string{
		{"NBLH-001", "Siti", "0812"},
		{"NBLH-002", "Budi"}, // short row, last cell empty
	}
	for _, row := range rows {
		if err := wb.AppendRow("Pasien", row); err != nil {
			t.Fatalf("AppendRow() error = %v", err)
		}
	}

	records, err := wb.ReadAll("Pasien")
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0]["RME"] != "NBLH-001" || records[0]["Nama_Pasien"] != "Siti" {
		t.Errorf("record[0] = %v", records[0])
	}
	if records[1]["No_HP"] != "" {
		t.Errorf("short row No_HP = %q, want empty pad", records[1]["No_HP"])
	}
}

func TestWorkbook_UpdateCells(t *testing.T) {
	wb := newTestWorkbook(t)
	if err := wb.Init([]string{"Pasien"}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := wb.AppendRow("Pasien", []string{"NBLH-001", "Siti", "0812"}); err != nil {
		t.Fatalf("AppendRow() error = %v", err)
	}

	err := wb.UpdateCells("Pasien", 0, map[string]string{
		"Nama_Pasien": "Siti Aminah",
		"No_HP":       "0899",
	})
	if err != nil {
		t.Fatalf("UpdateCells() error = %v", err)
	}

	records, err := wb.ReadAll("Pasien")
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if records[0]["Nama_Pasien"] != "Siti Aminah" {
		t.Errorf("Nama_Pasien = %q, want updated", records[0]["Nama_Pasien"])
	}
	if records[0]["No_HP"] != "0899" {
		t.Errorf("No_HP = %q, want updated", records[0]["No_HP"])
	}
	if records[0]["RME"] != "NBLH-001" {
		t.Errorf("RME = %q, want untouched", records[0]["RME"])
	}
}

func TestWorkbook_UpdateCells_Errors(t *testing.T) {
	wb := newTestWorkbook(t)
	if err := wb.Init([]string{"Pasien"}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := wb.AppendRow("Pasien", []string{"NBLH-001", "Siti", "0812"}); err != nil {
		t.Fatalf("AppendRow() error = %v", err)
	}

	t.Run("row out of range", func(t *testing.T) {
		err := wb.UpdateCells("Pasien", 5, map[string]string{"No_HP": "x"})
		if !errors.Is(err, ErrRowNotFound) {
			t.Errorf("error = %v, want ErrRowNotFound", err)
		}
	})

	t.Run("unknown column", func(t *testing.T) {
		err := wb.UpdateCells("Pasien", 0, map[string]string{"Warna": "biru"})
		var colErr *ColumnNotFoundError
		if !errors.As(err, &colErr) {
			t.Fatalf("error = %v, want ColumnNotFoundError", err)
		}
		if colErr.Column != "Warna" {
			t.Errorf("column = %q, want Warna", colErr.Column)
		}

		// A rejected batch must not change any listed cell.
		records, _ := wb.ReadAll("Pasien")
		if records[0]["RME"] != "NBLH-001" {
			t.Errorf("row mutated after rejected update: %v", records[0])
		}
	})
}

func TestWorkbook_FindRowIndex(t *testing.T) {
	wb := newTestWorkbook(t)
	if err := wb.Init([]string{"Pasien"}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	for _, row := range [][]string{
		{"NBLH-001", "Siti", "0812"},
		{"NBLH-002", "Budi", "0813"},
	} {
		if err := wb.AppendRow("Pasien", row); err != nil {
			t.Fatal(err)
		}
	}

	row, err := wb.FindRowIndex("Pasien", func(rec Record) bool {
		return rec["RME"] == "NBLH-002"
	})
	if err != nil {
		t.Fatalf("FindRowIndex() error = %v", err)
	}
	if row != 1 {
		t.Errorf("row = %d, want 1", row)
	}

	_, err = wb.FindRowIndex("Pasien", func(rec Record) bool { return false })
	if !errors.Is(err, ErrRowNotFound) {
		t.Errorf("no match error = %v, want ErrRowNotFound", err)
	}
}

func TestWorkbook_SheetCreatedOnFirstUse(t *testing.T) {
	// No Init call; first read materializes the sheet and its header.
	wb := newTestWorkbook(t)

	records, err := wb.ReadAll("Pasien")
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records from fresh sheet, want 0", len(records))
	}

	header, err := wb.Header("Pasien")
	if err != nil {
		t.Fatalf("Header() error = %v", err)
	}
	if len(header) != 3 || header[0] != "RME" {
		t.Errorf("header = %v, want canonical header", header)
	}
}
