package tablestore

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/360EntSecGroup-Skylar/excelize"
)

// Workbook is a Store backed by a single xlsx file, one sheet per table.
// Every operation reopens the file and saves it back, so no state survives
// between requests; the authoritative data always lives in the workbook.
// The mutex only keeps concurrent saves from corrupting the file — it does
// not serialize read-then-write sequences spanning several calls.
type Workbook struct {
	mu      sync.Mutex
	path    string
	headers map[string][]string
}

// NewWorkbook returns a Store over the xlsx file at path. headers supplies
// the canonical header row per table kind, used when a sheet is created.
func NewWorkbook(path string, headers map[string][]string) *Workbook {
	return &Workbook{path: path, headers: headers}
}

// Init creates the workbook and all named tables with their headers.
func (w *Workbook) Init(tables []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.open()
	if err != nil {
		return err
	}
	for _, table := range tables {
		w.ensureSheet(f, table)
	}
	return w.save(f)
}

func (w *Workbook) ReadAll(table string) ([]Record, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.open()
	if err != nil {
		return nil, err
	}
	if w.ensureSheet(f, table) {
		if err := w.save(f); err != nil {
			return nil, err
		}
	}
	return readRecords(f, table), nil
}

func (w *Workbook) Header(table string) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.open()
	if err != nil {
		return nil, err
	}
	if w.ensureSheet(f, table) {
		if err := w.save(f); err != nil {
			return nil, err
		}
	}
	rows := f.GetRows(table)
	if len(rows) == 0 {
		return nil, nil
	}
	header := make([]string, len(rows[0]))
	copy(header, rows[0])
	return header, nil
}

func (w *Workbook) FindRowIndex(table string, match func(Record) bool) (int, error) {
	records, err := w.ReadAll(table)
	if err != nil {
		return 0, err
	}
	for i, rec := range records {
		if match(rec) {
			return i, nil
		}
	}
	return 0, ErrRowNotFound
}

func (w *Workbook) UpdateCells(table string, row int, values map[string]string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.open()
	if err != nil {
		return err
	}
	w.ensureSheet(f, table)

	rows := f.GetRows(table)
	if len(rows) == 0 {
		return fmt.Errorf("table %q has no header", table)
	}
	header := rows[0]
	if row < 0 || row >= len(rows)-1 {
		return ErrRowNotFound
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[name] = i
	}
	for column := range values {
		if _, ok := colIndex[column]; !ok {
			return &ColumnNotFoundError{Table: table, Column: column}
		}
	}

	// +2: one for the header row, one for xlsx 1-based rows.
	sheetRow := row + 2
	for column, value := range values {
		axis := excelize.ToAlphaString(colIndex[column]) + strconv.Itoa(sheetRow)
		f.SetCellValue(table, axis, value)
	}
	return w.save(f)
}

func (w *Workbook) AppendRow(table string, values []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.open()
	if err != nil {
		return err
	}
	w.ensureSheet(f, table)

	next := len(f.GetRows(table)) + 1
	for i, value := range values {
		axis := excelize.ToAlphaString(i) + strconv.Itoa(next)
		f.SetCellValue(table, axis, value)
	}
	return w.save(f)
}

func (w *Workbook) open() (*excelize.File, error) {
	if _, err := os.Stat(w.path); os.IsNotExist(err) {
		if dir := filepath.Dir(w.path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create workbook dir: %w", err)
			}
		}
		return excelize.NewFile(), nil
	}
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", w.path, err)
	}
	return f, nil
}

// ensureSheet creates the sheet with its canonical header when missing and
// reports whether anything changed.
func (w *Workbook) ensureSheet(f *excelize.File, table string) bool {
	if f.GetSheetIndex(table) != 0 {
		return false
	}
	f.NewSheet(table)
	if header, ok := w.headers[table]; ok {
		for i, name := range header {
			f.SetCellValue(table, excelize.ToAlphaString(i)+"1", name)
		}
	}
	return true
}

func (w *Workbook) save(f *excelize.File) error {
	// The default sheet of a fresh file is dead weight once real tables exist.
	if f.GetSheetIndex("Sheet1") != 0 && len(f.GetSheetMap()) > 1 {
		f.DeleteSheet("Sheet1")
	}
	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("save workbook %s: %w", w.path, err)
	}
	return nil
}

func readRecords(f *excelize.File, table string) []Record {
	rows := f.GetRows(table)
	if len(rows) < 2 {
		return []Record{}
	}
	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}
