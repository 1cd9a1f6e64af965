package tablestore

import (
	"sync"
)

// Memory is an in-memory Store with the same create-on-first-use and header
// semantics as Workbook. It backs the test suites.
type Memory struct {
	mu      sync.Mutex
	headers map[string][]string
	rows    map[string][][]string
}

func NewMemory(headers map[string][]string) *Memory {
	return &Memory{
		headers: headers,
		rows:    make(map[string][][]string),
	}
}

func (m *Memory) ensure(table string) {
	if _, ok := m.rows[table]; !ok {
		m.rows[table] = [][]string{}
	}
}

func (m *Memory) header(table string) []string {
	if h, ok := m.headers[table]; ok {
		return h
	}
	return nil
}

func (m *Memory) ReadAll(table string) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensure(table)
	header := m.header(table)
	records := make([]Record, 0, len(m.rows[table]))
	for _, row := range m.rows[table] {
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
	return records, nil
}

func (m *Memory) Header(table string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensure(table)
	header := m.header(table)
	out := make([]string, len(header))
	copy(out, header)
	return out, nil
}

func (m *Memory) FindRowIndex(table string, match func(Record) bool) (int, error) {
	records, err := m.ReadAll(table)
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

func (m *Memory) UpdateCells(table string, row int, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensure(table)
	header := m.header(table)
	if row < 0 || row >= len(m.rows[table]) {
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

	stored := m.rows[table][row]
	if len(stored) < len(header) {
		grown := make([]string, len(header))
		copy(grown, stored)
		stored = grown
	}
	for column, value := range values {
		stored[colIndex[column]] = value
	}
	m.rows[table][row] = stored
	return nil
}

func (m *Memory) AppendRow(table string, values []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensure(table)
	row := make([]string, len(values))
	copy(row, values)
	m.rows[table] = append(m.rows[table], row)
	return nil
}

// Dump returns the raw rows of a table, for test assertions.
func (m *Memory) Dump(table string) [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([][]string, len(m.rows[table]))
	for i, row := range m.rows[table] {
		out[i] = append([]string(nil), row...)
	}
	return out
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*Workbook)(nil)
)
