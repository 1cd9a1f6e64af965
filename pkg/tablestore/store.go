// Package tablestore maps rectangular tables (a header row plus data rows)
// to keyed records. The production implementation keeps the tables as sheets
// of a single xlsx workbook; Memory mirrors the same contract for tests.
package tablestore

import (
	"errors"
	"fmt"
)

// Record maps column names from the header row to cell values.
type Record map[string]string

// ErrRowNotFound is returned when no data row satisfies a predicate.
var ErrRowNotFound = errors.New("row not found")

// ColumnNotFoundError reports an update against a column the table's header
// does not declare.
type ColumnNotFoundError struct {
	Table  string
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in table %q", e.Column, e.Table)
}

// Store is the generic adapter between tables and records. Row positions are
// zero-based over data rows; the header row is not addressable. A table that
// does not exist yet is created with the canonical header for its kind before
// first use. Column order from the header row is authoritative.
type Store interface {
	// ReadAll returns every data row as a record. A table holding only its
	// header yields an empty slice.
	ReadAll(table string) ([]Record, error)

	// Header returns the table's column names in authoritative order.
	Header(table string) ([]string, error)

	// FindRowIndex returns the position of the first data row matching the
	// predicate, or ErrRowNotFound.
	FindRowIndex(table string, match func(Record) bool) (int, error)

	// UpdateCells overwrites the named cells of one data row. An unknown
	// column name yields a *ColumnNotFoundError and no write.
	UpdateCells(table string, row int, values map[string]string) error

	// AppendRow appends one data row with cells in header order.
	AppendRow(table string, values []string) error
}
