package track

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrColumnNotFound = errors.New("column not found")
	ErrNotNumeric     = errors.New("value is not numeric")
	ErrNoHeader       = errors.New("no header row")
)

// Table is a delimited file as loaded: header names plus raw cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the column with exactly this name, or -1.
func (t *Table) ColumnIndex(name string) int {
	if name == "" {
		return -1
	}
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Head returns a table holding at most the first n rows. Rows are shared.
func (t *Table) Head(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	return &Table{Columns: t.Columns, Rows: t.Rows[:n]}
}

// Float64Column parses every cell of the named column. Empty cells and
// "NaN" become NaN; anything else that does not parse is an error.
func (t *Table) Float64Column(name string) ([]float64, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("lookup column %q: %w", name, ErrColumnNotFound)
	}
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		if idx >= len(row) {
			out[i] = math.NaN()
			continue
		}
		cell := strings.TrimSpace(row[idx])
		if cell == "" {
			out[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w: %q", name, i+1, ErrNotNumeric, cell)
		}
		out[i] = v
	}
	return out, nil
}

// Track holds the three resolved columns as equal-length numeric slices.
type Track struct {
	Mapping  Mapping
	Lats     []float64
	Lons     []float64
	Headings []float64
}

// Len returns the number of samples.
func (t Track) Len() int {
	return len(t.Lats)
}

// Extract pulls the mapped columns out of a table. An empty name in the
// mapping is a lookup failure.
func Extract(t *Table, m Mapping) (Track, error) {
	var cols [3][]float64
	for _, f := range []Field{FieldLatitude, FieldLongitude, FieldHeading} {
		name := m.get(f)
		if name == "" {
			return Track{}, fmt.Errorf("lookup %s column: %w", f, ErrColumnNotFound)
		}
		v, err := t.Float64Column(name)
		if err != nil {
			return Track{}, err
		}
		cols[f] = v
	}
	return Track{
		Mapping:  m,
		Lats:     cols[FieldLatitude],
		Lons:     cols[FieldLongitude],
		Headings: cols[FieldHeading],
	}, nil
}
