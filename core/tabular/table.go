package tabular

import (
	"sort"

	"store-sync/core/faults"
)

// Row is a single record keyed by column name.
type Row map[string]any

// Table is an in-memory tabular data set with a fixed, ordered header.
//
// Once the header is set (explicitly via New, or inferred from the first
// row added or loaded), every row must carry exactly that key set. Rows
// violating the invariant are rejected, never coerced.
type Table struct {
	headers []string
	rows    []Row
}

// New creates a table with an explicit header order.
// A nil or empty header list defers header inference to the first row.
func New(headers []string) *Table {
	return &Table{headers: append([]string(nil), headers...)}
}

// Headers returns the header names in maintained order.
func (t *Table) Headers() []string {
	return append([]string(nil), t.headers...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the rows in insertion order. The slice is shared; callers
// mutating rows must go through UpdateRow to keep the invariant checked.
func (t *Table) Rows() []Row {
	return t.rows
}

// AddRow appends a row. If no header is fixed yet, the row's keys fix it.
// Returns a validation failure when the row's key set does not equal the
// header set; the table is never partially modified.
func (t *Table) AddRow(row Row) error {
	if len(t.headers) == 0 {
		// Map iteration order is not stable, so inferred headers are
		// sorted to keep the fixed order deterministic.
		for key := range row {
			t.headers = append(t.headers, key)
		}
		sort.Strings(t.headers)
	} else if err := t.checkShape(row); err != nil {
		return err
	}
	t.rows = append(t.rows, row)
	return nil
}

// AddRows appends rows in order, stopping at the first invalid one.
func (t *Table) AddRows(rows []Row) error {
	for _, row := range rows {
		if err := t.AddRow(row); err != nil {
			return err
		}
	}
	return nil
}

// Row returns the row at index.
func (t *Table) Row(index int) (Row, error) {
	if index < 0 || index >= len(t.rows) {
		return nil, faults.OutOfRange("row %d of %d", index, len(t.rows))
	}
	return t.rows[index], nil
}

// UpdateRow replaces the row at index, enforcing the header invariant.
func (t *Table) UpdateRow(index int, row Row) error {
	if index < 0 || index >= len(t.rows) {
		return faults.OutOfRange("row %d of %d", index, len(t.rows))
	}
	if err := t.checkShape(row); err != nil {
		return err
	}
	t.rows[index] = row
	return nil
}

// DeleteRow removes the row at index.
func (t *Table) DeleteRow(index int) error {
	if index < 0 || index >= len(t.rows) {
		return faults.OutOfRange("row %d of %d", index, len(t.rows))
	}
	t.rows = append(t.rows[:index], t.rows[index+1:]...)
	return nil
}

// Column returns every value of the named column in row order.
func (t *Table) Column(name string) ([]any, error) {
	if !t.hasHeader(name) {
		return nil, faults.NotFound("column %q", name)
	}
	values := make([]any, 0, len(t.rows))
	for _, row := range t.rows {
		values = append(values, row[name])
	}
	return values, nil
}

// AddColumn appends a column, backfilling existing rows with defaultValue.
// Adding a column that already exists is a no-op.
func (t *Table) AddColumn(name string, defaultValue any) {
	if t.hasHeader(name) {
		return
	}
	t.headers = append(t.headers, name)
	for _, row := range t.rows {
		row[name] = defaultValue
	}
}

// RemoveColumn drops a column and its values from every row.
func (t *Table) RemoveColumn(name string) error {
	idx := -1
	for i, h := range t.headers {
		if h == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return faults.NotFound("column %q", name)
	}
	t.headers = append(t.headers[:idx], t.headers[idx+1:]...)
	for _, row := range t.rows {
		delete(row, name)
	}
	return nil
}

func (t *Table) hasHeader(name string) bool {
	for _, h := range t.headers {
		if h == name {
			return true
		}
	}
	return false
}

// checkShape verifies the row's key set equals the header set exactly.
func (t *Table) checkShape(row Row) error {
	if len(row) != len(t.headers) {
		return faults.Validation("row has %d fields, header has %d", len(row), len(t.headers))
	}
	for _, h := range t.headers {
		if _, ok := row[h]; !ok {
			return faults.Validation("row is missing column %q", h)
		}
	}
	return nil
}
