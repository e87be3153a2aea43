package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"store-sync/core/faults"
)

// utf8BOM is prepended on save so spreadsheet applications detect UTF-8.
// It is stripped on load and never stored in the header.
const utf8BOM = "\xef\xbb\xbf"

// Load reads a comma-delimited file into a table. The first record becomes
// the header, captured verbatim; remaining records become rows in file
// order. A missing file yields a not-found failure.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, faults.NotFound("file %q", path)
		}
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	if len(records) == 0 {
		return New(nil), nil
	}

	headers := records[0]
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], utf8BOM)
	}

	t := New(headers)
	for _, record := range records[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

// Save writes the table to path: byte-order marker, header row in the
// maintained order, then every row. Fields are minimally quoted by the
// csv writer.
func (t *Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(utf8BOM); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(t.headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	record := make([]string, len(t.headers))
	for _, row := range t.rows {
		for i, h := range t.headers {
			record[i] = FormatValue(row[h])
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// FormatValue renders a cell value for delimited output using explicit
// type switching, so numeric cells don't pick up float formatting noise.
func FormatValue(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "1"
		}
		return "0"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
