package transform

import (
	"math"

	"store-sync/core/tabular"
)

// RemapKeys produces, for each input row, a row containing only the fields
// named in mapping, renamed to their mapped key. Fields absent from the
// mapping are dropped; output cardinality equals input cardinality.
func RemapKeys(rows []tabular.Row, mapping map[string]string) []tabular.Row {
	out := make([]tabular.Row, 0, len(rows))
	for _, row := range rows {
		mapped := make(tabular.Row, len(mapping))
		for from, to := range mapping {
			if value, ok := row[from]; ok {
				mapped[to] = value
			}
		}
		out = append(out, mapped)
	}
	return out
}

// MergeSecondary joins secondary onto primary by joinKey. For every primary
// row with a match, all secondary fields except the join key overwrite or
// extend the row. Unmatched primary rows pass through unchanged,
// field-for-field.
func MergeSecondary(primary, secondary []tabular.Row, joinKey string) []tabular.Row {
	lookup := make(map[any]tabular.Row, len(secondary))
	for _, row := range secondary {
		if key, ok := row[joinKey]; ok {
			lookup[key] = row
		}
	}

	out := make([]tabular.Row, 0, len(primary))
	for _, row := range primary {
		merged := make(tabular.Row, len(row))
		for k, v := range row {
			merged[k] = v
		}
		if match, ok := lookup[row[joinKey]]; ok {
			for k, v := range match {
				if k != joinKey {
					merged[k] = v
				}
			}
		}
		out = append(out, merged)
	}
	return out
}

// CleanMissing replaces nil and not-a-number values with 0 in place and
// returns the rows. It runs after merging, so downstream consumers never
// observe null numeric fields.
func CleanMissing(rows []tabular.Row) []tabular.Row {
	for _, row := range rows {
		for key, value := range row {
			if isMissing(value) {
				row[key] = 0
			}
		}
	}
	return rows
}

func isMissing(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	default:
		return false
	}
}
