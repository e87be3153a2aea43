package labels

import "store-sync/core/tabular"

// Partition splits rows into contiguous batches of at most size rows. The
// final batch carries the remainder. A non-positive size yields one batch.
func Partition(rows []tabular.Row, size int) [][]tabular.Row {
	if len(rows) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]tabular.Row{rows}
	}
	batches := make([][]tabular.Row, 0, (len(rows)+size-1)/size)
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		batches = append(batches, rows[start:end])
	}
	return batches
}
