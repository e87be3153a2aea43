package reconcile

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"store-sync/core/tabular"

	"go.uber.org/zap"
)

// Comparison is one inventory discrepancy for a store. It lives only for
// the duration of a run; nothing persists it.
type Comparison struct {
	StoreID    int
	ItemName   string
	DBCount    int
	CSVCount   int
	Difference int
}

// Diff compares authoritative and snapshot counts over the union of item
// codes. Only nonzero differences are kept, sorted ascending so the
// largest shortages come first.
func Diff(storeID int, db, snapshot map[string]int) []Comparison {
	items := make(map[string]struct{}, len(db)+len(snapshot))
	for name := range db {
		items[name] = struct{}{}
	}
	for name := range snapshot {
		items[name] = struct{}{}
	}

	var comparisons []Comparison
	for name := range items {
		dbCount := db[name]
		csvCount := snapshot[name]
		if diff := csvCount - dbCount; diff != 0 {
			comparisons = append(comparisons, Comparison{
				StoreID:    storeID,
				ItemName:   name,
				DBCount:    dbCount,
				CSVCount:   csvCount,
				Difference: diff,
			})
		}
	}

	sort.Slice(comparisons, func(i, j int) bool {
		if comparisons[i].Difference != comparisons[j].Difference {
			return comparisons[i].Difference < comparisons[j].Difference
		}
		return comparisons[i].ItemName < comparisons[j].ItemName
	})
	return comparisons
}

// SnapshotQuantities aggregates a picker snapshot into counts per
// normalized part code. Dashes are stripped from part codes, rows without
// a code are skipped and quantities across duplicate rows are summed.
func SnapshotQuantities(rows []tabular.Row, logger *zap.Logger) map[string]int {
	quantities := make(map[string]int, len(rows))
	for _, row := range rows {
		part := strings.ReplaceAll(strings.TrimSpace(fmt.Sprintf("%v", row["Part Number"])), "-", "")
		if part == "" {
			continue
		}
		var qty int
		if raw, ok := row["Quantity on Hand"]; ok && raw != nil {
			qty = parseQuantity(fmt.Sprintf("%v", raw), part, logger)
		}
		quantities[part] += qty
	}
	return quantities
}

// parseQuantity coerces a snapshot quantity cell to an integer count.
// Thousands separators are tolerated; anything unparsable counts as zero
// with a warning instead of failing the row.
func parseQuantity(raw, part string, logger *zap.Logger) int {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		logger.Warn("Invalid quantity value",
			zap.String("part", part),
			zap.String("value", raw))
		return 0
	}
	return int(parsed)
}
