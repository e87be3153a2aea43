package transform

import (
	"math"
	"testing"

	"store-sync/core/tabular"

	"github.com/stretchr/testify/assert"
)

func TestRemapKeys(t *testing.T) {
	mapping := map[string]string{
		"Part Number":      "pi",
		"Part Description": "pn",
		"Value":            "kc",
		"UPC Code":         "pc",
	}

	rows := []tabular.Row{
		{"Part Number": "A1 100", "Part Description": "washer", "Value": 3, "UPC Code": "123", "Noise": "x"},
		{"Part Number": "B2 200", "Value": 1, "UPC Code": "456"},
	}

	out := RemapKeys(rows, mapping)

	assert.Len(t, out, len(rows), "cardinality must be preserved")
	assert.Equal(t, tabular.Row{"pi": "A1 100", "pn": "washer", "kc": 3, "pc": "123"}, out[0])

	// Fields absent from the mapping never appear in the output.
	for _, row := range out {
		for key := range row {
			assert.Contains(t, []string{"pi", "pn", "kc", "pc"}, key)
		}
	}

	// A row missing a mapped source field simply lacks the target key.
	_, ok := out[1]["pn"]
	assert.False(t, ok)
}

func TestMergeSecondary(t *testing.T) {
	primary := []tabular.Row{
		{"Part Number": "A1 100", "Value": 3},
		{"Part Number": "B2 200", "Value": 1},
	}
	secondary := []tabular.Row{
		{"Part Number": "A1 100", "Price": 9.99},
	}

	out := MergeSecondary(primary, secondary, "Part Number")

	assert.Equal(t, tabular.Row{"Part Number": "A1 100", "Value": 3, "Price": 9.99}, out[0])
	// Unmatched rows pass through unchanged, field-for-field.
	assert.Equal(t, primary[1], out[1])
	// No price key is invented for unmatched rows.
	_, ok := out[1]["Price"]
	assert.False(t, ok)
}

func TestMergeSecondary_JoinKeyNeverOverwritten(t *testing.T) {
	primary := []tabular.Row{{"id": "x", "qty": 1}}
	secondary := []tabular.Row{{"id": "x", "qty": 2, "price": 5}}

	out := MergeSecondary(primary, secondary, "id")

	assert.Equal(t, "x", out[0]["id"])
	assert.Equal(t, 2, out[0]["qty"], "non-join fields are overwritten")
	assert.Equal(t, 5, out[0]["price"])
}

func TestCleanMissing(t *testing.T) {
	rows := []tabular.Row{
		{"a": nil, "b": math.NaN(), "c": "keep", "d": 4},
	}

	out := CleanMissing(rows)

	assert.Equal(t, 0, out[0]["a"])
	assert.Equal(t, 0, out[0]["b"])
	assert.Equal(t, "keep", out[0]["c"])
	assert.Equal(t, 4, out[0]["d"])
}
