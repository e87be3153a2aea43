package labels

import (
	"testing"

	"store-sync/core/tabular"

	"github.com/stretchr/testify/assert"
)

func makeRows(n int) []tabular.Row {
	rows := make([]tabular.Row, n)
	for i := range rows {
		rows[i] = tabular.Row{"Part Number": i}
	}
	return rows
}

func TestPartition(t *testing.T) {
	batches := Partition(makeRows(2500), 1000)
	assert.Len(t, batches, 3)
	assert.Len(t, batches[0], 1000)
	assert.Len(t, batches[1], 1000)
	assert.Len(t, batches[2], 500)
}

func TestPartition_ExactMultiple(t *testing.T) {
	batches := Partition(makeRows(2000), 1000)
	assert.Len(t, batches, 2)
	assert.Len(t, batches[1], 1000)
}

func TestPartition_Empty(t *testing.T) {
	assert.Nil(t, Partition(nil, 1000))
}

func TestPartition_NonPositiveSize(t *testing.T) {
	batches := Partition(makeRows(5), 0)
	assert.Len(t, batches, 1)
	assert.Len(t, batches[0], 5)
}

func TestPartition_PreservesOrder(t *testing.T) {
	batches := Partition(makeRows(3), 2)
	assert.Equal(t, 0, batches[0][0]["Part Number"])
	assert.Equal(t, 1, batches[0][1]["Part Number"])
	assert.Equal(t, 2, batches[1][0]["Part Number"])
}
