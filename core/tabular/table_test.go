package tabular

import (
	"errors"
	"testing"

	"store-sync/core/faults"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRow_HeaderInvariant(t *testing.T) {
	tbl := New([]string{"Part Number", "Quantity on Hand"})

	err := tbl.AddRow(Row{"Part Number": "A1 100", "Quantity on Hand": "5"})
	assert.NoError(t, err)

	t.Run("missing column", func(t *testing.T) {
		err := tbl.AddRow(Row{"Part Number": "A1 200"})
		assert.True(t, errors.Is(err, faults.ErrValidation))
		assert.Equal(t, 1, tbl.Len(), "failed add must not partially append")
	})

	t.Run("extra column", func(t *testing.T) {
		err := tbl.AddRow(Row{"Part Number": "A1 200", "Quantity on Hand": "1", "Extra": "x"})
		assert.True(t, errors.Is(err, faults.ErrValidation))
	})

	t.Run("renamed column", func(t *testing.T) {
		err := tbl.AddRow(Row{"Part Number": "A1 200", "Qty": "1"})
		assert.True(t, errors.Is(err, faults.ErrValidation))
	})
}

func TestAddRow_InfersHeaderFromFirstRow(t *testing.T) {
	tbl := New(nil)
	require.NoError(t, tbl.AddRow(Row{"b": "2", "a": "1"}))

	// Inferred headers are sorted for determinism.
	assert.Equal(t, []string{"a", "b"}, tbl.Headers())

	// Subsequent rows are held to the inferred header.
	err := tbl.AddRow(Row{"a": "1", "c": "3"})
	assert.True(t, errors.Is(err, faults.ErrValidation))
}

func TestRowAccess_OutOfRange(t *testing.T) {
	tbl := New([]string{"a"})
	require.NoError(t, tbl.AddRow(Row{"a": "1"}))

	_, err := tbl.Row(1)
	assert.True(t, errors.Is(err, faults.ErrOutOfRange))

	assert.True(t, errors.Is(tbl.UpdateRow(-1, Row{"a": "x"}), faults.ErrOutOfRange))
	assert.True(t, errors.Is(tbl.DeleteRow(5), faults.ErrOutOfRange))

	row, err := tbl.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "1", row["a"])
}

func TestUpdateAndDeleteRow(t *testing.T) {
	tbl := New([]string{"a"})
	require.NoError(t, tbl.AddRows([]Row{{"a": "1"}, {"a": "2"}, {"a": "3"}}))

	require.NoError(t, tbl.UpdateRow(1, Row{"a": "two"}))
	row, _ := tbl.Row(1)
	assert.Equal(t, "two", row["a"])

	require.NoError(t, tbl.DeleteRow(0))
	assert.Equal(t, 2, tbl.Len())
	row, _ = tbl.Row(0)
	assert.Equal(t, "two", row["a"])
}

func TestColumn(t *testing.T) {
	tbl := New([]string{"name", "qty"})
	require.NoError(t, tbl.AddRows([]Row{
		{"name": "bolt", "qty": 3},
		{"name": "nut", "qty": 7},
	}))

	values, err := tbl.Column("qty")
	require.NoError(t, err)
	assert.Equal(t, []any{3, 7}, values)

	_, err = tbl.Column("price")
	assert.True(t, errors.Is(err, faults.ErrNotFound))
}

func TestAddColumn_IdempotentBackfill(t *testing.T) {
	tbl := New([]string{"name"})
	require.NoError(t, tbl.AddRow(Row{"name": "bolt"}))

	tbl.AddColumn("qty", 0)
	row, _ := tbl.Row(0)
	assert.Equal(t, 0, row["qty"])

	// Second add with the same name is a no-op.
	tbl.AddColumn("qty", 99)
	row, _ = tbl.Row(0)
	assert.Equal(t, 0, row["qty"])
	assert.Equal(t, []string{"name", "qty"}, tbl.Headers())

	// New rows must now carry the column.
	err := tbl.AddRow(Row{"name": "nut"})
	assert.True(t, errors.Is(err, faults.ErrValidation))
	assert.NoError(t, tbl.AddRow(Row{"name": "nut", "qty": 5}))
}

func TestRemoveColumn(t *testing.T) {
	tbl := New([]string{"name", "qty"})
	require.NoError(t, tbl.AddRow(Row{"name": "bolt", "qty": 3}))

	require.NoError(t, tbl.RemoveColumn("qty"))
	assert.Equal(t, []string{"name"}, tbl.Headers())
	row, _ := tbl.Row(0)
	_, ok := row["qty"]
	assert.False(t, ok)

	assert.True(t, errors.Is(tbl.RemoveColumn("qty"), faults.ErrNotFound))
}
