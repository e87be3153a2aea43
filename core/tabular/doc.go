// Package tabular provides the in-memory row/column store used as the
// interchange representation for every CSV the pipeline touches.
//
// A Table owns an ordered header and ordered rows. The central invariant:
// once the header set is fixed, every row's key set must equal it exactly.
// Violating rows are rejected with a validation failure, never silently
// coerced. Headers are fixed explicitly at construction or inferred from
// the first row, and change only through AddColumn/RemoveColumn, which
// backfill or drop values across all existing rows.
//
// # Encoding
//
// Save emits a UTF-8 byte-order marker for spreadsheet compatibility;
// Load strips one if present. Save followed by Load reproduces the same
// header order and row values.
package tabular
