// Package transform reshapes tabular rows between the legacy export format
// and the compact wire schema the label service expects.
//
// The three operations compose in a fixed order inside the batch pipeline:
// MergeSecondary (attach prices by part code), CleanMissing (null and NaN
// sentinels become zero), then RemapKeys (rename to wire keys, dropping
// everything else). Each operation is pure over its input except
// CleanMissing, which rewrites cells in place.
package transform
