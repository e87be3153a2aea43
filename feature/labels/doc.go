// Package labels pushes shelf-label data to the electronic-shelf-label API.
//
// For every store it downloads the label CSV from the legacy inventory
// server, partitions the rows into batches and submits each batch as one
// signed payload. The price-label variant enriches each batch with unit
// costs from the pricing API before submission; the quantity variant skips
// pricing entirely.
//
// Failed batches are retried with exponential backoff and never abort the
// run; the job reports failure only after every batch had its chance.
package labels
