// Package reconcile compares database inventory against the legacy
// snapshot exports and reports discrepancies per store.
//
// The database is authoritative: for every store it counts non-archived,
// resolved location rows per item name, downloads the picker snapshot CSV
// from the legacy server, and diffs the two over the union of item codes.
// Non-empty diffs become a CSV report mailed to the store contact and
// optionally archived to object storage. A store with no discrepancies is
// skipped silently.
package reconcile
