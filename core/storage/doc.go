// Package storage provides the S3-compatible report archive.
//
// Discrepancy and unknown-location reports are emailed and then deleted
// locally; when the archive is enabled, a copy is uploaded to a MinIO
// bucket first so history survives the cleanup. The Client interface is
// deliberately small to keep it mockable in tests.
package storage
