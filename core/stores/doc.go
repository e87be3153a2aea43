// Package stores holds the static registry of physical stores.
//
// Each entry binds a store to its label API code, its files on the legacy
// FTP server and its report recipient. Processing order of multi-store
// jobs is the order returned by Registry.
package stores
