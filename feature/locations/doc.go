// Package locations maintains the shelf-location data of every store.
//
// It runs two jobs. The resolver rewrites placeholder location names to
// their catalog item name by UPC, committing per code so a re-run picks up
// where an interrupted one stopped, and mails a report of the codes it
// could not resolve. The exporter dumps each store's live locations to
// CSV, uploads them to the backup NAS over SFTP and mails a copy.
package locations
