// Package transfer provides the file-transfer clients the jobs use to talk
// to the legacy inventory system and the backup NAS.
//
// Plain FTP retrieves label and snapshot exports; SFTP uploads location
// backups, creating the remote directory tree as a precondition. Both
// clients are opened for one unit of work and closed by the caller in a
// defer, even on error paths.
//
// "Server busy" conditions from the FTP side are classified as transient
// (see the faults package) so the caller's backoff loop retries them;
// rejected credentials are authentication failures and abort immediately.
package transfer
