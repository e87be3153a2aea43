// Package mailer delivers report emails.
//
// Every report is a dual-part message (plain text plus a styled HTML
// alternative) with at most one file attachment, sent to one recipient per
// send over authenticated SMTP with opportunistic STARTTLS upgrade.
// Rejected credentials are surfaced as authentication failures and are not
// retried.
package mailer
