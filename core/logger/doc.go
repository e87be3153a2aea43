// Package logger provides a structured logging facility based on Zap.
//
// Scheduled jobs have no user-visible output channel beyond their email
// reports, so the logger is the single diagnostic surface of the service:
// every job logs its progress and per-unit failures here.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Request correlation
//
// Manual triggers arrive over HTTP; WithRayID attaches the request's ray_id
// so the lines of one run can be filtered together.
package logger
