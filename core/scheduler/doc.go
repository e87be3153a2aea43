// Package scheduler runs the recurring sync jobs on their cron schedules.
//
// Jobs are registered as named closures and executed by robfig/cron with
// panic recovery and per-run logging. The scheduler is started only in
// the production environment; elsewhere the jobs remain reachable through
// the manual HTTP endpoints and the one-shot CLI commands.
package scheduler
