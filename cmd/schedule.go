package cmd

import (
	"context"
	"log"

	"store-sync/core/scheduler"
)

// newScheduler registers every recurring job on its production schedule.
// Times are local to the stores: label pushes after closing, reconciliation
// overnight, quantity refreshes and backups during opening hours.
func newScheduler(application *app) *scheduler.Scheduler {
	sched := scheduler.New(application.logger)

	jobs := []scheduler.Job{
		{
			Name: "price-labels",
			Spec: "0 20 * * *",
			Run: func(ctx context.Context) error {
				return application.labels.Service().Run(ctx, true)
			},
		},
		{
			Name: "resolve-unknown",
			Spec: "0 21 * * *",
			Run: func(ctx context.Context) error {
				return application.locations.Service().RunResolve(ctx)
			},
		},
		{
			Name: "reconcile",
			Spec: "20 1 * * *",
			Run: func(ctx context.Context) error {
				return application.reconcile.Service().Run(ctx)
			},
		},
		{
			Name: "qty-labels",
			Spec: "*/30 7-19 * * *",
			Run: func(ctx context.Context) error {
				return application.labels.Service().Run(ctx, false)
			},
		},
		{
			Name: "export-locations",
			Spec: "*/15 7-19 * * *",
			Run: func(ctx context.Context) error {
				return application.locations.Service().RunExport(ctx)
			},
		},
	}

	for _, job := range jobs {
		if err := sched.Register(job); err != nil {
			// A bad spec is a programming error, not a runtime condition.
			log.Fatalf("Invalid schedule for %s: %v", job.Name, err)
		}
	}
	return sched
}
