package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runCmd is the parent command for one-shot job execution.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a sync job once and exit",
	Long: `Runs a single sync job outside the scheduler, with the same wiring
the server uses. Useful for cron-less deployments and operator-driven
replays.`,
}

func init() {
	jobs := []struct {
		use   string
		short string
		run   func(application *app, ctx context.Context) error
	}{
		{
			use:   "price-labels",
			short: "Push price and quantity labels for every store",
			run: func(application *app, ctx context.Context) error {
				return application.labels.Service().Run(ctx, true)
			},
		},
		{
			use:   "qty-labels",
			short: "Push quantity labels for every store",
			run: func(application *app, ctx context.Context) error {
				return application.labels.Service().Run(ctx, false)
			},
		},
		{
			use:   "reconcile",
			short: "Reconcile database inventory against the snapshot exports",
			run: func(application *app, ctx context.Context) error {
				return application.reconcile.Service().Run(ctx)
			},
		},
		{
			use:   "resolve-unknown",
			short: "Resolve placeholder locations and report leftovers",
			run: func(application *app, ctx context.Context) error {
				return application.locations.Service().RunResolve(ctx)
			},
		},
		{
			use:   "export-locations",
			short: "Export store locations to the backup NAS",
			run: func(application *app, ctx context.Context) error {
				return application.locations.Service().RunExport(ctx)
			},
		},
	}

	for _, job := range jobs {
		job := job
		runCmd.AddCommand(&cobra.Command{
			Use:   job.use,
			Short: job.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				application, err := buildApp()
				if err != nil {
					return err
				}
				defer application.logger.Sync()

				application.logger.Info("Running job", zap.String("job", job.use))
				if err := job.run(application, cmd.Context()); err != nil {
					return err
				}
				application.logger.Info("Job finished", zap.String("job", job.use))
				return nil
			},
		})
	}

	RootCmd.AddCommand(runCmd)
}
