package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is a named unit of scheduled work.
type Job struct {
	// Name identifies the job in logs.
	Name string
	// Spec is the cron expression (standard five-field syntax).
	Spec string
	// Run performs the work. The context is the scheduler's root context.
	Run func(ctx context.Context) error
}

// Scheduler wraps a cron runner with logging and panic recovery.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a scheduler. Jobs are evaluated in the local timezone,
// matching the store opening hours the schedules are written against.
func New(logger *zap.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Register adds a job to the schedule.
func (s *Scheduler) Register(job Job) error {
	_, err := s.cron.AddFunc(job.Spec, func() {
		start := time.Now()
		l := s.logger.With(zap.String("job", job.Name))
		l.Info("Scheduled job started")
		if err := job.Run(s.ctx); err != nil {
			l.Error("Scheduled job failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
			return
		}
		l.Info("Scheduled job finished", zap.Duration("elapsed", time.Since(start)))
	})
	return err
}

// Start launches the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop cancels running jobs and waits for the runner to drain.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler stopped")
}
