package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// SessionSweeper drops expired sessions and reports how many were removed.
type SessionSweeper interface {
	Sweep(ctx context.Context) int
}

// SessionSweepJob evicts expired wizard sessions from the in-process store.
// Redis expires keys on its own, so the job is only scheduled for the memory store.
type SessionSweepJob struct {
	sweeper  SessionSweeper
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewSessionSweepJob(sweeper SessionSweeper, schedule string, logger *slog.Logger) *SessionSweepJob {
	return &SessionSweepJob{
		sweeper:  sweeper,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_sweep_job"),
	}
}

func (j *SessionSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweep job started", "schedule", j.schedule)
	return nil
}

func (j *SessionSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session sweep job stopped")
}

func (j *SessionSweepJob) run() {
	ctx := context.Background()
	if n := j.sweeper.Sweep(ctx); n > 0 {
		j.logger.DebugContext(ctx, "Expired sessions removed", "count", n)
	}
}
