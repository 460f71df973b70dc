package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// RegionRefresher reloads the cached prefecture list.
type RegionRefresher interface {
	Refresh(ctx context.Context) error
}

// RegionRefreshJob keeps the cached prefecture list warm so that input
// screens do not wait on the database.
type RegionRefreshJob struct {
	refresher RegionRefresher
	schedule  string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewRegionRefreshJob creates a job running on the given six-field cron schedule.
func NewRegionRefreshJob(refresher RegionRefresher, schedule string, logger *slog.Logger) *RegionRefreshJob {
	return &RegionRefreshJob{
		refresher: refresher,
		schedule:  schedule,
		timeout:   10 * time.Second,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "region_refresh_job"),
	}
}

// Start loads the list once and then schedules the refresh.
func (j *RegionRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.run()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Region refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the region refresh job and waits for a running refresh.
func (j *RegionRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Region refresh job stopped")
}

func (j *RegionRefreshJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.refresher.Refresh(ctx); err != nil {
		// the previous list keeps being served
		j.logger.WarnContext(ctx, "Region refresh failed", "error", err)
	}
}
