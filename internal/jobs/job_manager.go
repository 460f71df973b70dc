package jobs

import (
	"fmt"
	"log/slog"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// Schedules holds the cron expressions of the jobs. An empty expression
// disables the job.
type Schedules struct {
	RegionRefresh string
	SessionSweep  string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []namedJob
	started []namedJob
}

type namedJob struct {
	name string
	job  Job
}

// NewJobManager wires the jobs whose collaborators are present. sweeper may be
// nil when sessions live in Redis.
func NewJobManager(
	refresher RegionRefresher,
	sweeper SessionSweeper,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if refresher != nil && schedules.RegionRefresh != "" {
		jm.jobs = append(jm.jobs, namedJob{
			name: "region refresh",
			job:  NewRegionRefreshJob(refresher, schedules.RegionRefresh, logger),
		})
	}
	if sweeper != nil && schedules.SessionSweep != "" {
		jm.jobs = append(jm.jobs, namedJob{
			name: "session sweep",
			job:  NewSessionSweepJob(sweeper, schedules.SessionSweep, logger),
		})
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start; jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if err := j.job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
		jm.started = append(jm.started, j)
	}
	return nil
}

// StopAll stops all started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].job.Stop()
	}
	jm.started = nil
}

// Len returns the number of configured jobs.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}
