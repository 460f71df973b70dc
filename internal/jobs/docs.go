// Package jobs provides scheduled background tasks for the moving estimate service.
//
// Jobs are built on github.com/robfig/cron/v3 with six-field (seconds) expressions.
//
// # Available Jobs
//
// 1. RegionRefreshJob - reloads the cached prefecture list behind the input screens
// 2. SessionSweepJob - evicts expired wizard sessions when they are kept in memory
//
// # Usage
//
//	jobManager := jobs.NewJobManager(regionCache, memoryStore, jobs.Schedules{
//		RegionRefresh: "0 */5 * * * *",
//		SessionSweep:  "*/30 * * * * *",
//	}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed region refresh is logged as a warning; the previous list keeps being served
// - Failed job starts will stop any already running jobs
package jobs
