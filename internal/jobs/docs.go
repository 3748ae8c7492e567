// Package jobs provides scheduled background tasks for the picking service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path cannot cover.
//
// # Available Jobs
//
// 1. GapMetricsJob - Runs every five minutes to recompute gap time for recently completed tasks
// 2. RankRecalculationJob - Runs hourly to rebuild the daily and monthly decile standings
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(gapMetricsHandler, rowLimit, ranksHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Gap metrics need revisiting because an operator's gap is defined by the
// start of their next task; it is unknowable at completion time. Ranks drift
// as points accrue during an open period, so standings are rebuilt hourly.
//
// # Error Handling
//
// - Per-record failures inside a run are counted in the BatchResult and logged as a summary
// - A run-level failure is logged and the next scheduled run proceeds normally
// - Failed job starts will stop any already running jobs
package jobs
