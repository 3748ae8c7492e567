package jobs

import (
	"fmt"
	"log/slog"

	"picking/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	gapMetricsJob        *GapMetricsJob
	rankRecalculationJob *RankRecalculationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	gapMetricsHandler commands.RecomputeGapMetricsCommandHandler,
	gapMetricsRowLimit int,
	ranksHandler commands.RecomputeRanksCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		gapMetricsJob:        NewGapMetricsJob(gapMetricsHandler, gapMetricsRowLimit, logger),
		rankRecalculationJob: NewRankRecalculationJob(ranksHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.gapMetricsJob.Start(); err != nil {
		return fmt.Errorf("failed to start gap metrics job: %w", err)
	}

	if err := jm.rankRecalculationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.gapMetricsJob.Stop()
		return fmt.Errorf("failed to start rank recalculation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.rankRecalculationJob.Stop()
	jm.gapMetricsJob.Stop()
}
