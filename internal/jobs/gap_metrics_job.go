package jobs

import (
	"context"
	"log/slog"

	"picking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// GapMetricsJob periodically recomputes inter-task gap metrics for recently
// completed tasks. Gap time only becomes known once the operator's next task
// completes, so completed records are revisited on a schedule.
type GapMetricsJob struct {
	handler  commands.RecomputeGapMetricsCommandHandler
	rowLimit int
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewGapMetricsJob creates a job that recomputes gap metrics every five
// minutes for at most rowLimit completed tasks per run.
func NewGapMetricsJob(
	handler commands.RecomputeGapMetricsCommandHandler,
	rowLimit int,
	logger *slog.Logger,
) *GapMetricsJob {
	return &GapMetricsJob{
		handler:  handler,
		rowLimit: rowLimit,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "gap_metrics_job"),
	}
}

// Start begins the gap metrics job to run every five minutes.
func (j *GapMetricsJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewRecomputeGapMetricsCommand(j.rowLimit)
		if err != nil {
			j.logger.ErrorContext(ctx, "Gap metrics command construction failed", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Gap metrics job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Gap metrics recomputed",
			"updated", result.Updated,
			"skipped", result.Skipped,
			"errored", result.Errored,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Gap metrics job started (running every five minutes)")
	return nil
}

// Stop stops the gap metrics job.
func (j *GapMetricsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Gap metrics job stopped")
}
