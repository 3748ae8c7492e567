package jobs

import (
	"context"
	"log/slog"

	"picking/internal/core/application/usecases/commands"
	"picking/internal/core/domain/model/stats"

	"github.com/robfig/cron/v3"
)

// RankRecalculationJob refreshes the decile leaderboard. Ranks drift as
// operators keep earning points during a period, so both the daily and the
// monthly standings are rebuilt once an hour.
type RankRecalculationJob struct {
	handler commands.RecomputeRanksCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRankRecalculationJob creates a job that recomputes period ranks hourly.
func NewRankRecalculationJob(
	handler commands.RecomputeRanksCommandHandler,
	logger *slog.Logger,
) *RankRecalculationJob {
	return &RankRecalculationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "rank_recalculation_job"),
	}
}

// Start begins the rank recalculation job to run at the top of every hour.
func (j *RankRecalculationJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		for _, period := range []stats.Period{stats.PeriodDay, stats.PeriodMonth} {
			j.recompute(ctx, period)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rank recalculation job started (running hourly)")
	return nil
}

func (j *RankRecalculationJob) recompute(ctx context.Context, period stats.Period) {
	cmd, err := commands.NewRecomputeRanksCommand(period)
	if err != nil {
		j.logger.ErrorContext(ctx, "Rank command construction failed", "period", period.String(), "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Rank recalculation failed", "period", period.String(), "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Ranks recomputed",
		"period", period.String(),
		"updated", result.Updated,
		"skipped", result.Skipped,
		"errored", result.Errored,
	)
}

// Stop stops the rank recalculation job.
func (j *RankRecalculationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rank recalculation job stopped")
}
