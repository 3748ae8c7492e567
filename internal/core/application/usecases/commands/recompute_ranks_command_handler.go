package commands

import (
	"context"
	"time"

	"picking/internal/core/domain/model/stats"
	"picking/internal/core/domain/services"
)

// RecomputeRanksCommandHandler rebuilds the standings of one period.
//
// The handler sums each operator's awarded points over the period window,
// builds the decile boundaries over the strictly-positive totals and upserts
// a rank per operator. Operators without positive points keep no rank row;
// the whole rebuild is idempotent.
type RecomputeRanksCommandHandler struct {
	uowFactory StatsUoWFactory
	calculator services.RankCalculator
}

// NewRecomputeRanksCommandHandler creates a handler for rank recomputation.
func NewRecomputeRanksCommandHandler(uowFactory StatsUoWFactory) RecomputeRanksCommandHandler {
	return RecomputeRanksCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewRankCalculator(),
	}
}

// Handle processes the rank recomputation command and reports how many
// operators were ranked and how many lacked positive points.
func (h RecomputeRanksCommandHandler) Handle(ctx context.Context, cmd RecomputeRanksCommand) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	now := time.Now().UTC()
	from := cmd.Period().Truncate(now)
	to := h.periodEnd(cmd.Period(), from)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BatchResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	statsRepo := uow.StatsRepository()

	totals, err := statsRepo.PointTotals(ctx, from, to)
	if err != nil {
		return BatchResult{}, err
	}

	values := make([]float64, 0, len(totals))
	for _, points := range totals {
		values = append(values, points)
	}
	boundaries := h.calculator.Boundaries(values)

	var result BatchResult
	for operatorID, points := range totals {
		rank := h.calculator.Rank(points, boundaries)
		if rank == 0 {
			result.Skipped++
			continue
		}

		periodRank, rankErr := stats.NewPeriodRank(operatorID, cmd.Period(), from, points, rank)
		if rankErr != nil {
			result.Errored++
			continue
		}
		if rankErr = statsRepo.UpsertRank(ctx, periodRank); rankErr != nil {
			return result, rankErr
		}
		result.Updated++
	}

	if err = uow.Commit(ctx); err != nil {
		return result, err
	}
	return result, nil
}

func (h RecomputeRanksCommandHandler) periodEnd(period stats.Period, start time.Time) time.Time {
	if period == stats.PeriodMonth {
		return start.AddDate(0, 1, 0)
	}
	return start.AddDate(0, 0, 1)
}
