package commands

import (
	"context"
	"log/slog"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/services"
)

// RecomputeTodayEfficiencyCommandHandler re-scores the current day's
// completed tasks. Functionally the same regeneration as the gap-metric
// batch, scoped to tasks completed since UTC midnight so that manual data
// corrections made during the day propagate into the standings before the
// hourly rank rebuild picks them up.
type RecomputeTodayEfficiencyCommandHandler struct {
	uowFactory StatsUoWFactory
	recorder   statsRecorder
	logger     *slog.Logger
}

// NewRecomputeTodayEfficiencyCommandHandler creates a handler for the daily
// efficiency recomputation.
func NewRecomputeTodayEfficiencyCommandHandler(
	uowFactory StatsUoWFactory,
	calculator services.PerformanceCalculator,
	logger *slog.Logger,
) RecomputeTodayEfficiencyCommandHandler {
	return RecomputeTodayEfficiencyCommandHandler{
		uowFactory: uowFactory,
		recorder:   newStatsRecorder(calculator),
		logger:     logger.With("component", "recompute_today_efficiency"),
	}
}

// Handle processes the recomputation command.
func (h RecomputeTodayEfficiencyCommandHandler) Handle(
	ctx context.Context,
	cmd RecomputeTodayEfficiencyCommand,
) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	taskIDs, err := h.todaysTaskIDs(ctx, dayStart)
	if err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	for _, taskID := range taskIDs {
		written, taskErr := h.recomputeTask(ctx, taskID, now)
		switch {
		case taskErr != nil:
			h.logger.Error("task recomputation failed", "task_id", taskID.String(), "error", taskErr)
			result.Errored++
		case written == 0:
			result.Skipped++
		default:
			result.Updated++
		}
	}

	return result, nil
}

// todaysTaskIDs snapshots the IDs of the tasks completed since dayStart.
func (h RecomputeTodayEfficiencyCommandHandler) todaysTaskIDs(
	ctx context.Context,
	dayStart time.Time,
) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tasks, err := uow.TaskRepository().GetCompleted(ctx, 0)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(tasks))
	for _, t := range tasks {
		if t.CompletedAt() == nil || t.CompletedAt().Before(dayStart) {
			continue
		}
		ids = append(ids, t.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return ids, nil
}

// recomputeTask regenerates one task's records in its own transaction.
func (h RecomputeTodayEfficiencyCommandHandler) recomputeTask(
	ctx context.Context,
	taskID kernel.UUID,
	now time.Time,
) (int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()

	scored, err := taskRepo.Get(ctx, taskID)
	if err != nil {
		return 0, err
	}

	siblings, err := taskRepo.GetByShipment(ctx, scored.ShipmentID())
	if err != nil {
		return 0, err
	}
	siblings = replaceTask(siblings, scored)

	written, err := h.recorder.recordAll(ctx, uow.StatsRepository(), scored, siblings, now)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return written, nil
}
