package commands

import (
	"context"
	"log/slog"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/services"
)

// RecomputeGapMetricsCommandHandler is the batch counterpart of the per-event
// statistics recording: it re-scores recently completed tasks so their
// shipment-scoped elapsed and gap metrics reflect the sibling tasks completed
// after them.
//
// Each task is regenerated in its own transaction. A failing task is logged
// and counted, never aborts the run, and never rolls back its siblings.
type RecomputeGapMetricsCommandHandler struct {
	uowFactory StatsUoWFactory
	recorder   statsRecorder
	logger     *slog.Logger
}

// NewRecomputeGapMetricsCommandHandler creates a handler for the batch
// gap-metric recomputation.
func NewRecomputeGapMetricsCommandHandler(
	uowFactory StatsUoWFactory,
	calculator services.PerformanceCalculator,
	logger *slog.Logger,
) RecomputeGapMetricsCommandHandler {
	return RecomputeGapMetricsCommandHandler{
		uowFactory: uowFactory,
		recorder:   newStatsRecorder(calculator),
		logger:     logger.With("component", "recompute_gap_metrics"),
	}
}

// Handle processes the batch recomputation command.
func (h RecomputeGapMetricsCommandHandler) Handle(
	ctx context.Context,
	cmd RecomputeGapMetricsCommand,
) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	taskIDs, err := h.completedTaskIDs(ctx, cmd.Limit())
	if err != nil {
		return BatchResult{}, err
	}

	now := time.Now().UTC()

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

// completedTaskIDs snapshots the IDs of the completed tasks to process, in
// a short read-only transaction.
func (h RecomputeGapMetricsCommandHandler) completedTaskIDs(
	ctx context.Context,
	limit int,
) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tasks, err := uow.TaskRepository().GetCompleted(ctx, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return ids, nil
}

// recomputeTask regenerates one task's records in its own transaction and
// reports how many records were written.
func (h RecomputeGapMetricsCommandHandler) recomputeTask(
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
