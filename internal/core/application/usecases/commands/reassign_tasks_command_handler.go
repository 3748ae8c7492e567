package commands

import (
	"context"
	"log/slog"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/services"
)

// ReassignTasksCommandHandler re-attributes recorded work to different
// operators and regenerates the affected performance records.
//
// Reassignment never changes task statuses or timestamps: the work stays
// done, only the names on it change. Each task is processed in its own
// transaction so the stale-record deletion and the regeneration land
// together or not at all, and one task's failure never aborts the rest.
type ReassignTasksCommandHandler struct {
	uowFactory LifecycleUoWFactory
	recorder   statsRecorder
	logger     *slog.Logger
}

// NewReassignTasksCommandHandler creates a handler for operator reassignment.
func NewReassignTasksCommandHandler(
	uowFactory LifecycleUoWFactory,
	calculator services.PerformanceCalculator,
	logger *slog.Logger,
) ReassignTasksCommandHandler {
	return ReassignTasksCommandHandler{
		uowFactory: uowFactory,
		recorder:   newStatsRecorder(calculator),
		logger:     logger.With("component", "reassign_tasks"),
	}
}

// Handle processes the reassignment command and reports per-task outcomes.
func (h ReassignTasksCommandHandler) Handle(ctx context.Context, cmd ReassignTasksCommand) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	now := time.Now().UTC()

	var result BatchResult
	for _, taskID := range cmd.TaskIDs() {
		written, err := h.reassignTask(ctx, cmd, taskID, now)
		switch {
		case err != nil:
			h.logger.Error("task reassignment failed", "task_id", taskID.String(), "error", err)
			result.Errored++
		case written == 0:
			result.Skipped++
		default:
			result.Updated++
		}
	}

	return result, nil
}

// reassignTask rewrites one task's operators and regenerates its records in
// one transaction. Returns the number of records written.
func (h ReassignTasksCommandHandler) reassignTask(
	ctx context.Context,
	cmd ReassignTasksCommand,
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

	aggregate, err := taskRepo.Get(ctx, taskID)
	if err != nil {
		return 0, err
	}

	if err = aggregate.Reassign(cmd.CollectorID(), cmd.CheckerID(), cmd.DictatorID()); err != nil {
		return 0, err
	}
	if err = taskRepo.Update(ctx, aggregate); err != nil {
		return 0, err
	}

	siblings, err := taskRepo.GetByShipment(ctx, aggregate.ShipmentID())
	if err != nil {
		return 0, err
	}
	siblings = replaceTask(siblings, aggregate)

	written, err := h.recorder.recordAll(ctx, uow.StatsRepository(), aggregate, siblings, now)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return written, nil
}
