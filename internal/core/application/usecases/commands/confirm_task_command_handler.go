package commands

import (
	"context"
	"time"

	"picking/internal/core/domain/model/task"
	"picking/internal/core/domain/services"
)

// ConfirmTaskCommandHandler completes the check phase of a task.
//
// Confirmation requires no lock: checking happens at the control desk, not in
// the aisles, and the aggregate itself rejects any checker other than the
// first one recorded. On success the checker's performance record is
// generated and the shipment status re-derived; when every task of the
// shipment is confirmed the shipment's confirmation timestamp is stamped.
type ConfirmTaskCommandHandler struct {
	uowFactory LifecycleUoWFactory
	recorder   statsRecorder
}

// NewConfirmTaskCommandHandler creates a handler for task confirmation.
func NewConfirmTaskCommandHandler(
	uowFactory LifecycleUoWFactory,
	calculator services.PerformanceCalculator,
) ConfirmTaskCommandHandler {
	return ConfirmTaskCommandHandler{
		uowFactory: uowFactory,
		recorder:   newStatsRecorder(calculator),
	}
}

// Handle processes the confirmation command.
func (h ConfirmTaskCommandHandler) Handle(ctx context.Context, cmd ConfirmTaskCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()

	aggregate, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	if err = aggregate.Confirm(cmd.OperatorID(), cmd.Confirmed(), now); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	siblings, err := taskRepo.GetByShipment(ctx, aggregate.ShipmentID())
	if err != nil {
		return err
	}
	siblings = replaceTask(siblings, aggregate)

	err = h.recorder.recordRole(ctx, uow.StatsRepository(),
		aggregate, siblings, cmd.OperatorID(), task.RoleChecker, now)
	if err != nil {
		return err
	}

	if err = refreshShipmentStatus(ctx, uow, aggregate.ShipmentID(), siblings, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
