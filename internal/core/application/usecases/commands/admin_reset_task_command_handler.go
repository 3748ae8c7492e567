package commands

import (
	"context"
	"time"

	"picking/internal/core/domain/model/task"
)

// AdminResetTaskCommandHandler handles the administrative task reset.
//
// The reset ignores lock ownership entirely: the lock is removed, the task
// returns to Unassigned and the shipment status is re-derived. Quantities
// already entered survive the reset so a reassigned operator can continue
// where the previous one stopped; the performance records of the task do
// not, since its timestamps are gone.
type AdminResetTaskCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewAdminResetTaskCommandHandler creates a handler for administrative resets.
func NewAdminResetTaskCommandHandler(uowFactory LifecycleUoWFactory) AdminResetTaskCommandHandler {
	return AdminResetTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reset command.
func (h AdminResetTaskCommandHandler) Handle(ctx context.Context, cmd AdminResetTaskCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

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

	if err = uow.LockRepository().Delete(ctx, cmd.TaskID()); err != nil {
		return err
	}

	aggregate.Unassign(true)
	if err = taskRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.StatsRepository().ReplaceForTask(ctx, cmd.TaskID(), int(task.RoleUnknown), nil); err != nil {
		return err
	}

	siblings, err := taskRepo.GetByShipment(ctx, aggregate.ShipmentID())
	if err != nil {
		return err
	}
	siblings = replaceTask(siblings, aggregate)

	if err = refreshShipmentStatus(ctx, uow, aggregate.ShipmentID(), siblings, time.Now().UTC()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
