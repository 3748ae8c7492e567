package commands

import (
	"context"
	"errors"
	"time"

	"picking/internal/core/domain/services"
	"picking/internal/pkg/errs"
)

// MarkTaskCollectedCommandHandler completes the collection phase of a task.
//
// The operator must hold the task's lock and be its recorded collector. On
// success the collected quantities are stored, the lock is removed (the work
// it protected is over), the shipment status is re-derived and the collector
// and dictator performance records are regenerated, all in one transaction.
//
// Example:
//
//	handler := NewMarkTaskCollectedCommandHandler(uowFactory, calculator)
//	cmd, _ := NewMarkTaskCollectedCommand(taskID, operatorID, collected, nil)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type MarkTaskCollectedCommandHandler struct {
	uowFactory LifecycleUoWFactory
	recorder   statsRecorder
}

// NewMarkTaskCollectedCommandHandler creates a handler for task completion.
func NewMarkTaskCollectedCommandHandler(
	uowFactory LifecycleUoWFactory,
	calculator services.PerformanceCalculator,
) MarkTaskCollectedCommandHandler {
	return MarkTaskCollectedCommandHandler{
		uowFactory: uowFactory,
		recorder:   newStatsRecorder(calculator),
	}
}

// Handle processes the completion command.
func (h MarkTaskCollectedCommandHandler) Handle(ctx context.Context, cmd MarkTaskCollectedCommand) error {
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
	lockRepo := uow.LockRepository()

	aggregate, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	current, err := lockRepo.Get(ctx, cmd.TaskID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewConflictError("lock",
			"task "+cmd.TaskID().String()+" must be locked before completion")
	}
	if err != nil {
		return err
	}
	if !current.IsOwnedBy(cmd.OperatorID()) {
		return errs.NewConflictError("lock",
			"task "+cmd.TaskID().String()+" is locked by another operator")
	}

	if cmd.DictatorID() != nil {
		if err = aggregate.SetDictator(*cmd.DictatorID()); err != nil {
			return err
		}
	}

	if err = aggregate.MarkCollected(cmd.OperatorID(), cmd.Collected(), now); err != nil {
		return err
	}

	if err = lockRepo.Delete(ctx, cmd.TaskID()); err != nil {
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

	if _, err = h.recorder.recordAll(ctx, uow.StatsRepository(), aggregate, siblings, now); err != nil {
		return err
	}

	if err = refreshShipmentStatus(ctx, uow, aggregate.ShipmentID(), siblings, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
