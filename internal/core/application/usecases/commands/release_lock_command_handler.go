package commands

import (
	"context"
	"errors"

	"picking/internal/pkg/errs"
)

// ReleaseLockCommandHandler removes an operator's own lock and returns the
// task to the unassigned pool, wiping collected quantities: releasing is an
// abandonment, not a pause.
//
// Releasing an unlocked task succeeds as a no-op so client retries stay
// idempotent. Releasing a lock owned by another operator is Forbidden; only
// acquisition may supersede foreign locks, and only stale ones.
type ReleaseLockCommandHandler struct {
	uowFactory LockUoWFactory
}

// NewReleaseLockCommandHandler creates a handler for lock release.
func NewReleaseLockCommandHandler(uowFactory LockUoWFactory) ReleaseLockCommandHandler {
	return ReleaseLockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release command.
func (h ReleaseLockCommandHandler) Handle(ctx context.Context, cmd ReleaseLockCommand) error {
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

	lockRepo := uow.LockRepository()

	current, err := lockRepo.Get(ctx, cmd.TaskID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return uow.Commit(ctx)
	}
	if err != nil {
		return err
	}

	if !current.IsOwnedBy(cmd.OperatorID()) {
		return errs.NewForbiddenError("lock",
			"task "+cmd.TaskID().String()+" is locked by another operator")
	}

	if err = lockRepo.Delete(ctx, cmd.TaskID()); err != nil {
		return err
	}

	taskRepo := uow.TaskRepository()
	aggregate, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	aggregate.Unassign(false)
	if err = taskRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
