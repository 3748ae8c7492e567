package commands

import (
	"context"
	"time"

	"picking/internal/pkg/errs"
)

// HeartbeatLockCommandHandler advances the liveness timestamp of a lock the
// operator owns. A heartbeat on an unlocked task is a NotFound error; a
// heartbeat on another operator's lock is a Conflict, even when that lock is
// already stale. The owner's own late heartbeat still succeeds and revives
// the lock, as long as nobody superseded it in the meantime.
type HeartbeatLockCommandHandler struct {
	uowFactory LockUoWFactory
}

// NewHeartbeatLockCommandHandler creates a handler for lock heartbeats.
func NewHeartbeatLockCommandHandler(uowFactory LockUoWFactory) HeartbeatLockCommandHandler {
	return HeartbeatLockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the heartbeat command.
func (h HeartbeatLockCommandHandler) Handle(ctx context.Context, cmd HeartbeatLockCommand) error {
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
	if err != nil {
		return err
	}

	if !current.IsOwnedBy(cmd.OperatorID()) {
		return errs.NewConflictError("lock",
			"task "+cmd.TaskID().String()+" is locked by another operator")
	}

	current.Heartbeat(time.Now().UTC())
	if err = lockRepo.Update(ctx, current); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
