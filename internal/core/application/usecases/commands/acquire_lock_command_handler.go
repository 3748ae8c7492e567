package commands

import (
	"context"
	"errors"
	"time"

	"picking/internal/core/domain/model/lock"
	"picking/internal/pkg/errs"
)

// AcquireOutcome tells the caller how an acquisition succeeded.
type AcquireOutcome int

const (
	// OutcomeAcquired means a fresh lock was created for the operator.
	OutcomeAcquired AcquireOutcome = iota

	// OutcomeAlreadyOwned means the operator already held the lock; the
	// call degraded to a heartbeat.
	OutcomeAlreadyOwned

	// OutcomeSuperseded means a stale lock of another operator was taken
	// over, wiping that operator's unfinished progress.
	OutcomeSuperseded
)

// AcquireLockCommandHandler atomically claims a task for an operator.
//
// The lock row and the task's collector assignment change in one transaction,
// with the lock repository providing row-level serialization per task:
//   - no lock -> create one and assign the task
//   - own lock -> heartbeat it (idempotent retry)
//   - live foreign lock -> Conflict
//   - stale foreign lock -> supersede: re-own the lock, wipe the previous
//     collector's progress and assign the task to the new operator
//
// Example:
//
//	handler := NewAcquireLockCommandHandler(uowFactory, lock.DefaultTimeout)
//	cmd, _ := NewAcquireLockCommand(taskID, operatorID)
//	outcome, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // task is being worked by someone else
//	}
type AcquireLockCommandHandler struct {
	uowFactory LockUoWFactory
	timeout    time.Duration
}

// NewAcquireLockCommandHandler creates a handler for lock acquisition.
// A non-positive timeout falls back to the default liveness window.
func NewAcquireLockCommandHandler(uowFactory LockUoWFactory, timeout time.Duration) AcquireLockCommandHandler {
	if timeout <= 0 {
		timeout = lock.DefaultTimeout
	}
	return AcquireLockCommandHandler{
		uowFactory: uowFactory,
		timeout:    timeout,
	}
}

// Handle processes the acquisition command.
func (h AcquireLockCommandHandler) Handle(ctx context.Context, cmd AcquireLockCommand) (AcquireOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()
	lockRepo := uow.LockRepository()

	aggregate, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return 0, err
	}

	outcome := OutcomeAcquired
	current, err := lockRepo.Get(ctx, cmd.TaskID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		fresh, lockErr := lock.NewLock(cmd.TaskID(), cmd.OperatorID(), now)
		if lockErr != nil {
			return 0, lockErr
		}
		if lockErr = lockRepo.Add(ctx, fresh); lockErr != nil {
			return 0, lockErr
		}

	case err != nil:
		return 0, err

	case current.IsOwnedBy(cmd.OperatorID()):
		current.Heartbeat(now)
		if err = lockRepo.Update(ctx, current); err != nil {
			return 0, err
		}
		outcome = OutcomeAlreadyOwned

	case current.IsActive(now, h.timeout):
		return 0, errs.NewConflictError("lock",
			"task "+cmd.TaskID().String()+" is locked by another operator")

	default:
		// Stale foreign lock: take it over and drop the previous
		// collector's unfinished progress.
		superseding, lockErr := lock.NewLock(cmd.TaskID(), cmd.OperatorID(), now)
		if lockErr != nil {
			return 0, lockErr
		}
		if lockErr = lockRepo.Update(ctx, superseding); lockErr != nil {
			return 0, lockErr
		}
		aggregate.Unassign(false)
		outcome = OutcomeSuperseded
	}

	if err = aggregate.Assign(cmd.OperatorID(), now); err != nil {
		return 0, err
	}
	if err = taskRepo.Update(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return outcome, nil
}
