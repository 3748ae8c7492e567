package commands

import (
	"errors"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/guard"
)

var ErrAcquireLockCommandIsNotConstructed = errors.New(
	"AcquireLockCommand must be created via NewAcquireLockCommand constructor",
)

// AcquireLockCommand claims exclusive work on a task for one operator.
type AcquireLockCommand struct {
	taskID     kernel.UUID
	operatorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcquireLockCommand creates a validated lock acquisition command.
func NewAcquireLockCommand(taskID, operatorID kernel.UUID) (AcquireLockCommand, error) {
	if err := taskID.Validate(); err != nil {
		return AcquireLockCommand{}, err
	}
	if err := operatorID.Validate(); err != nil {
		return AcquireLockCommand{}, err
	}

	return AcquireLockCommand{
		taskID:     taskID,
		operatorID: operatorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// TaskID returns the task to lock.
func (c AcquireLockCommand) TaskID() kernel.UUID {
	return c.taskID
}

// OperatorID returns the acquiring operator.
func (c AcquireLockCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// Validate ensures the command was created through the constructor.
func (c AcquireLockCommand) Validate() error {
	return c.guard.Validate(ErrAcquireLockCommandIsNotConstructed)
}
