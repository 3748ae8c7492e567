package commands

import (
	"errors"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/guard"
)

var ErrReleaseLockCommandIsNotConstructed = errors.New(
	"ReleaseLockCommand must be created via NewReleaseLockCommand constructor",
)

// ReleaseLockCommand voluntarily gives up an operator's claim on a task.
type ReleaseLockCommand struct {
	taskID     kernel.UUID
	operatorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseLockCommand creates a validated release command.
func NewReleaseLockCommand(taskID, operatorID kernel.UUID) (ReleaseLockCommand, error) {
	if err := taskID.Validate(); err != nil {
		return ReleaseLockCommand{}, err
	}
	if err := operatorID.Validate(); err != nil {
		return ReleaseLockCommand{}, err
	}

	return ReleaseLockCommand{
		taskID:     taskID,
		operatorID: operatorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// TaskID returns the task being released.
func (c ReleaseLockCommand) TaskID() kernel.UUID {
	return c.taskID
}

// OperatorID returns the releasing operator.
func (c ReleaseLockCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// Validate ensures the command was created through the constructor.
func (c ReleaseLockCommand) Validate() error {
	return c.guard.Validate(ErrReleaseLockCommandIsNotConstructed)
}
