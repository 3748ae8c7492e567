package commands

import (
	"errors"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/guard"
)

var ErrConfirmTaskCommandIsNotConstructed = errors.New(
	"ConfirmTaskCommand must be created via NewConfirmTaskCommand constructor",
)

// ConfirmTaskCommand validates a collected task, recording the quantities
// the checker actually verified.
type ConfirmTaskCommand struct {
	taskID     kernel.UUID
	operatorID kernel.UUID
	confirmed  map[kernel.UUID]int

	guard guard.ConstructorGuard
}

// NewConfirmTaskCommand creates a validated confirmation command.
func NewConfirmTaskCommand(
	taskID, operatorID kernel.UUID,
	confirmed map[kernel.UUID]int,
) (ConfirmTaskCommand, error) {
	if err := taskID.Validate(); err != nil {
		return ConfirmTaskCommand{}, err
	}
	if err := operatorID.Validate(); err != nil {
		return ConfirmTaskCommand{}, err
	}

	return ConfirmTaskCommand{
		taskID:     taskID,
		operatorID: operatorID,
		confirmed:  confirmed,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// TaskID returns the task being confirmed.
func (c ConfirmTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// OperatorID returns the confirming checker.
func (c ConfirmTaskCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// Confirmed returns the verified quantities keyed by line ID.
func (c ConfirmTaskCommand) Confirmed() map[kernel.UUID]int {
	return c.confirmed
}

// Validate ensures the command was created through the constructor.
func (c ConfirmTaskCommand) Validate() error {
	return c.guard.Validate(ErrConfirmTaskCommandIsNotConstructed)
}
