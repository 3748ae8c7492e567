package commands

import (
	"errors"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/guard"
)

var ErrHeartbeatLockCommandIsNotConstructed = errors.New(
	"HeartbeatLockCommand must be created via NewHeartbeatLockCommand constructor",
)

// HeartbeatLockCommand extends an operator's claim on a task.
type HeartbeatLockCommand struct {
	taskID     kernel.UUID
	operatorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewHeartbeatLockCommand creates a validated heartbeat command.
func NewHeartbeatLockCommand(taskID, operatorID kernel.UUID) (HeartbeatLockCommand, error) {
	if err := taskID.Validate(); err != nil {
		return HeartbeatLockCommand{}, err
	}
	if err := operatorID.Validate(); err != nil {
		return HeartbeatLockCommand{}, err
	}

	return HeartbeatLockCommand{
		taskID:     taskID,
		operatorID: operatorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// TaskID returns the locked task.
func (c HeartbeatLockCommand) TaskID() kernel.UUID {
	return c.taskID
}

// OperatorID returns the heartbeating operator.
func (c HeartbeatLockCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// Validate ensures the command was created through the constructor.
func (c HeartbeatLockCommand) Validate() error {
	return c.guard.Validate(ErrHeartbeatLockCommandIsNotConstructed)
}
