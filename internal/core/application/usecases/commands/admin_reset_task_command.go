package commands

import (
	"errors"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/guard"
)

var ErrAdminResetTaskCommandIsNotConstructed = errors.New(
	"AdminResetTaskCommand must be created via NewAdminResetTaskCommand constructor",
)

// AdminResetTaskCommand forcibly returns a task to the unassigned pool,
// regardless of who holds its lock or how far the work has progressed.
type AdminResetTaskCommand struct {
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdminResetTaskCommand creates a validated administrative reset command.
func NewAdminResetTaskCommand(taskID kernel.UUID) (AdminResetTaskCommand, error) {
	if err := taskID.Validate(); err != nil {
		return AdminResetTaskCommand{}, err
	}

	return AdminResetTaskCommand{
		taskID: taskID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// TaskID returns the task to reset.
func (c AdminResetTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Validate ensures the command was created through the constructor.
func (c AdminResetTaskCommand) Validate() error {
	return c.guard.Validate(ErrAdminResetTaskCommandIsNotConstructed)
}
