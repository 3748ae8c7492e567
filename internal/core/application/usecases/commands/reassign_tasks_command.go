package commands

import (
	"errors"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/errs"
	"picking/internal/pkg/guard"
)

var ErrReassignTasksCommandIsNotConstructed = errors.New(
	"ReassignTasksCommand must be created via NewReassignTasksCommand constructor",
)

// ReassignTasksCommand administratively rewrites the recorded operators on
// the given tasks. Intended for correcting mis-attributed work after the
// fact; nil role IDs leave the respective seat untouched.
type ReassignTasksCommand struct {
	taskIDs     []kernel.UUID
	collectorID *kernel.UUID
	checkerID   *kernel.UUID
	dictatorID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewReassignTasksCommand creates a validated reassignment command.
// At least one task and one role must be given.
func NewReassignTasksCommand(
	taskIDs []kernel.UUID,
	collectorID, checkerID, dictatorID *kernel.UUID,
) (ReassignTasksCommand, error) {
	if len(taskIDs) == 0 {
		return ReassignTasksCommand{}, errs.NewValueIsRequiredError("task ids")
	}
	for _, id := range taskIDs {
		if err := id.Validate(); err != nil {
			return ReassignTasksCommand{}, err
		}
	}
	if collectorID == nil && checkerID == nil && dictatorID == nil {
		return ReassignTasksCommand{}, errs.NewValueIsRequiredError("at least one role")
	}
	for _, id := range []*kernel.UUID{collectorID, checkerID, dictatorID} {
		if id == nil {
			continue
		}
		if err := id.Validate(); err != nil {
			return ReassignTasksCommand{}, err
		}
	}

	return ReassignTasksCommand{
		taskIDs:     taskIDs,
		collectorID: collectorID,
		checkerID:   checkerID,
		dictatorID:  dictatorID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// TaskIDs returns the tasks being reassigned.
func (c ReassignTasksCommand) TaskIDs() []kernel.UUID {
	return c.taskIDs
}

// CollectorID returns the new collector, or nil to keep the current one.
func (c ReassignTasksCommand) CollectorID() *kernel.UUID {
	return c.collectorID
}

// CheckerID returns the new checker, or nil to keep the current one.
func (c ReassignTasksCommand) CheckerID() *kernel.UUID {
	return c.checkerID
}

// DictatorID returns the new dictator, or nil to keep the current one.
func (c ReassignTasksCommand) DictatorID() *kernel.UUID {
	return c.dictatorID
}

// Validate ensures the command was created through the constructor.
func (c ReassignTasksCommand) Validate() error {
	return c.guard.Validate(ErrReassignTasksCommandIsNotConstructed)
}
