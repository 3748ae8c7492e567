package commands

import (
	"errors"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/guard"
)

var ErrMarkTaskCollectedCommandIsNotConstructed = errors.New(
	"MarkTaskCollectedCommand must be created via NewMarkTaskCollectedCommand constructor",
)

// MarkTaskCollectedCommand declares collection of a task complete, recording
// the actually collected quantities per line. An optional dictator may be
// named as the voice assistant who accompanied the collection.
type MarkTaskCollectedCommand struct {
	taskID     kernel.UUID
	operatorID kernel.UUID
	collected  map[kernel.UUID]int
	dictatorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkTaskCollectedCommand creates a validated completion command.
// dictatorID may be nil when no dictator assisted.
func NewMarkTaskCollectedCommand(
	taskID, operatorID kernel.UUID,
	collected map[kernel.UUID]int,
	dictatorID *kernel.UUID,
) (MarkTaskCollectedCommand, error) {
	if err := taskID.Validate(); err != nil {
		return MarkTaskCollectedCommand{}, err
	}
	if err := operatorID.Validate(); err != nil {
		return MarkTaskCollectedCommand{}, err
	}
	if dictatorID != nil {
		if err := dictatorID.Validate(); err != nil {
			return MarkTaskCollectedCommand{}, err
		}
	}

	return MarkTaskCollectedCommand{
		taskID:     taskID,
		operatorID: operatorID,
		collected:  collected,
		dictatorID: dictatorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// TaskID returns the completed task.
func (c MarkTaskCollectedCommand) TaskID() kernel.UUID {
	return c.taskID
}

// OperatorID returns the collecting operator.
func (c MarkTaskCollectedCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// Collected returns the collected quantities keyed by line ID.
func (c MarkTaskCollectedCommand) Collected() map[kernel.UUID]int {
	return c.collected
}

// DictatorID returns the assisting dictator, or nil.
func (c MarkTaskCollectedCommand) DictatorID() *kernel.UUID {
	return c.dictatorID
}

// Validate ensures the command was created through the constructor.
func (c MarkTaskCollectedCommand) Validate() error {
	return c.guard.Validate(ErrMarkTaskCollectedCommandIsNotConstructed)
}
