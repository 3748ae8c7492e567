package ports

import (
	"context"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for task aggregates.
type TaskRepository interface {
	// Add persists a new task aggregate with its task lines.
	Add(ctx context.Context, aggregate *task.Task) error

	// Update persists changes to an existing task aggregate.
	Update(ctx context.Context, aggregate *task.Task) error

	// Get retrieves a task by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// GetByShipment retrieves all tasks of one shipment.
	GetByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*task.Task, error)

	// GetCompleted retrieves tasks that carry both start and completion
	// timestamps, most recent first, up to limit (0 means no limit).
	// Used by the batch statistics recomputation jobs.
	GetCompleted(ctx context.Context, limit int) ([]*task.Task, error)
}
