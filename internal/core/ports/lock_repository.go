package ports

import (
	"context"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/lock"
)

// LockRepository defines the persistence contract for task locks.
//
// The storage layer is the arbiter of lock uniqueness: Add must fail with a
// Conflict error when a lock row for the task already exists, and Get inside
// a transaction must block concurrent acquirers for the same task until the
// transaction settles (row-level locking). Together with the check-then-create
// sequence in the acquire handler this makes acquisition atomic.
type LockRepository interface {
	// Add persists a new lock. Fails with a Conflict error if a lock for
	// the task already exists.
	Add(ctx context.Context, aggregate *lock.Lock) error

	// Update persists the advanced heartbeat or changed ownership of an
	// existing lock.
	Update(ctx context.Context, aggregate *lock.Lock) error

	// Get retrieves the lock of a task, or a NotFound error if the task is
	// unlocked. Within a transaction the returned row is locked for update.
	Get(ctx context.Context, taskID kernel.UUID) (*lock.Lock, error)

	// Delete removes the lock of a task. Deleting an absent lock is not an
	// error.
	Delete(ctx context.Context, taskID kernel.UUID) error
}
