// Package lock provides the exclusive, heartbeat-monitored claim of a task
// by one operator. A task has zero or one lock at any instant; liveness is
// evaluated lazily by readers against the last heartbeat, never enforced by
// a background sweeper.
package lock

import (
	"errors"
	"time"

	"picking/internal/core/domain/model/kernel"
)

// ErrLockIsNotConstructed is returned when a Lock instance was not created
// through the NewLock factory method.
var ErrLockIsNotConstructed = errors.New("Lock must be created via NewLock constructor")

// DefaultTimeout is the liveness window: a lock whose last heartbeat is older
// than this is stale and may be superseded by the next acquirer.
const DefaultTimeout = 30 * time.Second

// Lock is an exclusive claim on a task by one operator. The lock stays alive
// as long as the owner heartbeats within the timeout; a stale lock is not
// deleted automatically, it simply loses its power to repel other acquirers.
type Lock struct {
	taskID        kernel.UUID
	operatorID    kernel.UUID
	acquiredAt    time.Time
	lastHeartbeat time.Time

	isConstructed bool
}

// NewLock creates a lock owned by the given operator, with the acquisition
// time doubling as the first heartbeat.
func NewLock(taskID, operatorID kernel.UUID, at time.Time) (*Lock, error) {
	if err := taskID.Validate(); err != nil {
		return nil, err
	}
	if err := operatorID.Validate(); err != nil {
		return nil, err
	}

	return &Lock{
		taskID:        taskID,
		operatorID:    operatorID,
		acquiredAt:    at,
		lastHeartbeat: at,
		isConstructed: true,
	}, nil
}

// RestoreLock reconstructs a lock from persistence.
func RestoreLock(taskID, operatorID kernel.UUID, acquiredAt, lastHeartbeat time.Time) (*Lock, error) {
	l, err := NewLock(taskID, operatorID, acquiredAt)
	if err != nil {
		return nil, err
	}
	l.lastHeartbeat = lastHeartbeat
	return l, nil
}

// Validate ensures the Lock instance was properly constructed.
func (l *Lock) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLockIsNotConstructed
	}
	return nil
}

// TaskID returns the locked task's identifier.
func (l *Lock) TaskID() kernel.UUID {
	return l.taskID
}

// OperatorID returns the owning operator's identifier.
func (l *Lock) OperatorID() kernel.UUID {
	return l.operatorID
}

// AcquiredAt returns the acquisition time.
func (l *Lock) AcquiredAt() time.Time {
	return l.acquiredAt
}

// LastHeartbeat returns the time of the most recent heartbeat.
func (l *Lock) LastHeartbeat() time.Time {
	return l.lastHeartbeat
}

// IsOwnedBy reports whether the lock belongs to the given operator.
func (l *Lock) IsOwnedBy(operatorID kernel.UUID) bool {
	return l.operatorID.IsEqual(operatorID)
}

// IsActive reports whether the lock is live at the given instant: the last
// heartbeat lies strictly within the timeout window. Read-only; staleness
// is observed, never acted upon here.
func (l *Lock) IsActive(now time.Time, timeout time.Duration) bool {
	return now.Sub(l.lastHeartbeat) < timeout
}

// Heartbeat advances the liveness timestamp. A late heartbeat from the owner
// still succeeds: staleness is only evaluated by readers.
func (l *Lock) Heartbeat(at time.Time) {
	if at.After(l.lastHeartbeat) {
		l.lastHeartbeat = at
	}
}
