package task

import (
	"errors"
	"fmt"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/errs"
)

// ErrTaskIsNotConstructed is returned when a Task instance was not created
// through the NewTask factory method.
var ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")

// Task represents a bounded, single-zone unit of collection work derived from
// a shipment. It is the aggregate root that carries the collect -> check
// lifecycle and the operator assignments used for performance scoring.
//
// Task follows these invariants:
//   - Must reference a valid shipment and a valid warehouse zone
//   - Must contain at least one task line; each referenced shipment line
//     appears in exactly one task with its full ordered quantity
//   - Status transitions follow the Unassigned -> Assigned -> AwaitingCheck
//     -> Confirmed workflow; release and administrative reset return the
//     task to Unassigned
//   - Lifecycle transitions are reserved for the recorded collector/checker
type Task struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	zone       kernel.Zone
	lines      []*TaskLine
	status     Status

	collectorID *kernel.UUID
	checkerID   *kernel.UUID
	dictatorID  *kernel.UUID

	startedAt   *time.Time
	completedAt *time.Time
	confirmedAt *time.Time

	isConstructed bool
}

// NewTask creates a new Task in Unassigned status.
func NewTask(id, shipmentID kernel.UUID, zone kernel.Zone, lines []*TaskLine) (*Task, error) {
	t := &Task{
		status:        Unassigned,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setShipmentID(shipmentID),
		t.setZone(zone),
		t.setLines(lines),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTask reconstructs a task from persistence including status,
// assignments and timestamps.
func RestoreTask(
	id, shipmentID kernel.UUID,
	zone kernel.Zone,
	lines []*TaskLine,
	status Status,
	collectorID, checkerID, dictatorID *kernel.UUID,
	startedAt, completedAt, confirmedAt *time.Time,
) (*Task, error) {
	t, err := NewTask(id, shipmentID, zone, lines)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	t.status = status
	t.collectorID = collectorID
	t.checkerID = checkerID
	t.dictatorID = dictatorID
	t.startedAt = startedAt
	t.completedAt = completedAt
	t.confirmedAt = confirmedAt
	return t, nil
}

// Validate ensures the Task instance was properly constructed.
func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

// IsEqual compares two tasks by their unique identifiers.
func (t *Task) IsEqual(other *Task) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// ShipmentID returns the owning shipment's identifier.
func (t *Task) ShipmentID() kernel.UUID {
	return t.shipmentID
}

// Zone returns the warehouse zone the task is scoped to.
func (t *Task) Zone() kernel.Zone {
	return t.zone
}

// Lines returns the task lines.
func (t *Task) Lines() []*TaskLine {
	return t.lines
}

// Status returns the current status of the task.
func (t *Task) Status() Status {
	return t.status
}

// Collector returns the assigned collector's ID, or nil if unassigned.
func (t *Task) Collector() *kernel.UUID {
	return t.collectorID
}

// Checker returns the recorded checker's ID, or nil if none.
func (t *Task) Checker() *kernel.UUID {
	return t.checkerID
}

// Dictator returns the recorded dictator's ID, or nil if none.
func (t *Task) Dictator() *kernel.UUID {
	return t.dictatorID
}

// StartedAt returns the collection start timestamp, or nil if unset.
func (t *Task) StartedAt() *time.Time {
	return t.startedAt
}

// CompletedAt returns the collection completion timestamp, or nil if unset.
func (t *Task) CompletedAt() *time.Time {
	return t.completedAt
}

// ConfirmedAt returns the check confirmation timestamp, or nil if unset.
func (t *Task) ConfirmedAt() *time.Time {
	return t.confirmedAt
}

// Positions returns the number of distinct lines in the task.
func (t *Task) Positions() int {
	return len(t.lines)
}

// Units returns the total assigned quantity across the task's lines.
func (t *Task) Units() int {
	units := 0
	for _, tl := range t.lines {
		units += tl.Quantity()
	}
	return units
}

// Operator returns the ID recorded for the given role, or nil.
func (t *Task) Operator(role Role) *kernel.UUID {
	switch role {
	case RoleCollector:
		return t.collectorID
	case RoleChecker:
		return t.checkerID
	case RoleDictator:
		return t.dictatorID
	case RoleUnknown:
	}
	return nil
}

// Assign records the collector and start timestamp on successful lock
// acquisition, transitioning the task to Assigned.
//
// Re-assignment to the same collector is idempotent. Assignment while a
// different collector is recorded fails with a Conflict error: ownership
// disputes are resolved by the lock manager, never silently here.
func (t *Task) Assign(collectorID kernel.UUID, at time.Time) error {
	if err := collectorID.Validate(); err != nil {
		return err
	}

	if t.collectorID != nil && !t.collectorID.IsEqual(collectorID) {
		return errs.NewConflictError("task",
			fmt.Sprintf("task %s is already assigned to another collector", t.id))
	}

	newStatus, err := t.status.Assign()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.collectorID = &collectorID
	if t.startedAt == nil {
		t.startedAt = &at
	}
	return nil
}

// Unassign returns the task to the unassigned pool, clearing the collector
// assignment and the collection timestamps.
//
// When keepProgress is false (operator release), collected quantities are
// wiped as well: releasing is an abandonment, not a pause. When keepProgress
// is true (administrative reset), quantities already entered are preserved.
func (t *Task) Unassign(keepProgress bool) {
	t.status = Unassigned
	t.collectorID = nil
	t.startedAt = nil
	t.completedAt = nil
	t.confirmedAt = nil

	if !keepProgress {
		for _, tl := range t.lines {
			tl.resetProgress()
		}
	}
}

// MarkCollected declares collection complete, recording the collected
// quantities and transitioning the task to AwaitingCheck.
//
// The caller must be the recorded collector; quantities are validated per
// line against the assigned quantity. Lines absent from the map keep a
// collected quantity of zero.
func (t *Task) MarkCollected(collectorID kernel.UUID, collected map[kernel.UUID]int, at time.Time) error {
	if err := collectorID.Validate(); err != nil {
		return err
	}
	if t.collectorID == nil || !t.collectorID.IsEqual(collectorID) {
		return errs.NewConflictError("task",
			fmt.Sprintf("operator %s is not the collector of task %s", collectorID, t.id))
	}

	newStatus, err := t.status.Complete()
	if err != nil {
		return err
	}

	for _, tl := range t.lines {
		qty, ok := collected[tl.LineID()]
		if !ok {
			continue
		}
		if err = tl.setCollected(qty); err != nil {
			return err
		}
	}

	t.status = newStatus
	t.completedAt = &at
	return nil
}

// Confirm validates the collected quantities and transitions the task to
// Confirmed.
//
// The first confirming operator becomes the recorded checker; once recorded,
// confirmation by anyone else fails with a Conflict error. The checker may
// not be the task's own collector.
func (t *Task) Confirm(checkerID kernel.UUID, confirmed map[kernel.UUID]int, at time.Time) error {
	if err := checkerID.Validate(); err != nil {
		return err
	}
	if t.collectorID != nil && t.collectorID.IsEqual(checkerID) {
		return errs.NewConflictError("task",
			fmt.Sprintf("collector %s cannot check their own task %s", checkerID, t.id))
	}
	if t.checkerID != nil && !t.checkerID.IsEqual(checkerID) {
		return errs.NewConflictError("task",
			fmt.Sprintf("operator %s is not the checker of task %s", checkerID, t.id))
	}

	newStatus, err := t.status.Confirm()
	if err != nil {
		return err
	}

	for _, tl := range t.lines {
		qty, ok := confirmed[tl.LineID()]
		if !ok {
			continue
		}
		if err = tl.setConfirmed(qty); err != nil {
			return err
		}
	}

	t.status = newStatus
	t.checkerID = &checkerID
	t.confirmedAt = &at
	return nil
}

// SetDictator records the assisting dictator for the task.
func (t *Task) SetDictator(dictatorID kernel.UUID) error {
	if err := dictatorID.Validate(); err != nil {
		return err
	}
	t.dictatorID = &dictatorID
	return nil
}

// Reassign administratively overrides the recorded operator identities.
// Nil parameters leave the corresponding role unchanged. The lifecycle
// status and timestamps are untouched: reassignment re-attributes work,
// it does not redo it.
func (t *Task) Reassign(collectorID, checkerID, dictatorID *kernel.UUID) error {
	for _, id := range []*kernel.UUID{collectorID, checkerID, dictatorID} {
		if id == nil {
			continue
		}
		if err := id.Validate(); err != nil {
			return err
		}
	}

	if collectorID != nil {
		t.collectorID = collectorID
	}
	if checkerID != nil {
		t.checkerID = checkerID
	}
	if dictatorID != nil {
		t.dictatorID = dictatorID
	}
	return nil
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shipment id is invalid", err)
	}
	t.shipmentID = id
	return nil
}

func (t *Task) setZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	t.zone = zone
	return nil
}

func (t *Task) setLines(lines []*TaskLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("task lines")
	}
	for _, tl := range lines {
		if err := tl.Validate(); err != nil {
			return err
		}
	}
	t.lines = lines
	return nil
}
