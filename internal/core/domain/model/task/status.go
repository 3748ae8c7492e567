package task

import (
	"fmt"

	"picking/internal/pkg/errs"
)

// Status represents the lifecycle state of a task.
// It implements a state machine with defined transitions to ensure tasks
// follow the collect -> check workflow.
//
// State transitions:
//
//	Unassigned ──> Assigned ──> AwaitingCheck ──> Confirmed
//	     ^             │               │
//	     └─────────────┴───────────────┘
//	      (release / administrative reset)
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Unassigned is the initial status: the task sits in the pool waiting
	// for an operator to acquire its lock.
	Unassigned

	// Assigned means a collector holds the task and is gathering items.
	Assigned

	// AwaitingCheck means collection is declared complete and the task is
	// waiting for a checker to confirm quantities.
	AwaitingCheck

	// Confirmed means a checker validated the collected quantities.
	// This is the final state.
	Confirmed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Unassigned:    "Unassigned",
		Assigned:      "Assigned",
		AwaitingCheck: "AwaitingCheck",
		Confirmed:     "Confirmed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	switch s {
	case Unassigned, Assigned, AwaitingCheck, Confirmed:
		return nil
	case Unknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%d is not a valid task status", s))
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Unassigned -> Assigned (lock acquired)
//   - Assigned -> Assigned (idempotent re-acquire by the same collector;
//     ownership is checked by the aggregate, not here)
func (s Status) Assign() (Status, error) {
	if s != Unassigned && s != Assigned {
		return 0, errs.NewConflictError("status",
			fmt.Sprintf("%s is not a valid status to assign", s.String()))
	}
	return Assigned, nil
}

// Complete transitions the status to AwaitingCheck.
//
// Valid transitions:
//   - Assigned -> AwaitingCheck (collection declared complete)
func (s Status) Complete() (Status, error) {
	if s != Assigned {
		return 0, errs.NewConflictError("status",
			fmt.Sprintf("%s is not a valid status to complete", s.String()))
	}
	return AwaitingCheck, nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - AwaitingCheck -> Confirmed (quantities validated by a checker)
func (s Status) Confirm() (Status, error) {
	if s != AwaitingCheck {
		return 0, errs.NewConflictError("status",
			fmt.Sprintf("%s is not a valid status to confirm", s.String()))
	}
	return Confirmed, nil
}
