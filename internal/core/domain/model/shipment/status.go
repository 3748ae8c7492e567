package shipment

import (
	"fmt"

	"picking/internal/pkg/errs"
)

// Status represents the aggregate lifecycle state of a shipment.
// Unlike task statuses, a shipment status is never transitioned directly:
// it is derived from the statuses of the shipment's tasks, so the state
// machine here is a pure derivation, not a mutation protocol.
//
// Derivation:
//
//	no task started            -> New
//	any task started           -> Collecting
//	every task collected       -> AwaitingCheck
//	every task confirmed       -> Confirmed
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// New means no task of the shipment has been started yet.
	New

	// Collecting means at least one task is being worked but collection
	// is not finished for all tasks.
	Collecting

	// AwaitingCheck means every task has been collected and the shipment
	// is waiting for checkers to confirm quantities.
	AwaitingCheck

	// Confirmed means every task of the shipment has been confirmed.
	// This is the final state.
	Confirmed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		New:           "New",
		Collecting:    "Collecting",
		AwaitingCheck: "AwaitingCheck",
		Confirmed:     "Confirmed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	switch s {
	case New, Collecting, AwaitingCheck, Confirmed:
		return nil
	case Unknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%d is not a valid shipment status", s))
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// TaskStatusCounts summarizes the task statuses of one shipment for
// aggregate status derivation.
type TaskStatusCounts struct {
	Total         int
	Assigned      int
	AwaitingCheck int
	Confirmed     int
}

// DeriveStatus computes the shipment aggregate status from its task statuses.
// The shipment status is never stored independently of the tasks; callers
// re-derive it after every task transition.
func DeriveStatus(counts TaskStatusCounts) Status {
	if counts.Total == 0 {
		return New
	}
	if counts.Confirmed == counts.Total {
		return Confirmed
	}
	if counts.AwaitingCheck+counts.Confirmed == counts.Total {
		return AwaitingCheck
	}
	if counts.Assigned+counts.AwaitingCheck+counts.Confirmed > 0 {
		return Collecting
	}
	return New
}
