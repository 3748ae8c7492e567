package task

import (
	"fmt"

	"picking/internal/pkg/errs"
)

// Role is the closed enumeration of operator roles on a task.
// A closed enum (rather than free-form strings) guarantees that an
// unrecognized role can never silently pass a permission or scoring check.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCollector is the operator who physically gathers the task's items.
	RoleCollector

	// RoleChecker is the operator who verifies the collected quantities.
	RoleChecker

	// RoleDictator is the assisting role that reads positions out to the
	// collector; it is credited at reduced weight.
	RoleDictator
)

// dictatorCreditFactor is the reduced scoring weight of the assistance role.
const dictatorCreditFactor = 0.75

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "Unknown",
		RoleCollector: "Collector",
		RoleChecker:   "Checker",
		RoleDictator:  "Dictator",
	}
}

// AllRoles returns every valid role.
func AllRoles() []Role {
	return []Role{RoleCollector, RoleChecker, RoleDictator}
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	switch r {
	case RoleCollector, RoleChecker, RoleDictator:
		return nil
	case RoleUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%d is not a valid role", r))
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// CreditFactor returns the scoring weight of the role: 0.75 for the
// dictator assistance role, 1.0 for every other role.
func (r Role) CreditFactor() float64 {
	if r == RoleDictator {
		return dictatorCreditFactor
	}
	return 1.0
}
