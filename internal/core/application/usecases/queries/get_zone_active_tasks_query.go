package queries

import (
	"errors"

	"picking/internal/pkg/guard"
)

var ErrGetZoneActiveTasksQueryIsNotConstructed = errors.New(
	"GetZoneActiveTasksQuery must be created via NewGetZoneActiveTasksQuery constructor",
)

// GetZoneActiveTasksQuery retrieves the per-zone counts of tasks currently
// being worked: assigned collections and collections awaiting check. Gives
// the floor supervisor a live load picture per warehouse zone.
type GetZoneActiveTasksQuery struct {
	guard guard.ConstructorGuard
}

// NewGetZoneActiveTasksQuery creates the parameterless zone load query.
func NewGetZoneActiveTasksQuery() GetZoneActiveTasksQuery {
	return GetZoneActiveTasksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetZoneActiveTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetZoneActiveTasksQueryIsNotConstructed)
}

// GetZoneActiveTasksQueryResponse is one zone's active task counts.
type GetZoneActiveTasksQueryResponse struct {
	Zone          int
	Assigned      int
	AwaitingCheck int
}
