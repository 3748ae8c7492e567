package queries

import (
	"errors"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/errs"
	"picking/internal/pkg/guard"
)

var ErrGetOperatorPerformanceQueryIsNotConstructed = errors.New(
	"GetOperatorPerformanceQuery must be created via NewGetOperatorPerformanceQuery constructor",
)

// GetOperatorPerformanceQuery retrieves an operator's per-role performance
// totals over a half-open time window [from, to).
//
// Example:
//
//	query, _ := NewGetOperatorPerformanceQuery(operatorID, dayStart, dayEnd)
//	handler := NewGetOperatorPerformanceQueryHandler(db)
//	totals, err := handler.Handle(ctx, query)
type GetOperatorPerformanceQuery struct {
	operatorID kernel.UUID
	from       time.Time
	to         time.Time

	guard guard.ConstructorGuard
}

// NewGetOperatorPerformanceQuery creates a validated performance query.
func NewGetOperatorPerformanceQuery(
	operatorID kernel.UUID,
	from, to time.Time,
) (GetOperatorPerformanceQuery, error) {
	if err := operatorID.Validate(); err != nil {
		return GetOperatorPerformanceQuery{}, err
	}
	if !to.After(from) {
		return GetOperatorPerformanceQuery{}, errs.NewValueIsInvalidError("time window")
	}

	return GetOperatorPerformanceQuery{
		operatorID: operatorID,
		from:       from,
		to:         to,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// OperatorID returns the operator being queried.
func (q GetOperatorPerformanceQuery) OperatorID() kernel.UUID {
	return q.operatorID
}

// From returns the inclusive window start.
func (q GetOperatorPerformanceQuery) From() time.Time {
	return q.from
}

// To returns the exclusive window end.
func (q GetOperatorPerformanceQuery) To() time.Time {
	return q.to
}

// Validate ensures the query was created through the constructor.
func (q GetOperatorPerformanceQuery) Validate() error {
	return q.guard.Validate(ErrGetOperatorPerformanceQueryIsNotConstructed)
}

// GetOperatorPerformanceQueryResponse is one role's totals for the window.
type GetOperatorPerformanceQueryResponse struct {
	Role          int
	Tasks         int
	Positions     int
	Units         int
	PickTimeSec   int64
	GapTimeSec    int64
	AvgEfficiency float64
	Points        float64
}
