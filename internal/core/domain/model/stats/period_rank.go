package stats

import (
	"errors"
	"fmt"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/errs"
)

// ErrPeriodRankIsNotConstructed is returned when a PeriodRank was not created
// through the NewPeriodRank factory method.
var ErrPeriodRankIsNotConstructed = errors.New("PeriodRank must be created via NewPeriodRank constructor")

// Rank bounds of the decile-percentile standing.
const (
	MinRank = 1
	MaxRank = 10
)

// Period is the aggregation window of a rank.
type Period int

const (
	// PeriodUnknown represents an invalid or undefined period.
	PeriodUnknown Period = iota

	// PeriodDay aggregates one calendar day.
	PeriodDay

	// PeriodMonth aggregates one calendar month.
	PeriodMonth
)

// Validate checks if the Period value is valid.
func (p Period) Validate() error {
	switch p {
	case PeriodDay, PeriodMonth:
		return nil
	case PeriodUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("period is invalid",
		fmt.Errorf("%d is not a valid period", p))
}

// String returns the human-readable name of the period.
func (p Period) String() string {
	switch p {
	case PeriodDay:
		return "Day"
	case PeriodMonth:
		return "Month"
	case PeriodUnknown:
	}
	return "Unknown"
}

// Truncate maps an instant to the start of its period in UTC.
func (p Period) Truncate(t time.Time) time.Time {
	t = t.UTC()
	if p == PeriodMonth {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// PeriodRank is one operator's aggregate points and decile-percentile rank
// for one period. Ranks are recomputed in bulk from scratch, never adjusted
// incrementally.
type PeriodRank struct {
	operatorID  kernel.UUID
	period      Period
	periodStart time.Time
	points      float64
	rank        int

	isConstructed bool
}

// NewPeriodRank creates a validated period rank. The rank must lie within
// [MinRank, MaxRank]; only strictly-positive point totals ever receive a rank.
func NewPeriodRank(
	operatorID kernel.UUID,
	period Period,
	periodStart time.Time,
	points float64,
	rank int,
) (*PeriodRank, error) {
	if err := operatorID.Validate(); err != nil {
		return nil, err
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}
	if rank < MinRank || rank > MaxRank {
		return nil, errs.NewValueIsOutOfRangeError("rank", rank, MinRank, MaxRank)
	}

	return &PeriodRank{
		operatorID:    operatorID,
		period:        period,
		periodStart:   period.Truncate(periodStart),
		points:        points,
		rank:          rank,
		isConstructed: true,
	}, nil
}

// Validate ensures the PeriodRank was properly constructed.
func (r *PeriodRank) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrPeriodRankIsNotConstructed
	}
	return nil
}

// OperatorID returns the ranked operator's identifier.
func (r *PeriodRank) OperatorID() kernel.UUID { return r.operatorID }

// Period returns the aggregation window.
func (r *PeriodRank) Period() Period { return r.period }

// PeriodStart returns the UTC start of the aggregation window.
func (r *PeriodRank) PeriodStart() time.Time { return r.periodStart }

// Points returns the aggregate points for the period.
func (r *PeriodRank) Points() float64 { return r.points }

// Rank returns the 1-10 decile-percentile standing.
func (r *PeriodRank) Rank() int { return r.rank }
