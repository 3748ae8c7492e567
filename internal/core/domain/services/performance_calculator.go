package services

import (
	"fmt"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/stats"
	"picking/internal/core/domain/model/task"
	"picking/internal/pkg/errs"
)

// ScoringPolicy carries the externally supplied scoring coefficients.
// The norm is the historical seconds-per-unit pick rate the efficiency
// ratio is measured against.
type ScoringPolicy struct {
	NormSecondsPerUnit float64
	PositionPoints     float64
	UnitPoints         float64
}

// PerformanceCalculator derives a per-task, per-role performance record from
// persisted task timestamps.
//
// All time metrics are scoped to the operator's own tasks within the same
// shipment: an operator's elapsed time never includes intervals during which
// a different operator was working another zone of the same order. Idle
// ("gap") time is precisely the part of the operator's own span not covered
// by their active pick time.
//
// The calculator is pure: given the same tasks and timestamps it always
// produces the same metrics, which is what makes delete-then-reinsert
// recomputation idempotent.
type PerformanceCalculator struct {
	policy ScoringPolicy
}

// NewPerformanceCalculator creates a calculator with the given scoring policy.
func NewPerformanceCalculator(policy ScoringPolicy) PerformanceCalculator {
	return PerformanceCalculator{policy: policy}
}

// Calculate scores one task for one operator in one role.
//
// operatorTasks must be the tasks of the same shipment owned by this operator
// (the scored task included); only tasks with both start and completion
// timestamps contribute to the time metrics.
func (c PerformanceCalculator) Calculate(
	scored *task.Task,
	operatorTasks []*task.Task,
	operatorID kernel.UUID,
	role task.Role,
	recordedAt time.Time,
) (*stats.PerformanceRecord, error) {
	if err := scored.Validate(); err != nil {
		return nil, err
	}
	if err := operatorID.Validate(); err != nil {
		return nil, err
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	positions := scored.Positions()
	units := scored.Units()

	elapsedSec, pickSec, warehouses := c.timeMetrics(scored, operatorTasks)
	gapSec := max(elapsedSec-pickSec, 0)
	switches := max(warehouses-1, 0)

	efficiency := c.efficiency(scored)
	basePoints := float64(positions)*c.policy.PositionPoints + float64(units)*c.policy.UnitPoints
	orderPoints := role.CreditFactor() * basePoints * efficiency

	return stats.NewPerformanceRecord(
		kernel.NewUUID(),
		scored.ID(),
		scored.ShipmentID(),
		operatorID,
		role,
		positions, units,
		elapsedSec, pickSec, gapSec,
		warehouses, switches,
		basePoints, efficiency, orderPoints,
		recordedAt,
	)
}

// timeMetrics computes the shipment-scoped elapsed span, summed pick time and
// distinct zone count over the operator's completed tasks.
func (c PerformanceCalculator) timeMetrics(
	scored *task.Task,
	operatorTasks []*task.Task,
) (elapsedSec, pickSec int64, warehouses int) {
	var earliestStart, latestComplete time.Time
	zones := make(map[kernel.Zone]struct{})

	for _, t := range operatorTasks {
		if !t.ShipmentID().IsEqual(scored.ShipmentID()) {
			continue
		}
		start, complete := t.StartedAt(), t.CompletedAt()
		if start == nil || complete == nil {
			continue
		}

		if earliestStart.IsZero() || start.Before(earliestStart) {
			earliestStart = *start
		}
		if latestComplete.IsZero() || complete.After(latestComplete) {
			latestComplete = *complete
		}
		pickSec += int64(complete.Sub(*start).Seconds())
		zones[t.Zone()] = struct{}{}
	}

	if !earliestStart.IsZero() {
		elapsedSec = int64(latestComplete.Sub(earliestStart).Seconds())
	}
	return elapsedSec, pickSec, len(zones)
}

// efficiency computes the clamped ratio of the norm-expected pick time to the
// task's actual pick time. Tasks with no measurable pick time score neutral.
func (c PerformanceCalculator) efficiency(scored *task.Task) float64 {
	start, complete := scored.StartedAt(), scored.CompletedAt()
	if start == nil || complete == nil {
		return 1.0
	}

	actualSec := complete.Sub(*start).Seconds()
	if actualSec <= 0 || c.policy.NormSecondsPerUnit <= 0 {
		return 1.0
	}

	expectedSec := c.policy.NormSecondsPerUnit * float64(scored.Units())
	raw := expectedSec / actualSec

	return min(max(raw, stats.MinEfficiency), stats.MaxEfficiency)
}

// OwnedCompleted filters the given tasks down to those owned by the operator
// in the collector seat. Helper for command handlers assembling the
// shipment-scoped input of Calculate.
func OwnedCompleted(tasks []*task.Task, operatorID kernel.UUID) []*task.Task {
	owned := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Collector() != nil && t.Collector().IsEqual(operatorID) {
			owned = append(owned, t)
		}
	}
	return owned
}

// ValidateScoringPolicy rejects nonsensical coefficient sets early, at
// composition time rather than first use.
func ValidateScoringPolicy(policy ScoringPolicy) error {
	if policy.NormSecondsPerUnit < 0 {
		return errs.NewValueIsInvalidErrorWithCause("norm seconds per unit is invalid",
			fmt.Errorf("%f is negative", policy.NormSecondsPerUnit))
	}
	if policy.PositionPoints < 0 || policy.UnitPoints < 0 {
		return errs.NewValueIsInvalidError("points coefficients must not be negative")
	}
	return nil
}
