// Package stats provides the performance-statistics records of the picking
// system: per-task, per-role operator performance and the periodic percentile
// ranks derived from it.
//
// Records are computed strictly from persisted task timestamps and are always
// regenerated whole (delete-then-reinsert); they are never patched
// incrementally, which keeps recomputation idempotent.
package stats

import (
	"errors"
	"fmt"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/task"
	"picking/internal/pkg/errs"
)

// ErrPerformanceRecordIsNotConstructed is returned when a PerformanceRecord
// was not created through the NewPerformanceRecord factory method.
var ErrPerformanceRecordIsNotConstructed = errors.New(
	"PerformanceRecord must be created via NewPerformanceRecord constructor",
)

// Efficiency clamp bounds. Bounding efficiency to the closed interval
// [MinEfficiency, MaxEfficiency] limits the scoring influence of any single
// fast or slow task to ±10%.
const (
	MinEfficiency = 0.9
	MaxEfficiency = 1.1
)

// PerformanceRecord is one operator's scored performance on one task in one
// role. Elapsed, pick and gap times are scoped to the operator's own tasks
// within the shipment, so an operator is never penalized for intervals in
// which a different operator was working another zone of the same order.
type PerformanceRecord struct {
	id         kernel.UUID
	taskID     kernel.UUID
	shipmentID kernel.UUID
	operatorID kernel.UUID
	role       task.Role

	positions int
	units     int

	elapsedTimeSec  int64
	pickTimeSec     int64
	gapTimeSec      int64
	warehousesCount int
	switches        int

	basePoints  float64
	efficiency  float64
	orderPoints float64

	recordedAt time.Time

	isConstructed bool
}

// NewPerformanceRecord creates a validated performance record.
//
// Rules enforced:
//   - all identifiers must be valid UUIDs and the role a valid role
//   - efficiency must already be clamped to [MinEfficiency, MaxEfficiency]
//   - gap time must be non-negative and equal elapsed minus pick time
//     (floored at zero)
func NewPerformanceRecord(
	id, taskID, shipmentID, operatorID kernel.UUID,
	role task.Role,
	positions, units int,
	elapsedTimeSec, pickTimeSec, gapTimeSec int64,
	warehousesCount, switches int,
	basePoints, efficiency, orderPoints float64,
	recordedAt time.Time,
) (*PerformanceRecord, error) {
	r := &PerformanceRecord{isConstructed: true}

	if err := errors.Join(
		validateUUID("id", id),
		validateUUID("task id", taskID),
		validateUUID("shipment id", shipmentID),
		validateUUID("operator id", operatorID),
		role.Validate(),
	); err != nil {
		return nil, err
	}

	if efficiency < MinEfficiency || efficiency > MaxEfficiency {
		return nil, errs.NewValueIsOutOfRangeError("efficiency", efficiency, MinEfficiency, MaxEfficiency)
	}
	if gapTimeSec < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("gap time is invalid",
			fmt.Errorf("%d is negative", gapTimeSec))
	}
	if expected := max(elapsedTimeSec-pickTimeSec, 0); gapTimeSec != expected {
		return nil, errs.NewValueIsInvalidErrorWithCause("gap time is invalid",
			fmt.Errorf("%d does not equal max(0, elapsed-pick) = %d", gapTimeSec, expected))
	}

	r.id = id
	r.taskID = taskID
	r.shipmentID = shipmentID
	r.operatorID = operatorID
	r.role = role
	r.positions = positions
	r.units = units
	r.elapsedTimeSec = elapsedTimeSec
	r.pickTimeSec = pickTimeSec
	r.gapTimeSec = gapTimeSec
	r.warehousesCount = warehousesCount
	r.switches = switches
	r.basePoints = basePoints
	r.efficiency = efficiency
	r.orderPoints = orderPoints
	r.recordedAt = recordedAt
	return r, nil
}

// Validate ensures the record was properly constructed.
func (r *PerformanceRecord) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrPerformanceRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *PerformanceRecord) ID() kernel.UUID { return r.id }

// TaskID returns the scored task's identifier.
func (r *PerformanceRecord) TaskID() kernel.UUID { return r.taskID }

// ShipmentID returns the owning shipment's identifier.
func (r *PerformanceRecord) ShipmentID() kernel.UUID { return r.shipmentID }

// OperatorID returns the scored operator's identifier.
func (r *PerformanceRecord) OperatorID() kernel.UUID { return r.operatorID }

// Role returns the role the operator played on the task.
func (r *PerformanceRecord) Role() task.Role { return r.role }

// Positions returns the number of distinct lines handled.
func (r *PerformanceRecord) Positions() int { return r.positions }

// Units returns the total quantity handled.
func (r *PerformanceRecord) Units() int { return r.units }

// ElapsedTimeSec returns the wall-clock span over the operator's own tasks
// in the shipment.
func (r *PerformanceRecord) ElapsedTimeSec() int64 { return r.elapsedTimeSec }

// PickTimeSec returns the summed active collection time.
func (r *PerformanceRecord) PickTimeSec() int64 { return r.pickTimeSec }

// GapTimeSec returns the idle time attributable to this operator switching
// among their own tasks.
func (r *PerformanceRecord) GapTimeSec() int64 { return r.gapTimeSec }

// WarehousesCount returns the number of distinct zones among the operator's
// tasks in the shipment.
func (r *PerformanceRecord) WarehousesCount() int { return r.warehousesCount }

// Switches returns the number of zone switches (warehouses minus one,
// floored at zero).
func (r *PerformanceRecord) Switches() int { return r.switches }

// BasePoints returns the unscaled points for the positions/units handled.
func (r *PerformanceRecord) BasePoints() float64 { return r.basePoints }

// Efficiency returns the clamped time-per-unit ratio against the norm.
func (r *PerformanceRecord) Efficiency() float64 { return r.efficiency }

// OrderPoints returns the awarded points: basePoints x efficiency, reduced
// by the role's credit factor for the dictator assistance role.
func (r *PerformanceRecord) OrderPoints() float64 { return r.orderPoints }

// RecordedAt returns the timestamp the record was computed for.
func (r *PerformanceRecord) RecordedAt() time.Time { return r.recordedAt }

func validateUUID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name+" is invalid", err)
	}
	return nil
}
