package commands

import (
	"context"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/shipment"
	"picking/internal/core/domain/model/task"
)

// countTaskStatuses tallies the task statuses a shipment status derivation
// needs. The slice must hold every task of one shipment.
func countTaskStatuses(tasks []*task.Task) shipment.TaskStatusCounts {
	counts := shipment.TaskStatusCounts{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status() {
		case task.Assigned:
			counts.Assigned++
		case task.AwaitingCheck:
			counts.AwaitingCheck++
		case task.Confirmed:
			counts.Confirmed++
		case task.Unassigned:
		}
	}
	return counts
}

// refreshShipmentStatus re-derives the owning shipment's aggregate status
// from the given (already updated) task set and persists it.
func refreshShipmentStatus(
	ctx context.Context,
	uow LifecycleUoW,
	shipmentID kernel.UUID,
	tasks []*task.Task,
	at time.Time,
) error {
	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, shipmentID)
	if err != nil {
		return err
	}

	aggregate.ApplyStatus(countTaskStatuses(tasks), at)
	return shipmentRepo.Update(ctx, aggregate)
}
