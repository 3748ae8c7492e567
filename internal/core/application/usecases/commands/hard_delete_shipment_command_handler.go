package commands

import (
	"context"
)

// HardDeleteShipmentCommandHandler flags a shipment as deleted and drops the
// locks of its tasks. Tasks and performance records are kept: the deletion
// flag hides the shipment from every read path, while history stays intact
// for the standings already computed from it.
type HardDeleteShipmentCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

// NewHardDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewHardDeleteShipmentCommandHandler(uowFactory LifecycleUoWFactory) HardDeleteShipmentCommandHandler {
	return HardDeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hard-delete command. Deleting an already deleted
// shipment fails with NotFound, the same as any other read of it.
func (h HardDeleteShipmentCommandHandler) Handle(ctx context.Context, cmd HardDeleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	aggregate.MarkDeleted()
	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	tasks, err := uow.TaskRepository().GetByShipment(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	lockRepo := uow.LockRepository()
	for _, t := range tasks {
		if err = lockRepo.Delete(ctx, t.ID()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
