package commands

import (
	"context"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/shipment"
	"picking/internal/core/domain/services"
)

// IngestShipmentCommandHandler turns an inbound order into a shipment and its
// zone-scoped picking tasks. Each line is classified into a warehouse zone,
// the lines are partitioned into bounded tasks, and shipment plus tasks are
// persisted in one transaction.
//
// Example:
//
//	handler := NewIngestShipmentCommandHandler(uowFactory, classifier, splitter, 35)
//	cmd, _ := NewIngestShipmentCommand("SH-1042", lines)
//	shipmentID, err := handler.Handle(ctx, cmd)
type IngestShipmentCommandHandler struct {
	uowFactory      IngestUoWFactory
	classifier      services.WarehouseClassifier
	splitter        services.TaskSplitter
	maxLinesPerTask int
}

// NewIngestShipmentCommandHandler creates a handler for shipment ingestion.
func NewIngestShipmentCommandHandler(
	uowFactory IngestUoWFactory,
	classifier services.WarehouseClassifier,
	splitter services.TaskSplitter,
	maxLinesPerTask int,
) IngestShipmentCommandHandler {
	return IngestShipmentCommandHandler{
		uowFactory:      uowFactory,
		classifier:      classifier,
		splitter:        splitter,
		maxLinesPerTask: maxLinesPerTask,
	}
}

// Handle processes the ingestion command and returns the new shipment's ID.
// Classification never rejects a line; an unrecognizable location falls back
// to the ground-floor zone. Splitting derives one or more tasks per occupied
// zone, each bounded by the configured distinct-line limit.
func (h IngestShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd IngestShipmentCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	lines := make([]*shipment.Line, 0, len(cmd.Lines()))
	for _, in := range cmd.Lines() {
		zone := h.classifier.Classify(in.Location, kernel.Zone(in.ZoneHint))
		line, err := shipment.NewLine(
			kernel.NewUUID(), in.SKU, in.Name, in.Quantity, in.Unit, in.Location, zone)
		if err != nil {
			return kernel.UUID{}, err
		}
		lines = append(lines, line)
	}

	aggregate, err := shipment.NewShipment(kernel.NewUUID(), cmd.Number(), lines)
	if err != nil {
		return kernel.UUID{}, err
	}

	tasks, err := h.splitter.Split(aggregate.ID(), aggregate.Lines(), h.maxLinesPerTask)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	taskRepo := uow.TaskRepository()
	for _, t := range tasks {
		if err = taskRepo.Add(ctx, t); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
