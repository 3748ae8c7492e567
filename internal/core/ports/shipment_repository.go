package ports

import (
	"context"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate with its lines.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its unique identifier.
	// Hard-deleted shipments are not returned.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
}
