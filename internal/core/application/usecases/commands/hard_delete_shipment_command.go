package commands

import (
	"errors"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/guard"
)

var ErrHardDeleteShipmentCommandIsNotConstructed = errors.New(
	"HardDeleteShipmentCommand must be created via NewHardDeleteShipmentCommand constructor",
)

// HardDeleteShipmentCommand administratively removes a shipment from the
// working set. The shipment row survives with a deletion flag; its locks
// are dropped so no operator stays attached to vanished work.
type HardDeleteShipmentCommand struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewHardDeleteShipmentCommand creates a validated hard-delete command.
func NewHardDeleteShipmentCommand(shipmentID kernel.UUID) (HardDeleteShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return HardDeleteShipmentCommand{}, err
	}

	return HardDeleteShipmentCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ShipmentID returns the shipment to delete.
func (c HardDeleteShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Validate ensures the command was created through the constructor.
func (c HardDeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrHardDeleteShipmentCommandIsNotConstructed)
}
