package queries

import (
	"errors"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/guard"
)

var ErrGetShipmentProgressQueryIsNotConstructed = errors.New(
	"GetShipmentProgressQuery must be created via NewGetShipmentProgressQuery constructor",
)

// GetShipmentProgressQuery retrieves a shipment's derived aggregate status
// together with the state of each of its tasks.
type GetShipmentProgressQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentProgressQuery creates a validated progress query.
func NewGetShipmentProgressQuery(shipmentID kernel.UUID) (GetShipmentProgressQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentProgressQuery{}, err
	}

	return GetShipmentProgressQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ShipmentID returns the shipment being queried.
func (q GetShipmentProgressQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentProgressQueryIsNotConstructed)
}

// GetShipmentProgressQueryResponse is the shipment's progress snapshot.
type GetShipmentProgressQueryResponse struct {
	ShipmentID  kernel.UUID
	Number      string
	Status      int
	ConfirmedAt *time.Time
	Tasks       []ShipmentProgressTask
}

// ShipmentProgressTask is one task's slice of the progress snapshot.
type ShipmentProgressTask struct {
	TaskID      kernel.UUID
	Zone        int
	Status      int
	Positions   int
	CollectorID *kernel.UUID
	CheckerID   *kernel.UUID
}
