// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. It implements the repository pattern for the
// shipment aggregate, converting between domain entities and database rows.
package shipmentrepo

import (
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Lines are child rows removed together with their shipment.
type ShipmentDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number      string     `gorm:"type:varchar(64);not null;index"`
	Status      int        `gorm:"type:int;not null;index"`
	ConfirmedAt *time.Time `gorm:"type:timestamptz"`
	Deleted     bool       `gorm:"not null;default:false"`
	Lines       []LineDTO  `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// LineDTO represents one order line row within a shipment.
type LineDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	SKU        string    `gorm:"type:varchar(64);not null;index"`
	Name       string    `gorm:"type:varchar(255)"`
	Quantity   int       `gorm:"type:int;not null"`
	Unit       string    `gorm:"type:varchar(32)"`
	Location   string    `gorm:"type:varchar(64)"`
	Zone       int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for shipment line entities.
func (LineDTO) TableName() string {
	return "shipment_lines"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	shipmentID := aggregate.ID().Bytes()
	lines := make([]LineDTO, 0, len(aggregate.Lines()))

	for _, l := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			ID:         l.ID().Bytes(),
			ShipmentID: shipmentID,
			SKU:        l.SKU(),
			Name:       l.Name(),
			Quantity:   l.Quantity(),
			Unit:       l.Unit(),
			Location:   l.Location(),
			Zone:       int(l.Zone()),
		})
	}

	return ShipmentDTO{
		ID:          shipmentID,
		Number:      aggregate.Number(),
		Status:      int(aggregate.Status()),
		ConfirmedAt: aggregate.ConfirmedAt(),
		Deleted:     aggregate.IsDeleted(),
		Lines:       lines,
	}
}

// toDomain converts a database DTO to a shipment aggregate using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*shipment.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		l, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, l)
	}

	return shipment.RestoreShipment(
		id,
		dto.Number,
		lines,
		shipment.Status(dto.Status),
		dto.ConfirmedAt,
		dto.Deleted,
	)
}

func lineToDomain(dto LineDTO) (*shipment.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreLine(
		id,
		dto.SKU,
		dto.Name,
		dto.Quantity,
		dto.Unit,
		dto.Location,
		kernel.Zone(dto.Zone),
	)
}
