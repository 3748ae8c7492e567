package shipment

import (
	"errors"
	"fmt"
	"strings"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory method.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is an order line inside a shipment: one SKU with its ordered quantity,
// unit of measure, optional storage location and the warehouse zone resolved
// for that location.
//
// Lines are immutable once created, with a single exception: the storage
// location (and with it the resolved zone) may be corrected administratively
// via CorrectLocation.
type Line struct {
	id       kernel.UUID
	sku      string
	name     string
	quantity int
	unit     string
	location string
	zone     kernel.Zone

	isConstructed bool
}

// NewLine creates a validated order line.
//
// Rules enforced:
//   - id must be a valid UUID
//   - sku must not be blank
//   - quantity must be positive
//   - zone must be a valid warehouse zone
//
// The location code may be empty; classification of empty locations is the
// warehouse classifier's concern, not the line's.
func NewLine(
	id kernel.UUID,
	sku string,
	name string,
	quantity int,
	unit string,
	location string,
	zone kernel.Zone,
) (*Line, error) {
	line := &Line{
		name:          name,
		unit:          unit,
		location:      location,
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setSKU(sku),
		line.setQuantity(quantity),
		line.setZone(zone),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs a line from persistence without re-running the
// creation workflow. All invariants are still validated.
func RestoreLine(
	id kernel.UUID,
	sku string,
	name string,
	quantity int,
	unit string,
	location string,
	zone kernel.Zone,
) (*Line, error) {
	return NewLine(id, sku, name, quantity, unit, location, zone)
}

// Validate ensures the Line instance was properly constructed through NewLine.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// SKU returns the stock-keeping-unit code of the line.
func (l *Line) SKU() string {
	return l.sku
}

// Name returns the display name of the item.
func (l *Line) Name() string {
	return l.name
}

// Quantity returns the ordered quantity.
func (l *Line) Quantity() int {
	return l.quantity
}

// Unit returns the unit of measure.
func (l *Line) Unit() string {
	return l.unit
}

// Location returns the storage location code, which may be empty.
func (l *Line) Location() string {
	return l.location
}

// Zone returns the warehouse zone resolved for this line.
func (l *Line) Zone() kernel.Zone {
	return l.zone
}

// CorrectLocation is the only permitted mutation of a line: an administrative
// correction of the storage location together with the re-resolved zone.
func (l *Line) CorrectLocation(location string, zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	l.location = location
	l.zone = zone
	return nil
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setSKU(sku string) error {
	if strings.TrimSpace(sku) == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	l.sku = sku
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	l.zone = zone
	return nil
}
