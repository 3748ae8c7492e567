package shipment

import (
	"errors"
	"strings"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment factory method.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment represents an external order delivered by the order-management
// system. It is the aggregate root for the order lines; the actual picking
// work is carried by Task aggregates derived from these lines.
//
// Shipment follows these invariants:
//   - Must have a valid unique identifier and a non-blank display number
//   - Must contain at least one line
//   - Aggregate status is derived from its tasks, never transitioned directly
//   - Can only be created through NewShipment or RestoreShipment
type Shipment struct {
	id          kernel.UUID
	number      string
	lines       []*Line
	status      Status
	confirmedAt *time.Time
	deleted     bool

	isConstructed bool
}

// NewShipment creates a new Shipment in New status with the given lines.
func NewShipment(id kernel.UUID, number string, lines []*Line) (*Shipment, error) {
	s := &Shipment{
		status:        New,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setNumber(number),
		s.setLines(lines),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence, including its
// derived status, confirmation timestamp and deletion flag.
func RestoreShipment(
	id kernel.UUID,
	number string,
	lines []*Line,
	status Status,
	confirmedAt *time.Time,
	deleted bool,
) (*Shipment, error) {
	s, err := NewShipment(id, number, lines)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	s.status = status
	s.confirmedAt = confirmedAt
	s.deleted = deleted
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Number returns the display number assigned by the order-management system.
func (s *Shipment) Number() string {
	return s.number
}

// Lines returns the order lines of the shipment.
func (s *Shipment) Lines() []*Line {
	return s.lines
}

// Status returns the current derived aggregate status.
func (s *Shipment) Status() Status {
	return s.status
}

// ConfirmedAt returns the confirmation timestamp, or nil while not every
// task of the shipment is confirmed.
func (s *Shipment) ConfirmedAt() *time.Time {
	return s.confirmedAt
}

// IsDeleted reports whether the shipment was administratively hard-deleted.
func (s *Shipment) IsDeleted() bool {
	return s.deleted
}

// Line returns the line with the given ID, or a NotFound error.
func (s *Shipment) Line(lineID kernel.UUID) (*Line, error) {
	for _, l := range s.lines {
		if l.ID().IsEqual(lineID) {
			return l, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("line", lineID.String())
}

// TotalQuantity returns the total ordered quantity across all lines.
func (s *Shipment) TotalQuantity() int {
	total := 0
	for _, l := range s.lines {
		total += l.Quantity()
	}
	return total
}

// ApplyStatus re-derives the aggregate status from the given task status
// counts. When the derivation yields Confirmed for the first time, the
// confirmation timestamp is stamped with confirmedAt; dropping back out of
// Confirmed (e.g. after an administrative reset) clears it.
func (s *Shipment) ApplyStatus(counts TaskStatusCounts, confirmedAt time.Time) {
	s.status = DeriveStatus(counts)
	if s.status == Confirmed {
		if s.confirmedAt == nil {
			s.confirmedAt = &confirmedAt
		}
		return
	}
	s.confirmedAt = nil
}

// MarkDeleted flags the shipment as administratively hard-deleted.
// Shipments are never physically removed by lifecycle operations.
func (s *Shipment) MarkDeleted() {
	s.deleted = true
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("number")
	}
	s.number = number
	return nil
}

func (s *Shipment) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	s.lines = lines
	return nil
}
