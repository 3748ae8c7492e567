package task

import (
	"errors"
	"fmt"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/errs"
)

// ErrTaskLineIsNotConstructed is returned when a TaskLine instance was not
// created through the NewTaskLine factory method.
var ErrTaskLineIsNotConstructed = errors.New("TaskLine must be created via NewTaskLine constructor")

// TaskLine joins a task and a shipment line. The assigned quantity is always
// the line's full ordered quantity: a line is never split across tasks, which
// is what makes quantity conservation trivially checkable.
type TaskLine struct {
	lineID            kernel.UUID
	quantity          int
	collectedQuantity int
	confirmedQuantity int

	isConstructed bool
}

// NewTaskLine creates a task line carrying the full ordered quantity of the
// referenced shipment line.
func NewTaskLine(lineID kernel.UUID, quantity int) (*TaskLine, error) {
	tl := &TaskLine{isConstructed: true}

	if err := lineID.Validate(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	tl.lineID = lineID
	tl.quantity = quantity
	return tl, nil
}

// RestoreTaskLine reconstructs a task line from persistence including the
// collected and confirmed progress.
func RestoreTaskLine(lineID kernel.UUID, quantity, collected, confirmed int) (*TaskLine, error) {
	tl, err := NewTaskLine(lineID, quantity)
	if err != nil {
		return nil, err
	}
	if err = tl.setCollected(collected); err != nil {
		return nil, err
	}
	if err = tl.setConfirmed(confirmed); err != nil {
		return nil, err
	}
	return tl, nil
}

// Validate ensures the TaskLine instance was properly constructed.
func (tl *TaskLine) Validate() error {
	if tl == nil || !tl.isConstructed {
		return ErrTaskLineIsNotConstructed
	}
	return nil
}

// LineID returns the referenced shipment line identifier.
func (tl *TaskLine) LineID() kernel.UUID {
	return tl.lineID
}

// Quantity returns the assigned quantity (the line's full ordered quantity).
func (tl *TaskLine) Quantity() int {
	return tl.quantity
}

// CollectedQuantity returns the quantity the collector reported as gathered.
func (tl *TaskLine) CollectedQuantity() int {
	return tl.collectedQuantity
}

// ConfirmedQuantity returns the quantity the checker confirmed.
func (tl *TaskLine) ConfirmedQuantity() int {
	return tl.confirmedQuantity
}

func (tl *TaskLine) setCollected(quantity int) error {
	if quantity < 0 || quantity > tl.quantity {
		return errs.NewValueIsOutOfRangeError("collected quantity", quantity, 0, tl.quantity)
	}
	tl.collectedQuantity = quantity
	return nil
}

func (tl *TaskLine) setConfirmed(quantity int) error {
	if quantity < 0 || quantity > tl.quantity {
		return errs.NewValueIsOutOfRangeError("confirmed quantity", quantity, 0, tl.quantity)
	}
	tl.confirmedQuantity = quantity
	return nil
}

func (tl *TaskLine) resetProgress() {
	tl.collectedQuantity = 0
	tl.confirmedQuantity = 0
}
