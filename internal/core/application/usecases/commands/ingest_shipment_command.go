package commands

import (
	"errors"
	"strings"

	"picking/internal/pkg/errs"
	"picking/internal/pkg/guard"
)

var ErrIngestShipmentCommandIsNotConstructed = errors.New(
	"IngestShipmentCommand must be created via NewIngestShipmentCommand constructor",
)

// IngestLine carries one order line as delivered by the external
// order-management system. The zone hint is optional (zero when absent);
// the warehouse classifier resolves the final zone.
type IngestLine struct {
	SKU      string
	Name     string
	Quantity int
	Unit     string
	Location string
	ZoneHint int
}

// IngestShipmentCommand accepts an external order and turns it into a
// shipment with its zone-scoped tasks. Classification and task splitting
// happen immediately upon ingestion, before anything is persisted.
//
// Example:
//
//	cmd, err := NewIngestShipmentCommand("SH-1042", lines)
//	if err != nil {
//	    return err
//	}
//	shipmentID, err := handler.Handle(ctx, cmd)
type IngestShipmentCommand struct {
	number string
	lines  []IngestLine

	guard guard.ConstructorGuard
}

// NewIngestShipmentCommand creates a validated ingestion command.
func NewIngestShipmentCommand(number string, lines []IngestLine) (IngestShipmentCommand, error) {
	if strings.TrimSpace(number) == "" {
		return IngestShipmentCommand{}, errs.NewValueIsRequiredError("number")
	}
	if len(lines) == 0 {
		return IngestShipmentCommand{}, errs.NewValueIsRequiredError("lines")
	}
	for _, line := range lines {
		if strings.TrimSpace(line.SKU) == "" {
			return IngestShipmentCommand{}, errs.NewValueIsRequiredError("sku")
		}
		if line.Quantity <= 0 {
			return IngestShipmentCommand{}, errs.NewValueIsInvalidError("quantity")
		}
	}

	return IngestShipmentCommand{
		number: number,
		lines:  lines,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Number returns the external display number of the order.
func (c IngestShipmentCommand) Number() string {
	return c.number
}

// Lines returns the order lines to ingest.
func (c IngestShipmentCommand) Lines() []IngestLine {
	return c.lines
}

// Validate ensures the command was created through the constructor.
func (c IngestShipmentCommand) Validate() error {
	return c.guard.Validate(ErrIngestShipmentCommandIsNotConstructed)
}
