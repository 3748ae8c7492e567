package queries

import (
	"context"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentProgressQueryHandler assembles the progress snapshot of one
// shipment straight from the read side.
type GetShipmentProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentProgressQueryHandler creates a handler for progress queries.
func NewGetShipmentProgressQueryHandler(db *gorm.DB) GetShipmentProgressQueryHandler {
	return GetShipmentProgressQueryHandler{db: db}
}

// Handle executes the query. A missing or deleted shipment yields NotFound.
func (h GetShipmentProgressQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentProgressQuery,
) (GetShipmentProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentProgressQueryResponse{}, err
	}

	response, err := h.shipmentHead(ctx, query.ShipmentID())
	if err != nil {
		return GetShipmentProgressQueryResponse{}, err
	}

	response.Tasks, err = h.shipmentTasks(ctx, query.ShipmentID())
	if err != nil {
		return GetShipmentProgressQueryResponse{}, err
	}

	return response, nil
}

func (h GetShipmentProgressQueryHandler) shipmentHead(
	ctx context.Context,
	shipmentID kernel.UUID,
) (GetShipmentProgressQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			status,
			confirmed_at
		FROM shipments
		WHERE id = ?
		  AND NOT deleted
	`, shipmentID.String()).Rows()
	if err != nil {
		return GetShipmentProgressQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetShipmentProgressQueryResponse{}, err
		}
		return GetShipmentProgressQueryResponse{},
			errs.NewObjectNotFoundError("shipment", shipmentID.String())
	}

	response := GetShipmentProgressQueryResponse{ShipmentID: shipmentID}
	err = rows.Scan(
		&response.Number,
		&response.Status,
		&response.ConfirmedAt,
	)
	if err != nil {
		return GetShipmentProgressQueryResponse{}, err
	}

	return response, rows.Err()
}

func (h GetShipmentProgressQueryHandler) shipmentTasks(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]ShipmentProgressTask, error) {
	tasks := make([]ShipmentProgressTask, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.zone,
			t.status,
			COUNT(tl.line_id),
			t.collector_id,
			t.checker_id
		FROM tasks t
		LEFT JOIN task_lines tl ON tl.task_id = t.id
		WHERE t.shipment_id = ?
		GROUP BY t.id, t.zone, t.status, t.collector_id, t.checker_id
		ORDER BY t.zone, t.id
	`, shipmentID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var progress ShipmentProgressTask
		var id uuid.UUID
		var collectorID, checkerID uuid.NullUUID

		err = rows.Scan(
			&id,
			&progress.Zone,
			&progress.Status,
			&progress.Positions,
			&collectorID,
			&checkerID,
		)
		if err != nil {
			return nil, err
		}

		taskID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		progress.TaskID = taskID
		progress.CollectorID, err = optionalUUID(collectorID)
		if err != nil {
			return nil, err
		}
		progress.CheckerID, err = optionalUUID(checkerID)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, progress)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
