package queries

import (
	"context"

	"picking/internal/core/domain/model/task"

	"gorm.io/gorm"
)

// GetZoneActiveTasksQueryHandler counts in-flight tasks per warehouse zone.
type GetZoneActiveTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetZoneActiveTasksQueryHandler creates a handler for zone load queries.
func NewGetZoneActiveTasksQueryHandler(db *gorm.DB) GetZoneActiveTasksQueryHandler {
	return GetZoneActiveTasksQueryHandler{db: db}
}

// Handle executes the query. Zones without active tasks are omitted; tasks
// of deleted shipments are not counted.
func (h GetZoneActiveTasksQueryHandler) Handle(
	ctx context.Context,
	query GetZoneActiveTasksQuery,
) ([]GetZoneActiveTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	zones := make([]GetZoneActiveTasksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.zone,
			COUNT(*) FILTER (WHERE t.status = ?),
			COUNT(*) FILTER (WHERE t.status = ?)
		FROM tasks t
		JOIN shipments s ON s.id = t.shipment_id
		WHERE t.status IN (?, ?)
		  AND NOT s.deleted
		GROUP BY t.zone
		ORDER BY t.zone
	`, task.Assigned, task.AwaitingCheck, task.Assigned, task.AwaitingCheck).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var zone GetZoneActiveTasksQueryResponse

		err = rows.Scan(
			&zone.Zone,
			&zone.Assigned,
			&zone.AwaitingCheck,
		)
		if err != nil {
			return nil, err
		}

		zones = append(zones, zone)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}
