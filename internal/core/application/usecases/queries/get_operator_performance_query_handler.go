package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOperatorPerformanceQueryHandler aggregates performance records straight
// in the database. Uses direct SQL for optimal read performance in the CQRS
// pattern; no domain aggregates are materialized.
type GetOperatorPerformanceQueryHandler struct {
	db *gorm.DB
}

// NewGetOperatorPerformanceQueryHandler creates a handler for operator
// performance queries.
func NewGetOperatorPerformanceQueryHandler(db *gorm.DB) GetOperatorPerformanceQueryHandler {
	return GetOperatorPerformanceQueryHandler{db: db}
}

// Handle executes the aggregation. Returns one row per role the operator
// filled during the window, sorted by role; an operator with no records in
// the window yields an empty slice, not an error.
func (h GetOperatorPerformanceQueryHandler) Handle(
	ctx context.Context,
	query GetOperatorPerformanceQuery,
) ([]GetOperatorPerformanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	totals := make([]GetOperatorPerformanceQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			role,
			COUNT(*),
			SUM(positions),
			SUM(units),
			SUM(pick_time_sec),
			SUM(gap_time_sec),
			AVG(efficiency),
			SUM(order_points)
		FROM performance_records
		WHERE operator_id = ?
		  AND recorded_at >= ?
		  AND recorded_at < ?
		GROUP BY role
		ORDER BY role
	`, query.OperatorID().String(), query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var total GetOperatorPerformanceQueryResponse

		err = rows.Scan(
			&total.Role,
			&total.Tasks,
			&total.Positions,
			&total.Units,
			&total.PickTimeSec,
			&total.GapTimeSec,
			&total.AvgEfficiency,
			&total.Points,
		)
		if err != nil {
			return nil, err
		}

		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}
