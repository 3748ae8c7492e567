package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPositionDifficultyQueryHandler computes per-SKU pick rates from the
// completed tasks. A task's pick time is attributed to its lines weighted by
// unit share; SKUs below the sample threshold never surface, keeping one
// slow outlier pick from branding a position difficult.
type GetPositionDifficultyQueryHandler struct {
	db *gorm.DB
}

// NewGetPositionDifficultyQueryHandler creates a handler for the difficulty
// query.
func NewGetPositionDifficultyQueryHandler(db *gorm.DB) GetPositionDifficultyQueryHandler {
	return GetPositionDifficultyQueryHandler{db: db}
}

// Handle executes the query. Results are sorted slowest first.
func (h GetPositionDifficultyQueryHandler) Handle(
	ctx context.Context,
	query GetPositionDifficultyQuery,
) ([]GetPositionDifficultyQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	positions := make([]GetPositionDifficultyQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sl.sku,
			sl.name,
			COUNT(*),
			AVG(EXTRACT(EPOCH FROM (t.completed_at - t.started_at)) / tu.units)
		FROM task_lines tl
		JOIN tasks t ON t.id = tl.task_id
		JOIN shipment_lines sl ON sl.id = tl.line_id
		JOIN (
			SELECT task_id, SUM(quantity) AS units
			FROM task_lines
			GROUP BY task_id
		) tu ON tu.task_id = t.id
		WHERE t.started_at IS NOT NULL
		  AND t.completed_at IS NOT NULL
		  AND t.completed_at > t.started_at
		  AND tu.units > 0
		GROUP BY sl.sku, sl.name
		HAVING COUNT(*) >= ?
		ORDER BY 4 DESC
	`, query.MinSamples()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var position GetPositionDifficultyQueryResponse

		err = rows.Scan(
			&position.SKU,
			&position.Name,
			&position.Samples,
			&position.AvgSecPerUnit,
		)
		if err != nil {
			return nil, err
		}

		positions = append(positions, position)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}
