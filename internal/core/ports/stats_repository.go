package ports

import (
	"context"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/stats"
)

// StatsRepository defines the persistence contract for performance records
// and period ranks.
//
// Recomputation is always delete-then-reinsert: ReplaceForTask removes every
// record of a task (optionally one role of it) and inserts the regenerated
// set in one transaction, which keeps repeated recomputation idempotent.
type StatsRepository interface {
	// ReplaceForTask atomically deletes the existing performance records of
	// a task and inserts the given regenerated ones. With a valid role only
	// that role's records are replaced; with task.RoleUnknown all of them.
	ReplaceForTask(ctx context.Context, taskID kernel.UUID, role int, records []*stats.PerformanceRecord) error

	// GetByTask retrieves the performance records of one task.
	GetByTask(ctx context.Context, taskID kernel.UUID) ([]*stats.PerformanceRecord, error)

	// PointTotals sums awarded points per operator over [from, to).
	PointTotals(ctx context.Context, from, to time.Time) (map[kernel.UUID]float64, error)

	// UpsertRank stores a period rank, replacing any prior rank of the same
	// operator and period.
	UpsertRank(ctx context.Context, rank *stats.PeriodRank) error
}
