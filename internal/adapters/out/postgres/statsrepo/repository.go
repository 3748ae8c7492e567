package statsrepo

import (
	"context"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/stats"
	"picking/internal/core/domain/model/task"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStatsRepository implements StatsRepository using GORM.
type GormStatsRepository struct {
	db *gorm.DB
}

// NewGormStatsRepository creates a new GORM statistics repository.
func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

// ReplaceForTask deletes the existing records of a task and inserts the
// regenerated set. With a valid role only that role's records are touched;
// with task.RoleUnknown all of them. Runs within the caller's transaction,
// so the delete and the reinsert land together or not at all.
func (r *GormStatsRepository) ReplaceForTask(
	ctx context.Context,
	taskID kernel.UUID,
	role int,
	records []*stats.PerformanceRecord,
) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	deleteQuery := r.db.WithContext(ctx).Where("task_id = ?", taskID.Bytes())
	if task.Role(role).Validate() == nil {
		deleteQuery = deleteQuery.Where("role = ?", role)
	}
	if err := deleteQuery.Delete(&PerformanceRecordDTO{}).Error; err != nil {
		return err
	}

	if len(records) == 0 {
		return nil
	}

	dtos := make([]PerformanceRecordDTO, 0, len(records))
	for _, record := range records {
		if err := record.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, recordFromDomain(record))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetByTask retrieves the performance records of one task.
func (r *GormStatsRepository) GetByTask(
	ctx context.Context,
	taskID kernel.UUID,
) ([]*stats.PerformanceRecord, error) {
	if err := taskID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PerformanceRecordDTO
	err := r.db.WithContext(ctx).
		Order("role").
		Find(&dtos, "task_id = ?", taskID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	records := make([]*stats.PerformanceRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, recordErr := recordToDomain(dto)
		if recordErr != nil {
			return nil, recordErr
		}
		records = append(records, record)
	}

	return records, nil
}

// PointTotals sums awarded points per operator over [from, to).
func (r *GormStatsRepository) PointTotals(
	ctx context.Context,
	from, to time.Time,
) (map[kernel.UUID]float64, error) {
	rows, err := r.db.WithContext(ctx).
		Model(&PerformanceRecordDTO{}).
		Select("operator_id, SUM(order_points)").
		Where("recorded_at >= ? AND recorded_at < ?", from, to).
		Group("operator_id").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[kernel.UUID]float64)
	for rows.Next() {
		var id uuid.UUID
		var points float64

		if err = rows.Scan(&id, &points); err != nil {
			return nil, err
		}

		operatorID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		totals[operatorID] = points
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}

// UpsertRank stores a period rank, replacing any prior standing of the same
// operator and period.
func (r *GormStatsRepository) UpsertRank(ctx context.Context, rank *stats.PeriodRank) error {
	if err := rank.Validate(); err != nil {
		return err
	}

	dto := rankFromDomain(rank)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "operator_id"}, {Name: "period"}, {Name: "period_start"}},
			DoUpdates: clause.AssignmentColumns([]string{"points", "rank"}),
		}).
		Create(&dto).Error
}
