package lockrepo

import (
	"context"
	"errors"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/lock"
	"picking/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the PostgreSQL error code raised when an insert hits an
// existing primary key.
const uniqueViolation = "23505"

// GormLockRepository implements LockRepository using GORM.
//
// Acquisition atomicity rests on two database guarantees: Get takes a
// row-level lock inside the surrounding transaction, serializing concurrent
// acquirers of the same task, and the primary key on task_id turns the one
// race Get cannot see (two acquirers both finding no row) into a unique
// violation surfaced as a Conflict.
type GormLockRepository struct {
	db *gorm.DB
}

// NewGormLockRepository creates a new GORM lock repository.
func NewGormLockRepository(db *gorm.DB) *GormLockRepository {
	return &GormLockRepository{db: db}
}

// Add persists a new lock. A concurrent lock on the same task surfaces as a
// Conflict error.
func (r *GormLockRepository) Add(ctx context.Context, aggregate *lock.Lock) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewConflictErrorWithCause("lock",
				"task "+aggregate.TaskID().String()+" is already locked", err)
		}
		return err
	}

	return nil
}

// Update persists the advanced heartbeat or changed ownership of a lock.
func (r *GormLockRepository) Update(ctx context.Context, aggregate *lock.Lock) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LockDTO{}).
		Where("task_id = ?", dto.TaskID).
		Select("operator_id", "acquired_at", "last_heartbeat").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("lock", aggregate.TaskID().String())
	}

	return nil
}

// Get retrieves the lock of a task, taking a FOR UPDATE row lock so that
// concurrent acquire and release attempts for the same task queue up behind
// the surrounding transaction.
func (r *GormLockRepository) Get(ctx context.Context, taskID kernel.UUID) (*lock.Lock, error) {
	if err := taskID.Validate(); err != nil {
		return nil, err
	}

	var dto LockDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "task_id = ?", taskID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lock", taskID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the lock of a task. Deleting an absent lock is not an error.
func (r *GormLockRepository) Delete(ctx context.Context, taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&LockDTO{}, "task_id = ?", taskID.Bytes()).Error
}
