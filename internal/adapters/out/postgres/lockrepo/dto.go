// Package lockrepo provides data transfer objects and mapping functions for
// task lock persistence. The locks table is the arbiter of lock uniqueness:
// its primary key on task_id makes concurrent acquisition races impossible
// to win twice.
package lockrepo

import (
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/lock"

	"github.com/google/uuid"
)

// LockDTO represents the database structure for persisting task locks.
// One row per locked task; the primary key carries the uniqueness invariant.
type LockDTO struct {
	TaskID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OperatorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AcquiredAt    time.Time `gorm:"type:timestamptz;not null"`
	LastHeartbeat time.Time `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for lock entities.
func (LockDTO) TableName() string {
	return "locks"
}

// fromDomain converts a lock aggregate to its database representation.
func fromDomain(aggregate *lock.Lock) LockDTO {
	return LockDTO{
		TaskID:        aggregate.TaskID().Bytes(),
		OperatorID:    aggregate.OperatorID().Bytes(),
		AcquiredAt:    aggregate.AcquiredAt(),
		LastHeartbeat: aggregate.LastHeartbeat(),
	}
}

// toDomain converts a database DTO to a lock aggregate using RestoreLock.
func toDomain(dto LockDTO) (*lock.Lock, error) {
	taskID, err := kernel.UUIDFromBytes(dto.TaskID[:])
	if err != nil {
		return nil, err
	}

	operatorID, err := kernel.UUIDFromBytes(dto.OperatorID[:])
	if err != nil {
		return nil, err
	}

	return lock.RestoreLock(taskID, operatorID, dto.AcquiredAt, dto.LastHeartbeat)
}
