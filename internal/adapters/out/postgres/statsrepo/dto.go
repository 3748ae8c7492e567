// Package statsrepo provides data transfer objects and mapping functions for
// performance record and period rank persistence.
package statsrepo

import (
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/stats"
	"picking/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// PerformanceRecordDTO represents one scored task/role/operator combination.
type PerformanceRecordDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaskID          uuid.UUID `gorm:"type:uuid;not null;index"`
	ShipmentID      uuid.UUID `gorm:"type:uuid;not null;index"`
	OperatorID      uuid.UUID `gorm:"type:uuid;not null;index:idx_perf_operator_recorded"`
	Role            int       `gorm:"type:int;not null"`
	Positions       int       `gorm:"type:int;not null"`
	Units           int       `gorm:"type:int;not null"`
	ElapsedTimeSec  int64     `gorm:"type:bigint;not null"`
	PickTimeSec     int64     `gorm:"type:bigint;not null"`
	GapTimeSec      int64     `gorm:"type:bigint;not null"`
	WarehousesCount int       `gorm:"type:int;not null"`
	Switches        int       `gorm:"type:int;not null"`
	BasePoints      float64   `gorm:"type:double precision;not null"`
	Efficiency      float64   `gorm:"type:double precision;not null"`
	OrderPoints     float64   `gorm:"type:double precision;not null"`
	RecordedAt      time.Time `gorm:"type:timestamptz;not null;index:idx_perf_operator_recorded"`
}

// TableName specifies the database table name for performance records.
func (PerformanceRecordDTO) TableName() string {
	return "performance_records"
}

// PeriodRankDTO represents one operator's standing for one period. The
// composite primary key makes rank rebuilds natural upserts.
type PeriodRankDTO struct {
	OperatorID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Period      int       `gorm:"type:int;primaryKey"`
	PeriodStart time.Time `gorm:"type:timestamptz;primaryKey"`
	Points      float64   `gorm:"type:double precision;not null"`
	Rank        int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for period ranks.
func (PeriodRankDTO) TableName() string {
	return "period_ranks"
}

// recordFromDomain converts a performance record to its database
// representation.
func recordFromDomain(record *stats.PerformanceRecord) PerformanceRecordDTO {
	return PerformanceRecordDTO{
		ID:              record.ID().Bytes(),
		TaskID:          record.TaskID().Bytes(),
		ShipmentID:      record.ShipmentID().Bytes(),
		OperatorID:      record.OperatorID().Bytes(),
		Role:            int(record.Role()),
		Positions:       record.Positions(),
		Units:           record.Units(),
		ElapsedTimeSec:  record.ElapsedTimeSec(),
		PickTimeSec:     record.PickTimeSec(),
		GapTimeSec:      record.GapTimeSec(),
		WarehousesCount: record.WarehousesCount(),
		Switches:        record.Switches(),
		BasePoints:      record.BasePoints(),
		Efficiency:      record.Efficiency(),
		OrderPoints:     record.OrderPoints(),
		RecordedAt:      record.RecordedAt(),
	}
}

// recordToDomain converts a database DTO to a performance record using
// NewPerformanceRecord, re-validating every stored invariant on the way out.
func recordToDomain(dto PerformanceRecordDTO) (*stats.PerformanceRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	taskID, err := kernel.UUIDFromBytes(dto.TaskID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}
	operatorID, err := kernel.UUIDFromBytes(dto.OperatorID[:])
	if err != nil {
		return nil, err
	}

	return stats.NewPerformanceRecord(
		id, taskID, shipmentID, operatorID,
		task.Role(dto.Role),
		dto.Positions, dto.Units,
		dto.ElapsedTimeSec, dto.PickTimeSec, dto.GapTimeSec,
		dto.WarehousesCount, dto.Switches,
		dto.BasePoints, dto.Efficiency, dto.OrderPoints,
		dto.RecordedAt,
	)
}

// rankFromDomain converts a period rank to its database representation.
func rankFromDomain(rank *stats.PeriodRank) PeriodRankDTO {
	return PeriodRankDTO{
		OperatorID:  rank.OperatorID().Bytes(),
		Period:      int(rank.Period()),
		PeriodStart: rank.PeriodStart(),
		Points:      rank.Points(),
		Rank:        rank.Rank(),
	}
}
