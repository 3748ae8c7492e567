// Package taskrepo provides data transfer objects and mapping functions for
// task persistence. It implements the repository pattern for the task
// aggregate, converting between domain entities and database rows.
package taskrepo

import (
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for persisting task aggregates.
type TaskDTO struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID     `gorm:"type:uuid;not null;index"`
	Zone        int           `gorm:"type:int;not null;index"`
	Status      int           `gorm:"type:int;not null;index"`
	CollectorID *uuid.UUID    `gorm:"type:uuid;index"`
	CheckerID   *uuid.UUID    `gorm:"type:uuid;index"`
	DictatorID  *uuid.UUID    `gorm:"type:uuid"`
	StartedAt   *time.Time    `gorm:"type:timestamptz"`
	CompletedAt *time.Time    `gorm:"type:timestamptz;index"`
	ConfirmedAt *time.Time    `gorm:"type:timestamptz"`
	Lines       []TaskLineDTO `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for task entities.
func (TaskDTO) TableName() string {
	return "tasks"
}

// TaskLineDTO links one shipment line into a task with its quantity progress.
type TaskLineDTO struct {
	TaskID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity          int       `gorm:"type:int;not null"`
	CollectedQuantity int       `gorm:"type:int;not null;default:0"`
	ConfirmedQuantity int       `gorm:"type:int;not null;default:0"`
}

// TableName specifies the database table name for task line entities.
func (TaskLineDTO) TableName() string {
	return "task_lines"
}

// fromDomain converts a task aggregate to its database representation.
func fromDomain(aggregate *task.Task) TaskDTO {
	taskID := aggregate.ID().Bytes()
	lines := make([]TaskLineDTO, 0, len(aggregate.Lines()))

	for _, tl := range aggregate.Lines() {
		lines = append(lines, TaskLineDTO{
			TaskID:            taskID,
			LineID:            tl.LineID().Bytes(),
			Quantity:          tl.Quantity(),
			CollectedQuantity: tl.CollectedQuantity(),
			ConfirmedQuantity: tl.ConfirmedQuantity(),
		})
	}

	return TaskDTO{
		ID:          taskID,
		ShipmentID:  aggregate.ShipmentID().Bytes(),
		Zone:        int(aggregate.Zone()),
		Status:      int(aggregate.Status()),
		CollectorID: optionalID(aggregate.Collector()),
		CheckerID:   optionalID(aggregate.Checker()),
		DictatorID:  optionalID(aggregate.Dictator()),
		StartedAt:   aggregate.StartedAt(),
		CompletedAt: aggregate.CompletedAt(),
		ConfirmedAt: aggregate.ConfirmedAt(),
		Lines:       lines,
	}
}

// toDomain converts a database DTO to a task aggregate using RestoreTask.
func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*task.TaskLine, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		tl, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, tl)
	}

	collectorID, err := optionalDomainID(dto.CollectorID)
	if err != nil {
		return nil, err
	}
	checkerID, err := optionalDomainID(dto.CheckerID)
	if err != nil {
		return nil, err
	}
	dictatorID, err := optionalDomainID(dto.DictatorID)
	if err != nil {
		return nil, err
	}

	return task.RestoreTask(
		id,
		shipmentID,
		kernel.Zone(dto.Zone),
		lines,
		task.Status(dto.Status),
		collectorID,
		checkerID,
		dictatorID,
		dto.StartedAt,
		dto.CompletedAt,
		dto.ConfirmedAt,
	)
}

func lineToDomain(dto TaskLineDTO) (*task.TaskLine, error) {
	lineID, err := kernel.UUIDFromBytes(dto.LineID[:])
	if err != nil {
		return nil, err
	}

	return task.RestoreTaskLine(lineID, dto.Quantity, dto.CollectedQuantity, dto.ConfirmedQuantity)
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalDomainID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
