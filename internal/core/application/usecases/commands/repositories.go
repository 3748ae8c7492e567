// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"picking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// TaskRepoFactory provides access to the task repository within a transaction.
	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	// LockRepoFactory provides access to the lock repository within a transaction.
	LockRepoFactory interface {
		LockRepository() ports.LockRepository
	}

	// StatsRepoFactory provides access to the statistics repository within a transaction.
	StatsRepoFactory interface {
		StatsRepository() ports.StatsRepository
	}

	// IngestUoW manages transactions for shipment ingestion: the shipment
	// and its freshly split tasks are persisted atomically.
	IngestUoW interface {
		TxManager
		ShipmentRepoFactory
		TaskRepoFactory
	}

	// IngestUoWFactory creates new ingestion unit of work instances.
	IngestUoWFactory interface {
		Create() IngestUoW
	}

	// LockUoW manages transactions for lock operations. The lock row and the
	// task's collector assignment always change together.
	LockUoW interface {
		TxManager
		TaskRepoFactory
		LockRepoFactory
	}

	// LockUoWFactory creates new lock unit of work instances.
	LockUoWFactory interface {
		Create() LockUoW
	}

	// LifecycleUoW manages transactions for task lifecycle transitions,
	// which touch the task, its lock, the derived shipment status and the
	// regenerated performance records.
	LifecycleUoW interface {
		TxManager
		ShipmentRepoFactory
		TaskRepoFactory
		LockRepoFactory
		StatsRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// StatsUoW manages transactions for statistics recomputation.
	StatsUoW interface {
		TxManager
		TaskRepoFactory
		StatsRepoFactory
	}

	// StatsUoWFactory creates new statistics unit of work instances.
	StatsUoWFactory interface {
		Create() StatsUoW
	}
)
