package cmd

import (
	"log/slog"
	"time"

	"picking/internal/adapters/out/postgres"
	"picking/internal/core/application/usecases/commands"
	"picking/internal/core/application/usecases/queries"
	"picking/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	classifier services.WarehouseClassifier
	splitter   services.TaskSplitter
	calculator services.PerformanceCalculator

	logger *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		classifier: services.NewWarehouseClassifier(logger),
		splitter:   services.NewTaskSplitter(),
		calculator: services.NewPerformanceCalculator(services.ScoringPolicy{
			NormSecondsPerUnit: config.NormSecondsPerUnit,
			PositionPoints:     config.PositionPoints,
			UnitPoints:         config.UnitPoints,
		}),
		logger: logger,
	}
}

func (c *CompositionRoot) CreateIngestShipmentCommandHandler() commands.IngestShipmentCommandHandler {
	var f commands.IngestUoWFactory = FuncIngestUoWFactory(func() commands.IngestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIngestShipmentCommandHandler(f, c.classifier, c.splitter, c.config.MaxLinesPerTask)
}

func (c *CompositionRoot) CreateAcquireLockCommandHandler() commands.AcquireLockCommandHandler {
	timeout := time.Duration(c.config.LockTimeoutSec) * time.Second
	return commands.NewAcquireLockCommandHandler(c.lockUoWFactory(), timeout)
}

func (c *CompositionRoot) CreateHeartbeatLockCommandHandler() commands.HeartbeatLockCommandHandler {
	return commands.NewHeartbeatLockCommandHandler(c.lockUoWFactory())
}

func (c *CompositionRoot) CreateReleaseLockCommandHandler() commands.ReleaseLockCommandHandler {
	return commands.NewReleaseLockCommandHandler(c.lockUoWFactory())
}

func (c *CompositionRoot) CreateMarkTaskCollectedCommandHandler() commands.MarkTaskCollectedCommandHandler {
	return commands.NewMarkTaskCollectedCommandHandler(c.lifecycleUoWFactory(), c.calculator)
}

func (c *CompositionRoot) CreateConfirmTaskCommandHandler() commands.ConfirmTaskCommandHandler {
	return commands.NewConfirmTaskCommandHandler(c.lifecycleUoWFactory(), c.calculator)
}

func (c *CompositionRoot) CreateReassignTasksCommandHandler() commands.ReassignTasksCommandHandler {
	return commands.NewReassignTasksCommandHandler(c.lifecycleUoWFactory(), c.calculator, c.logger)
}

func (c *CompositionRoot) CreateAdminResetTaskCommandHandler() commands.AdminResetTaskCommandHandler {
	return commands.NewAdminResetTaskCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateHardDeleteShipmentCommandHandler() commands.HardDeleteShipmentCommandHandler {
	return commands.NewHardDeleteShipmentCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateRecomputeGapMetricsCommandHandler() commands.RecomputeGapMetricsCommandHandler {
	return commands.NewRecomputeGapMetricsCommandHandler(c.statsUoWFactory(), c.calculator, c.logger)
}

func (c *CompositionRoot) CreateRecomputeRanksCommandHandler() commands.RecomputeRanksCommandHandler {
	return commands.NewRecomputeRanksCommandHandler(c.statsUoWFactory())
}

func (c *CompositionRoot) CreateRecomputeTodayEfficiencyCommandHandler() commands.RecomputeTodayEfficiencyCommandHandler {
	return commands.NewRecomputeTodayEfficiencyCommandHandler(c.statsUoWFactory(), c.calculator, c.logger)
}

func (c *CompositionRoot) CreateGetOperatorPerformanceQueryHandler() queries.GetOperatorPerformanceQueryHandler {
	return queries.NewGetOperatorPerformanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetZoneActiveTasksQueryHandler() queries.GetZoneActiveTasksQueryHandler {
	return queries.NewGetZoneActiveTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPositionDifficultyQueryHandler() queries.GetPositionDifficultyQueryHandler {
	return queries.NewGetPositionDifficultyQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentProgressQueryHandler() queries.GetShipmentProgressQueryHandler {
	return queries.NewGetShipmentProgressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) lockUoWFactory() commands.LockUoWFactory {
	return FuncLockUoWFactory(func() commands.LockUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) lifecycleUoWFactory() commands.LifecycleUoWFactory {
	return FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) statsUoWFactory() commands.StatsUoWFactory {
	return FuncStatsUoWFactory(func() commands.StatsUoW {
		return c.uowFactory.Create()
	})
}

type FuncIngestUoWFactory func() commands.IngestUoW

func (f FuncIngestUoWFactory) Create() commands.IngestUoW {
	return f()
}

type FuncLockUoWFactory func() commands.LockUoW

func (f FuncLockUoWFactory) Create() commands.LockUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncStatsUoWFactory func() commands.StatsUoW

func (f FuncStatsUoWFactory) Create() commands.StatsUoW {
	return f()
}
