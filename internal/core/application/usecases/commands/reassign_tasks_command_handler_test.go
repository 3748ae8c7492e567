package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"picking/internal/core/application/usecases/commands"
	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/stats"
	"picking/internal/core/domain/model/task"
	"picking/internal/core/domain/services"
	"picking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReassignHandler(factory commands.LifecycleUoWFactory) commands.ReassignTasksCommandHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return commands.NewReassignTasksCommandHandler(factory,
		services.NewPerformanceCalculator(collectedTestPolicy), logger)
}

func TestReassignTasksCommandHandler_Handle_RewritesCollector(t *testing.T) {
	ctx := t.Context()

	shipmentID := kernel.NewUUID()
	oldCollector := kernel.NewUUID()
	newCollector := kernel.NewUUID()
	testTask := collectedTask(t, shipmentID, oldCollector)
	completedAt := *testTask.CompletedAt()

	cmd, err := commands.NewReassignTasksCommand(
		[]kernel.UUID{testTask.ID()}, &newCollector, nil, nil)
	require.NoError(t, err)

	taskRepo := new(MockTaskRepository)
	statsRepo := new(MockStatsRepository)
	uow := new(MockLifecycleUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("Get", ctx, testTask.ID()).Return(testTask, nil).Once(),
		taskRepo.On("Update", ctx, testTask).Return(nil).Once(),
		taskRepo.On("GetByShipment", ctx, shipmentID).Return([]*task.Task{testTask}, nil).Once(),
		uow.On("StatsRepository").Return(statsRepo).Once(),
		statsRepo.On("ReplaceForTask", ctx, testTask.ID(), int(task.RoleUnknown),
			mock.AnythingOfType("[]*stats.PerformanceRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	result, err := newReassignHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.BatchResult{Updated: 1}, result)

	// Work is re-attributed without touching progress or timestamps.
	require.NotNil(t, testTask.Collector())
	assert.True(t, testTask.Collector().IsEqual(newCollector))
	assert.Equal(t, task.AwaitingCheck, testTask.Status())
	assert.Equal(t, completedAt, *testTask.CompletedAt())

	records := statsRepo.Calls[0].Arguments[3].([]*stats.PerformanceRecord)
	require.Len(t, records, 1)
	assert.True(t, records[0].OperatorID().IsEqual(newCollector))

	taskRepo.AssertExpectations(t)
	statsRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReassignTasksCommandHandler_Handle_FailureDoesNotAbortBatch(t *testing.T) {
	ctx := t.Context()

	shipmentID := kernel.NewUUID()
	newCollector := kernel.NewUUID()
	missingID := kernel.NewUUID()
	testTask := collectedTask(t, shipmentID, kernel.NewUUID())

	cmd, err := commands.NewReassignTasksCommand(
		[]kernel.UUID{missingID, testTask.ID()}, &newCollector, nil, nil)
	require.NoError(t, err)

	taskRepo := new(MockTaskRepository)
	statsRepo := new(MockStatsRepository)

	failingUow := new(MockLifecycleUoW)
	failingUow.On("Begin", ctx).Return(nil).Once()
	failingUow.On("TaskRepository").Return(taskRepo).Once()
	failingUow.On("Rollback", ctx).Return(nil).Once()

	uow := new(MockLifecycleUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TaskRepository").Return(taskRepo).Once()
	uow.On("StatsRepository").Return(statsRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	taskRepo.On("Get", ctx, missingID).Return(nil, errs.ErrObjectNotFound).Once()
	taskRepo.On("Get", ctx, testTask.ID()).Return(testTask, nil).Once()
	taskRepo.On("Update", ctx, testTask).Return(nil).Once()
	taskRepo.On("GetByShipment", ctx, shipmentID).Return([]*task.Task{testTask}, nil).Once()
	statsRepo.On("ReplaceForTask", ctx, testTask.ID(), int(task.RoleUnknown),
		mock.AnythingOfType("[]*stats.PerformanceRecord")).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(failingUow).Once(),
		factory.On("Create").Return(uow).Once(),
	)

	result, err := newReassignHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.BatchResult{Updated: 1, Errored: 1}, result)
	failingUow.AssertNotCalled(t, "Commit")
}

func TestReassignTasksCommandHandler_Handle_UnscorableTaskIsSkipped(t *testing.T) {
	ctx := t.Context()

	newChecker := kernel.NewUUID()
	testTask := unassignedTask(t)
	shipmentID := testTask.ShipmentID()

	cmd, err := commands.NewReassignTasksCommand(
		[]kernel.UUID{testTask.ID()}, nil, &newChecker, nil)
	require.NoError(t, err)

	taskRepo := new(MockTaskRepository)
	statsRepo := new(MockStatsRepository)
	uow := new(MockLifecycleUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("Get", ctx, testTask.ID()).Return(testTask, nil).Once(),
		taskRepo.On("Update", ctx, testTask).Return(nil).Once(),
		taskRepo.On("GetByShipment", ctx, shipmentID).Return([]*task.Task{testTask}, nil).Once(),
		uow.On("StatsRepository").Return(statsRepo).Once(),
		statsRepo.On("ReplaceForTask", ctx, testTask.ID(), int(task.RoleUnknown),
			mock.AnythingOfType("[]*stats.PerformanceRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	result, err := newReassignHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.BatchResult{Skipped: 1}, result)

	// No scorable timestamps yet, so the task's records are wiped.
	records := statsRepo.Calls[0].Arguments[3].([]*stats.PerformanceRecord)
	assert.Empty(t, records)
}

func TestReassignTasksCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReassignTasksCommand{} // not constructed properly

	factory := new(MockLifecycleUoWFactory)
	_, err := newReassignHandler(factory).Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrReassignTasksCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
