package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"picking/internal/core/application/usecases/commands"
	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/task"
	"picking/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTodayEfficiencyHandler(factory commands.StatsUoWFactory) commands.RecomputeTodayEfficiencyCommandHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return commands.NewRecomputeTodayEfficiencyCommandHandler(factory,
		services.NewPerformanceCalculator(collectedTestPolicy), logger)
}

// taskCompletedAt restores a collected task with an explicit completion time.
func taskCompletedAt(t *testing.T, shipmentID, collectorID kernel.UUID, completedAt time.Time) *task.Task {
	t.Helper()

	tl, err := task.RestoreTaskLine(kernel.NewUUID(), 5, 5, 0)
	require.NoError(t, err)

	startedAt := completedAt.Add(-5 * time.Minute)
	restored, err := task.RestoreTask(
		kernel.NewUUID(), shipmentID, kernel.Zone1,
		[]*task.TaskLine{tl},
		task.AwaitingCheck,
		&collectorID, nil, nil,
		&startedAt, &completedAt, nil,
	)
	require.NoError(t, err)
	return restored
}

func TestRecomputeTodayEfficiencyCommandHandler_Handle_ExcludesTasksCompletedBeforeMidnight(t *testing.T) {
	ctx := t.Context()

	now := time.Now().UTC()
	todayShipmentID := kernel.NewUUID()
	todayTask := taskCompletedAt(t, todayShipmentID, kernel.NewUUID(), now)
	staleTask := taskCompletedAt(t, kernel.NewUUID(), kernel.NewUUID(), now.Add(-48*time.Hour))

	cmd := commands.NewRecomputeTodayEfficiencyCommand()

	taskRepo := new(MockTaskRepository)
	statsRepo := new(MockStatsRepository)
	uow := new(MockStatsUoW)

	// One snapshot transaction plus one transaction for the task completed
	// today; the stale task never gets one.
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("TaskRepository").Return(taskRepo).Twice()
	uow.On("StatsRepository").Return(statsRepo).Once()
	uow.On("Commit", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()

	taskRepo.On("GetCompleted", ctx, 0).Return([]*task.Task{staleTask, todayTask}, nil).Once()
	taskRepo.On("Get", ctx, todayTask.ID()).Return(todayTask, nil).Once()
	taskRepo.On("GetByShipment", ctx, todayShipmentID).Return([]*task.Task{todayTask}, nil).Once()
	statsRepo.On("ReplaceForTask", ctx, todayTask.ID(), int(task.RoleUnknown),
		mock.AnythingOfType("[]*stats.PerformanceRecord")).Return(nil).Once()

	factory := new(MockStatsUoWFactory)
	factory.On("Create").Return(uow).Twice()

	result, err := newTodayEfficiencyHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.BatchResult{Updated: 1}, result)
	taskRepo.AssertNotCalled(t, "Get", ctx, staleTask.ID())

	taskRepo.AssertExpectations(t)
	statsRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRecomputeTodayEfficiencyCommandHandler_Handle_NothingCompletedToday(t *testing.T) {
	ctx := t.Context()

	staleTask := taskCompletedAt(t, kernel.NewUUID(), kernel.NewUUID(),
		time.Now().UTC().Add(-48*time.Hour))

	cmd := commands.NewRecomputeTodayEfficiencyCommand()

	taskRepo := new(MockTaskRepository)
	uow := new(MockStatsUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TaskRepository").Return(taskRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	taskRepo.On("GetCompleted", ctx, 0).Return([]*task.Task{staleTask}, nil).Once()

	factory := new(MockStatsUoWFactory)
	factory.On("Create").Return(uow).Once()

	result, err := newTodayEfficiencyHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.BatchResult{}, result)
	factory.AssertNumberOfCalls(t, "Create", 1)
}

func TestRecomputeTodayEfficiencyCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RecomputeTodayEfficiencyCommand{} // not constructed properly

	factory := new(MockStatsUoWFactory)
	_, err := newTodayEfficiencyHandler(factory).Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRecomputeTodayEfficiencyCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
