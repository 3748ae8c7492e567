package commands_test

import (
	"context"
	"testing"
	"time"

	"picking/internal/core/application/usecases/commands"
	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/stats"
	"picking/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatsUoW struct{ mock.Mock }

func (m *MockStatsUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatsUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatsUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatsUoW) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}

func (m *MockStatsUoW) StatsRepository() ports.StatsRepository {
	args := m.Called()
	return args.Get(0).(ports.StatsRepository)
}

type MockStatsUoWFactory struct{ mock.Mock }

func (m *MockStatsUoWFactory) Create() commands.StatsUoW {
	args := m.Called()
	return args.Get(0).(commands.StatsUoW)
}

func TestRecomputeRanksCommandHandler_Handle_RanksAllOperators(t *testing.T) {
	ctx := t.Context()

	totals := make(map[kernel.UUID]float64, 10)
	for points := 10.0; points <= 100.0; points += 10.0 {
		totals[kernel.NewUUID()] = points
	}

	cmd, err := commands.NewRecomputeRanksCommand(stats.PeriodDay)
	require.NoError(t, err)

	statsRepo := new(MockStatsRepository)
	uow := new(MockStatsUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StatsRepository").Return(statsRepo).Once()
	statsRepo.On("PointTotals", ctx, mock.AnythingOfType("time.Time"),
		mock.AnythingOfType("time.Time")).Return(totals, nil).Once()
	statsRepo.On("UpsertRank", ctx, mock.AnythingOfType("*stats.PeriodRank")).
		Return(nil).Times(10)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStatsUoWFactory)
	factory.On("Create").Return(uow).Once()

	result, err := commands.NewRecomputeRanksCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.BatchResult{Updated: 10}, result)

	// The window passed to PointTotals is the current UTC day.
	from := statsRepo.Calls[0].Arguments[1].(time.Time)
	to := statsRepo.Calls[0].Arguments[2].(time.Time)
	assert.Equal(t, stats.PeriodDay.Truncate(time.Now().UTC()), from)
	assert.Equal(t, from.AddDate(0, 0, 1), to)

	// Ten equally spaced totals spread exactly over the ten ranks.
	seen := make(map[int]bool, 10)
	dayStart := stats.PeriodDay.Truncate(time.Now().UTC())
	for _, call := range statsRepo.Calls[1:] {
		rank := call.Arguments[1].(*stats.PeriodRank)
		assert.Equal(t, stats.PeriodDay, rank.Period())
		assert.Equal(t, dayStart, rank.PeriodStart())
		assert.InDelta(t, totals[rank.OperatorID()], rank.Points(), 1e-9)
		seen[rank.Rank()] = true
	}
	assert.Len(t, seen, 10)

	statsRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRecomputeRanksCommandHandler_Handle_SkipsOperatorsWithoutPoints(t *testing.T) {
	ctx := t.Context()

	totals := map[kernel.UUID]float64{
		kernel.NewUUID(): 42.0,
		kernel.NewUUID(): 0.0,
		kernel.NewUUID(): -3.0,
	}

	cmd, err := commands.NewRecomputeRanksCommand(stats.PeriodMonth)
	require.NoError(t, err)

	statsRepo := new(MockStatsRepository)
	uow := new(MockStatsUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StatsRepository").Return(statsRepo).Once()
	statsRepo.On("PointTotals", ctx, mock.AnythingOfType("time.Time"),
		mock.AnythingOfType("time.Time")).Return(totals, nil).Once()
	statsRepo.On("UpsertRank", ctx, mock.AnythingOfType("*stats.PeriodRank")).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStatsUoWFactory)
	factory.On("Create").Return(uow).Once()

	result, err := commands.NewRecomputeRanksCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.BatchResult{Updated: 1, Skipped: 2}, result)

	// A single positive total is its own distribution and lands in rank 1.
	rank := statsRepo.Calls[1].Arguments[1].(*stats.PeriodRank)
	assert.Equal(t, 1, rank.Rank())
	assert.InDelta(t, 42.0, rank.Points(), 1e-9)
}

func TestRecomputeRanksCommandHandler_Handle_EmptyWindow(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRecomputeRanksCommand(stats.PeriodDay)
	require.NoError(t, err)

	statsRepo := new(MockStatsRepository)
	uow := new(MockStatsUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StatsRepository").Return(statsRepo).Once()
	statsRepo.On("PointTotals", ctx, mock.AnythingOfType("time.Time"),
		mock.AnythingOfType("time.Time")).Return(map[kernel.UUID]float64{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockStatsUoWFactory)
	factory.On("Create").Return(uow).Once()

	result, err := commands.NewRecomputeRanksCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.BatchResult{}, result)
	statsRepo.AssertNotCalled(t, "UpsertRank")
}

func TestRecomputeRanksCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RecomputeRanksCommand{} // not constructed properly

	factory := new(MockStatsUoWFactory)
	_, err := commands.NewRecomputeRanksCommandHandler(factory).Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRecomputeRanksCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
