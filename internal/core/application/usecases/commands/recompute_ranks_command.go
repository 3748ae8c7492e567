package commands

import (
	"errors"

	"picking/internal/core/domain/model/stats"
	"picking/internal/pkg/guard"
)

var ErrRecomputeRanksCommandIsNotConstructed = errors.New(
	"RecomputeRanksCommand must be created via NewRecomputeRanksCommand constructor",
)

// RecomputeRanksCommand rebuilds every operator's decile-percentile rank for
// the current period from scratch.
type RecomputeRanksCommand struct {
	period stats.Period

	guard guard.ConstructorGuard
}

// NewRecomputeRanksCommand creates a validated rank recomputation command.
func NewRecomputeRanksCommand(period stats.Period) (RecomputeRanksCommand, error) {
	if err := period.Validate(); err != nil {
		return RecomputeRanksCommand{}, err
	}

	return RecomputeRanksCommand{
		period: period,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Period returns the aggregation window being ranked.
func (c RecomputeRanksCommand) Period() stats.Period {
	return c.period
}

// Validate ensures the command was created through the constructor.
func (c RecomputeRanksCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeRanksCommandIsNotConstructed)
}
