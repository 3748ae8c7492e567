package commands

import (
	"errors"

	"picking/internal/pkg/guard"
)

var ErrRecomputeTodayEfficiencyCommandIsNotConstructed = errors.New(
	"RecomputeTodayEfficiencyCommand must be created via NewRecomputeTodayEfficiencyCommand constructor",
)

// RecomputeTodayEfficiencyCommand regenerates the performance records of
// every task completed since UTC midnight, refreshing the efficiency and
// point figures after administrative quantity corrections.
type RecomputeTodayEfficiencyCommand struct {
	guard guard.ConstructorGuard
}

// NewRecomputeTodayEfficiencyCommand creates the recomputation command.
func NewRecomputeTodayEfficiencyCommand() RecomputeTodayEfficiencyCommand {
	return RecomputeTodayEfficiencyCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RecomputeTodayEfficiencyCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeTodayEfficiencyCommandIsNotConstructed)
}
