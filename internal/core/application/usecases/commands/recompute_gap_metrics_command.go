package commands

import (
	"errors"
	"fmt"

	"picking/internal/pkg/errs"
	"picking/internal/pkg/guard"
)

var ErrRecomputeGapMetricsCommandIsNotConstructed = errors.New(
	"RecomputeGapMetricsCommand must be created via NewRecomputeGapMetricsCommand constructor",
)

// RecomputeGapMetricsCommand regenerates the performance records of recently
// completed tasks, refreshing the shipment-scoped elapsed and gap metrics
// that shift as sibling tasks of the same shipment finish.
type RecomputeGapMetricsCommand struct {
	limit int

	guard guard.ConstructorGuard
}

// NewRecomputeGapMetricsCommand creates a validated recomputation command.
// limit bounds how many completed tasks one run touches; 0 means no bound.
func NewRecomputeGapMetricsCommand(limit int) (RecomputeGapMetricsCommand, error) {
	if limit < 0 {
		return RecomputeGapMetricsCommand{}, errs.NewValueIsInvalidErrorWithCause("limit is invalid",
			fmt.Errorf("%d is negative", limit))
	}

	return RecomputeGapMetricsCommand{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Limit returns the maximum number of tasks to process.
func (c RecomputeGapMetricsCommand) Limit() int {
	return c.limit
}

// Validate ensures the command was created through the constructor.
func (c RecomputeGapMetricsCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeGapMetricsCommandIsNotConstructed)
}
