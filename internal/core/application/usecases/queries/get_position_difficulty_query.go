package queries

import (
	"errors"
	"fmt"

	"picking/internal/pkg/errs"
	"picking/internal/pkg/guard"
)

var ErrGetPositionDifficultyQueryIsNotConstructed = errors.New(
	"GetPositionDifficultyQuery must be created via NewGetPositionDifficultyQuery constructor",
)

// GetPositionDifficultyQuery retrieves the average pick rate per SKU over
// every completed task that contained it. Positions that consistently take
// longer per unit than the norm are candidates for relocation or repack.
type GetPositionDifficultyQuery struct {
	minSamples int

	guard guard.ConstructorGuard
}

// NewGetPositionDifficultyQuery creates a validated difficulty query.
// minSamples filters out SKUs with too few completed picks to judge.
func NewGetPositionDifficultyQuery(minSamples int) (GetPositionDifficultyQuery, error) {
	if minSamples < 1 {
		return GetPositionDifficultyQuery{}, errs.NewValueIsInvalidErrorWithCause("min samples is invalid",
			fmt.Errorf("%d is not greater than 0", minSamples))
	}

	return GetPositionDifficultyQuery{
		minSamples: minSamples,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// MinSamples returns the minimum completed-pick count per SKU.
func (q GetPositionDifficultyQuery) MinSamples() int {
	return q.minSamples
}

// Validate ensures the query was created through the constructor.
func (q GetPositionDifficultyQuery) Validate() error {
	return q.guard.Validate(ErrGetPositionDifficultyQueryIsNotConstructed)
}

// GetPositionDifficultyQueryResponse is one SKU's observed pick rate.
type GetPositionDifficultyQueryResponse struct {
	SKU           string
	Name          string
	Samples       int
	AvgSecPerUnit float64
}
