package services

import (
	"sort"

	"picking/internal/core/domain/model/stats"
)

// RankCalculator turns aggregate point totals into 1-10 decile-percentile
// ranks for a scoring period.
//
// Nine boundaries (the 10th through 90th percentiles) are built over all
// strictly-positive totals of the period; a value's rank is the 1-based index
// of the first boundary it does not exceed, or 10 if it exceeds all of them.
// Values less than or equal to zero are excluded from the boundary
// computation and never receive a rank. A full run recomputes every rank of
// the period from scratch, which makes it idempotent and order-independent.
type RankCalculator struct{}

// NewRankCalculator creates a new RankCalculator instance.
func NewRankCalculator() RankCalculator {
	return RankCalculator{}
}

// Boundaries builds the nine decile boundaries over the strictly-positive
// values. Returns nil when no positive value exists.
func (RankCalculator) Boundaries(values []float64) []float64 {
	positive := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			positive = append(positive, v)
		}
	}
	if len(positive) == 0 {
		return nil
	}
	sort.Float64s(positive)

	boundaries := make([]float64, 0, stats.MaxRank-1)
	for decile := 1; decile < stats.MaxRank; decile++ {
		boundaries = append(boundaries, percentile(positive, float64(decile)*10))
	}
	return boundaries
}

// Rank returns the 1-10 standing of a positive value against the boundaries.
// Boundary membership is inclusive on the lower side: a value equal to the
// 50th-percentile boundary ranks 5. Non-positive values return 0 (unranked).
func (RankCalculator) Rank(value float64, boundaries []float64) int {
	if value <= 0 || len(boundaries) == 0 {
		return 0
	}
	for i, boundary := range boundaries {
		if value <= boundary {
			return i + 1
		}
	}
	return stats.MaxRank
}

// percentile computes the p-th percentile of sorted values with linear
// interpolation between closest ranks.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := p / 100 * float64(len(sorted)-1)
	lower := int(pos)
	if lower >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}

	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}
