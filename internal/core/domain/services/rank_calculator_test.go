package services_test

import (
	"testing"

	"picking/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCalculator_Boundaries(t *testing.T) {
	calculator := services.NewRankCalculator()

	t.Run("should build nine ascending boundaries", func(t *testing.T) {
		values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

		boundaries := calculator.Boundaries(values)

		require.Len(t, boundaries, 9)
		for i := 1; i < len(boundaries); i++ {
			assert.LessOrEqual(t, boundaries[i-1], boundaries[i])
		}
		// 10 evenly spaced values: the median interpolates to 55.
		assert.InDelta(t, 55.0, boundaries[4], 1e-9)
	})

	t.Run("should exclude non-positive totals", func(t *testing.T) {
		withNoise := calculator.Boundaries([]float64{0, -5, 10, 20, 30})
		clean := calculator.Boundaries([]float64{10, 20, 30})

		assert.Equal(t, clean, withNoise)
	})

	t.Run("should return nil when no positive total exists", func(t *testing.T) {
		assert.Nil(t, calculator.Boundaries([]float64{0, -1}))
		assert.Nil(t, calculator.Boundaries(nil))
	})

	t.Run("should collapse a single value to flat boundaries", func(t *testing.T) {
		boundaries := calculator.Boundaries([]float64{42})

		require.Len(t, boundaries, 9)
		for _, b := range boundaries {
			assert.InDelta(t, 42.0, b, 1e-9)
		}
	})
}

func TestRankCalculator_Rank(t *testing.T) {
	calculator := services.NewRankCalculator()
	values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	boundaries := calculator.Boundaries(values)

	t.Run("should rank the smallest total in the first decile", func(t *testing.T) {
		assert.Equal(t, 1, calculator.Rank(10, boundaries))
	})

	t.Run("should rank the largest total in the top decile", func(t *testing.T) {
		assert.Equal(t, 10, calculator.Rank(100, boundaries))
		assert.Equal(t, 10, calculator.Rank(1000, boundaries))
	})

	t.Run("should include a value equal to a boundary in that decile", func(t *testing.T) {
		assert.Equal(t, 5, calculator.Rank(boundaries[4], boundaries))
	})

	t.Run("should not rank non-positive totals", func(t *testing.T) {
		assert.Equal(t, 0, calculator.Rank(0, boundaries))
		assert.Equal(t, 0, calculator.Rank(-10, boundaries))
	})

	t.Run("should not rank against empty boundaries", func(t *testing.T) {
		assert.Equal(t, 0, calculator.Rank(50, nil))
	})

	t.Run("should be monotonic in the total", func(t *testing.T) {
		previous := 0
		for v := 1.0; v <= 110; v++ {
			rank := calculator.Rank(v, boundaries)
			assert.GreaterOrEqual(t, rank, previous)
			previous = rank
		}
	})
}
