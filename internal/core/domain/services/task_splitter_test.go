package services_test

import (
	"fmt"
	"testing"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/shipment"
	"picking/internal/core/domain/model/task"
	"picking/internal/core/domain/services"
	"picking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLines(t *testing.T, zone kernel.Zone, count int) []*shipment.Line {
	t.Helper()
	lines := make([]*shipment.Line, 0, count)
	for i := 0; i < count; i++ {
		line, err := shipment.NewLine(
			kernel.NewUUID(),
			fmt.Sprintf("SKU-%d", i),
			fmt.Sprintf("Item %d", i),
			i+1,
			"pcs",
			"Б-14",
			zone,
		)
		require.NoError(t, err)
		lines = append(lines, line)
	}
	return lines
}

func TestTaskSplitter_Split(t *testing.T) {
	splitter := services.NewTaskSplitter()
	shipmentID := kernel.NewUUID()

	t.Run("should split oversized zone into bounded tasks", func(t *testing.T) {
		lines := makeLines(t, kernel.Zone1, 40)

		tasks, err := splitter.Split(shipmentID, lines, 35)

		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Len(t, tasks[0].Lines(), 35)
		assert.Len(t, tasks[1].Lines(), 5)
	})

	t.Run("should keep a zone at the bound in one task", func(t *testing.T) {
		lines := makeLines(t, kernel.Zone2, 35)

		tasks, err := splitter.Split(shipmentID, lines, 35)

		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Len(t, tasks[0].Lines(), 35)
	})

	t.Run("should create one task per zone", func(t *testing.T) {
		lines := append(makeLines(t, kernel.Zone1, 3), makeLines(t, kernel.Zone2, 2)...)
		lines = append(lines, makeLines(t, kernel.Zone3, 1)...)

		tasks, err := splitter.Split(shipmentID, lines, 35)

		require.NoError(t, err)
		require.Len(t, tasks, 3)

		byZone := make(map[kernel.Zone]*task.Task)
		for _, tk := range tasks {
			assert.Equal(t, shipmentID, tk.ShipmentID())
			assert.Equal(t, task.Unassigned, tk.Status())
			byZone[tk.Zone()] = tk
		}
		assert.Len(t, byZone[kernel.Zone1].Lines(), 3)
		assert.Len(t, byZone[kernel.Zone2].Lines(), 2)
		assert.Len(t, byZone[kernel.Zone3].Lines(), 1)
	})

	t.Run("should conserve every line and its full quantity", func(t *testing.T) {
		lines := append(makeLines(t, kernel.Zone1, 50), makeLines(t, kernel.Zone2, 17)...)

		tasks, err := splitter.Split(shipmentID, lines, 10)

		require.NoError(t, err)

		orderedQty := 0
		for _, line := range lines {
			orderedQty += line.Quantity()
		}

		seen := make(map[kernel.UUID]int)
		assignedQty := 0
		for _, tk := range tasks {
			require.NotEmpty(t, tk.Lines())
			for _, tl := range tk.Lines() {
				seen[tl.LineID()]++
				assignedQty += tl.Quantity()
			}
		}

		assert.Len(t, seen, len(lines), "every line lands in a task")
		for lineID, count := range seen {
			assert.Equal(t, 1, count, "line %s must appear in exactly one task", lineID)
		}
		assert.Equal(t, orderedQty, assignedQty, "quantity is conserved")
	})

	t.Run("should preserve line order within a zone", func(t *testing.T) {
		lines := makeLines(t, kernel.Zone1, 7)

		tasks, err := splitter.Split(shipmentID, lines, 3)

		require.NoError(t, err)
		require.Len(t, tasks, 3)

		flat := make([]kernel.UUID, 0, len(lines))
		for _, tk := range tasks {
			for _, tl := range tk.Lines() {
				flat = append(flat, tl.LineID())
			}
		}
		require.Len(t, flat, len(lines))
		for i, line := range lines {
			assert.Equal(t, line.ID(), flat[i])
		}
	})

	t.Run("should return no tasks for no lines", func(t *testing.T) {
		tasks, err := splitter.Split(shipmentID, nil, 35)

		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("should reject a non-positive bound", func(t *testing.T) {
		lines := makeLines(t, kernel.Zone1, 1)

		_, err := splitter.Split(shipmentID, lines, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an invalid shipment id", func(t *testing.T) {
		lines := makeLines(t, kernel.Zone1, 1)

		_, err := splitter.Split(kernel.UUID{}, lines, 35)

		require.Error(t, err)
	})
}
