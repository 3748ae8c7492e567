package services

import (
	"fmt"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/shipment"
	"picking/internal/core/domain/model/task"
	"picking/internal/pkg/errs"
)

// TaskSplitter partitions a shipment's lines into bounded, zone-scoped tasks.
//
// The algorithm groups lines by resolved zone preserving their original order,
// then greedily fills tasks up to the distinct-line bound, flushing the final
// partial task per zone. A line is never split: each one lands in exactly one
// task with its full ordered quantity, so the per-zone task count is always
// ceil(zoneLineCount / maxLinesPerTask) and no empty task is ever created.
type TaskSplitter struct{}

// NewTaskSplitter creates a new TaskSplitter instance.
func NewTaskSplitter() TaskSplitter {
	return TaskSplitter{}
}

// Split partitions the lines into tasks of at most maxLinesPerTask distinct
// lines each, one zone per task.
func (s TaskSplitter) Split(
	shipmentID kernel.UUID,
	lines []*shipment.Line,
	maxLinesPerTask int,
) ([]*task.Task, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}
	if maxLinesPerTask <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("max lines per task is invalid",
			fmt.Errorf("%d is not greater than 0", maxLinesPerTask))
	}

	// Group by zone, preserving the original order within each zone.
	zoneOrder := make([]kernel.Zone, 0, len(kernel.AllZones()))
	byZone := make(map[kernel.Zone][]*shipment.Line)
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		if _, seen := byZone[line.Zone()]; !seen {
			zoneOrder = append(zoneOrder, line.Zone())
		}
		byZone[line.Zone()] = append(byZone[line.Zone()], line)
	}

	tasks := make([]*task.Task, 0)
	for _, zone := range zoneOrder {
		zoneLines := byZone[zone]
		for start := 0; start < len(zoneLines); start += maxLinesPerTask {
			end := min(start+maxLinesPerTask, len(zoneLines))

			taskLines := make([]*task.TaskLine, 0, end-start)
			for _, line := range zoneLines[start:end] {
				tl, err := task.NewTaskLine(line.ID(), line.Quantity())
				if err != nil {
					return nil, err
				}
				taskLines = append(taskLines, tl)
			}

			t, err := task.NewTask(kernel.NewUUID(), shipmentID, zone, taskLines)
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, t)
		}
	}

	return tasks, nil
}
