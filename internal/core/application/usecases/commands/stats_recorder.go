package commands

import (
	"context"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/stats"
	"picking/internal/core/domain/model/task"
	"picking/internal/core/domain/services"
	"picking/internal/core/ports"
)

// statsRecorder regenerates the performance records of one task from its
// persisted timestamps. Shared by the lifecycle handlers and the batch
// recomputation handlers so every path produces identical records.
type statsRecorder struct {
	calculator services.PerformanceCalculator
}

func newStatsRecorder(calculator services.PerformanceCalculator) statsRecorder {
	return statsRecorder{calculator: calculator}
}

// recordRole replaces the records of one role on one task.
func (r statsRecorder) recordRole(
	ctx context.Context,
	statsRepo ports.StatsRepository,
	scored *task.Task,
	siblings []*task.Task,
	operatorID kernel.UUID,
	role task.Role,
	at time.Time,
) error {
	operatorTasks := r.tasksForRole(siblings, operatorID, role)
	record, err := r.calculator.Calculate(scored, operatorTasks, operatorID, role, at)
	if err != nil {
		return err
	}
	return statsRepo.ReplaceForTask(ctx, scored.ID(), int(role), []*stats.PerformanceRecord{record})
}

// recordAll regenerates every derivable record of a task: collector and
// dictator once collection is complete, checker once confirmed. Returns the
// number of records written; zero means the task has nothing to score yet.
func (r statsRecorder) recordAll(
	ctx context.Context,
	statsRepo ports.StatsRepository,
	scored *task.Task,
	siblings []*task.Task,
	at time.Time,
) (int, error) {
	records := make([]*stats.PerformanceRecord, 0, 3)

	if scored.Collector() != nil && scored.CompletedAt() != nil {
		collector := *scored.Collector()
		rec, err := r.calculator.Calculate(
			scored, r.tasksForRole(siblings, collector, task.RoleCollector),
			collector, task.RoleCollector, at)
		if err != nil {
			return 0, err
		}
		records = append(records, rec)

		if scored.Dictator() != nil {
			dictator := *scored.Dictator()
			rec, err = r.calculator.Calculate(
				scored, r.tasksForRole(siblings, collector, task.RoleCollector),
				dictator, task.RoleDictator, at)
			if err != nil {
				return 0, err
			}
			records = append(records, rec)
		}
	}

	if scored.Checker() != nil && scored.ConfirmedAt() != nil {
		checker := *scored.Checker()
		rec, err := r.calculator.Calculate(
			scored, r.tasksForRole(siblings, checker, task.RoleChecker),
			checker, task.RoleChecker, at)
		if err != nil {
			return 0, err
		}
		records = append(records, rec)
	}

	if err := statsRepo.ReplaceForTask(ctx, scored.ID(), int(task.RoleUnknown), records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// tasksForRole selects the sibling tasks that scope the operator's time
// metrics for the given role. Collector and dictator metrics span the
// collector's own tasks; checker metrics span the tasks checked by the
// operator.
func (r statsRecorder) tasksForRole(
	siblings []*task.Task,
	operatorID kernel.UUID,
	role task.Role,
) []*task.Task {
	if role == task.RoleChecker {
		checked := make([]*task.Task, 0, len(siblings))
		for _, t := range siblings {
			if t.Checker() != nil && t.Checker().IsEqual(operatorID) {
				checked = append(checked, t)
			}
		}
		return checked
	}
	return services.OwnedCompleted(siblings, operatorID)
}

// replaceTask swaps the stale copy of a task inside a freshly loaded sibling
// slice with its updated in-memory aggregate.
func replaceTask(siblings []*task.Task, updated *task.Task) []*task.Task {
	for i, t := range siblings {
		if t.IsEqual(updated) {
			siblings[i] = updated
		}
	}
	return siblings
}
