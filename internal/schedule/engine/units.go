package engine

import (
	"fmt"
	"strings"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
)

// AssignUnit sets (or clears, for an empty unit id) the executing unit
// on every task in the batch. Task ids that no longer resolve are
// skipped; an unknown unit id makes the whole batch a no-op.
func AssignUnit(tasks []domain.Task, units []domain.ExecutingUnit, taskIDs []int, unitID string) Update {
	if unitID != "" && unitIndexOf(units, unitID) < 0 {
		return Update{}
	}
	out := cloneTasks(tasks)
	changed := false
	for _, id := range taskIDs {
		if i := indexOf(out, id); i >= 0 && out[i].UnitID != unitID {
			out[i].UnitID = unitID
			changed = true
		}
	}
	if !changed {
		return Update{}
	}
	return Update{Tasks: out, TasksChanged: true}
}

// ReplaceUnits swaps in a new unit roster wholesale. Entries without
// an id are new and get one allocated; tasks assigned to a unit that
// left the roster lose their assignment.
func ReplaceUnits(tasks []domain.Task, units []domain.ExecutingUnit, next []domain.ExecutingUnit) (Update, error) {
	roster := make([]domain.ExecutingUnit, 0, len(next))
	keep := make(map[string]bool, len(next))
	for _, u := range next {
		u.Name = strings.TrimSpace(u.Name)
		if u.Name == "" {
			return Update{}, fmt.Errorf("%w: unit name is required", domain.ErrValidation)
		}
		if u.ID == "" {
			u.ID = NewUnitID()
		}
		if keep[u.ID] {
			return Update{}, fmt.Errorf("%w: duplicate unit %q", domain.ErrValidation, u.ID)
		}
		keep[u.ID] = true
		roster = append(roster, u)
	}
	up := Update{}
	outTasks := cloneTasks(tasks)
	tasksChanged := false
	for i := range outTasks {
		if outTasks[i].UnitID != "" && !keep[outTasks[i].UnitID] {
			outTasks[i].UnitID = ""
			tasksChanged = true
		}
	}
	if tasksChanged {
		up.Tasks = outTasks
		up.TasksChanged = true
	}
	if !unitsEqual(units, roster) {
		up.Units = roster
		up.UnitsChanged = true
	}
	return up, nil
}
