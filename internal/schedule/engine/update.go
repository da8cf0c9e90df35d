package engine

import "github.com/planboard/planboard-backend/internal/schedule/domain"

// Update is the outcome of a mutation: replacement collections plus
// flags naming which of them actually changed. A zero Update means the
// operation resolved to nothing (an unknown reference or zero-effect
// input) and nothing should be recomputed or persisted.
type Update struct {
	Tasks  []domain.Task
	Groups []domain.TaskGroup
	Units  []domain.ExecutingUnit

	TasksChanged  bool
	GroupsChanged bool
	UnitsChanged  bool
}

// IsNoop reports whether the update carries no changes.
func (u Update) IsNoop() bool {
	return !u.TasksChanged && !u.GroupsChanged && !u.UnitsChanged
}

// Apply writes the changed collections back onto the project.
func (u Update) Apply(p *domain.Project) {
	if u.TasksChanged {
		p.Tasks = u.Tasks
	}
	if u.GroupsChanged {
		p.TaskGroups = u.Groups
	}
	if u.UnitsChanged {
		p.ExecutingUnits = u.Units
	}
}
