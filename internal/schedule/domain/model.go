package domain

import "time"

// Task represents a single bar on the schedule board. Dates are
// day-precision UTC; End is the last scheduled day, so a one-day task
// has Start == End.
type Task struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Progress      int       `json:"progress"` // percent complete, 0-100
	PredecessorID *int      `json:"predecessorId,omitempty"`
	GroupID       string    `json:"groupId,omitempty"`
	UnitID        string    `json:"unitId,omitempty"`
}

// TaskGroup is a named set of tasks that move as one rigid block.
// TaskIDs carries the display order, which is significant metadata.
type TaskGroup struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	TaskIDs []int  `json:"taskIds"`
	Color   string `json:"color"`
}

// ExecutingUnit is a team or resource that tasks can be assigned to.
type ExecutingUnit struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Warning flags a task that starts before its predecessor has finished.
type Warning struct {
	TaskID  int    `json:"taskId"`
	Message string `json:"message"`
}

// Project is the unit of persistence: one self-contained schedule
// document holding all tasks, groups and units.
type Project struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	Tasks          []Task          `json:"tasks"`
	TaskGroups     []TaskGroup     `json:"taskGroups"`
	ExecutingUnits []ExecutingUnit `json:"executingUnits"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// TaskSeed is a task skeleton produced by importers, before an id is
// allocated.
type TaskSeed struct {
	Name  string
	Start time.Time
	End   time.Time
}

// TaskPatch carries the optional fields of a task update; nil fields
// are left untouched. A PredecessorID of 0 or ClearPredecessor clears
// the link.
type TaskPatch struct {
	Name             *string
	Start            *time.Time
	End              *time.Time
	Progress         *int
	PredecessorID    *int
	ClearPredecessor bool
	UnitID           *string
}

// ProjectPatch carries the optional fields of a project update.
type ProjectPatch struct {
	Name      *string
	StartDate *time.Time
	EndDate   *time.Time
}

// Normalize makes a freshly decoded project safe to operate on:
// collections revive as empty slices and all dates are snapped to UTC
// midnight. Older stored documents may predate groups or units.
func (p *Project) Normalize() {
	if p.Tasks == nil {
		p.Tasks = make([]Task, 0)
	}
	if p.TaskGroups == nil {
		p.TaskGroups = make([]TaskGroup, 0)
	}
	if p.ExecutingUnits == nil {
		p.ExecutingUnits = make([]ExecutingUnit, 0)
	}
	for i := range p.TaskGroups {
		if p.TaskGroups[i].TaskIDs == nil {
			p.TaskGroups[i].TaskIDs = make([]int, 0)
		}
	}
	p.StartDate = DayOf(p.StartDate)
	p.EndDate = DayOf(p.EndDate)
	for i := range p.Tasks {
		p.Tasks[i].Start = DayOf(p.Tasks[i].Start)
		p.Tasks[i].End = DayOf(p.Tasks[i].End)
	}
}

// TaskByID returns the index of the task with the given id, or -1.
func (p *Project) TaskByID(id int) int {
	for i := range p.Tasks {
		if p.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// GroupByID returns the index of the group with the given id, or -1.
func (p *Project) GroupByID(id string) int {
	for i := range p.TaskGroups {
		if p.TaskGroups[i].ID == id {
			return i
		}
	}
	return -1
}

// UnitByID returns the index of the unit with the given id, or -1.
func (p *Project) UnitByID(id string) int {
	for i := range p.ExecutingUnits {
		if p.ExecutingUnits[i].ID == id {
			return i
		}
	}
	return -1
}
