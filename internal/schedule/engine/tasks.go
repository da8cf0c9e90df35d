package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
)

// MoveTask applies a horizontal drag of a task to a new start day.
//
// A grouped task drags its whole group: every member shifts by the
// same calendar-day delta, weekends included, so the block stays
// rigid. A solo task keeps its working duration instead: the weekday
// count of the old span is reapplied as calendar days from the new
// start, which may shorten a span that straddled a weekend.
func MoveTask(tasks []domain.Task, id int, newStart time.Time) Update {
	i := indexOf(tasks, id)
	if i < 0 {
		return Update{}
	}
	newStart = domain.DayOf(newStart)
	delta := domain.DaysBetween(tasks[i].Start, newStart)
	if delta == 0 {
		return Update{}
	}
	out := cloneTasks(tasks)
	if gid := out[i].GroupID; gid != "" {
		for j := range out {
			if out[j].GroupID == gid {
				out[j].Start = domain.AddDays(out[j].Start, delta)
				out[j].End = domain.AddDays(out[j].End, delta)
			}
		}
	} else {
		days := domain.BusinessDaysBetween(out[i].Start, out[i].End)
		out[i].Start = newStart
		out[i].End = domain.AddDays(newStart, days)
	}
	return Update{Tasks: out, TasksChanged: true}
}

// ResizeTask moves one or both edges of a task. Nil leaves an edge
// where it is. The resulting span must not end before it starts.
func ResizeTask(tasks []domain.Task, id int, newStart, newEnd *time.Time) (Update, error) {
	i := indexOf(tasks, id)
	if i < 0 {
		return Update{}, nil
	}
	start, end := tasks[i].Start, tasks[i].End
	if newStart != nil {
		start = domain.DayOf(*newStart)
	}
	if newEnd != nil {
		end = domain.DayOf(*newEnd)
	}
	if end.Before(start) {
		return Update{}, fmt.Errorf("%w: task cannot end before it starts", domain.ErrValidation)
	}
	if start.Equal(tasks[i].Start) && end.Equal(tasks[i].End) {
		return Update{}, nil
	}
	out := cloneTasks(tasks)
	out[i].Start = start
	out[i].End = end
	return Update{Tasks: out, TasksChanged: true}, nil
}

// CreateTask appends a new task with a freshly allocated id and zero
// progress.
func CreateTask(tasks []domain.Task, name string, start, end time.Time) (Update, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Update{}, fmt.Errorf("%w: task name is required", domain.ErrValidation)
	}
	start, end = domain.DayOf(start), domain.DayOf(end)
	if end.Before(start) {
		return Update{}, fmt.Errorf("%w: task cannot end before it starts", domain.ErrValidation)
	}
	out := append(cloneTasks(tasks), domain.Task{
		ID:    NextTaskID(tasks),
		Name:  name,
		Start: start,
		End:   end,
	})
	return Update{Tasks: out, TasksChanged: true}, nil
}

// AddTasks appends a batch of imported task skeletons, allocating
// consecutive ids above the current maximum.
func AddTasks(tasks []domain.Task, seeds []domain.TaskSeed) (Update, error) {
	if len(seeds) == 0 {
		return Update{}, nil
	}
	out := cloneTasks(tasks)
	next := NextTaskID(tasks)
	for _, s := range seeds {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return Update{}, fmt.Errorf("%w: task name is required", domain.ErrValidation)
		}
		start, end := domain.DayOf(s.Start), domain.DayOf(s.End)
		if end.Before(start) {
			return Update{}, fmt.Errorf("%w: task %q cannot end before it starts", domain.ErrValidation, name)
		}
		out = append(out, domain.Task{ID: next, Name: name, Start: start, End: end})
		next++
	}
	return Update{Tasks: out, TasksChanged: true}, nil
}

// UpdateTask merges the patch into the task with the given id. Setting
// a predecessor that no longer exists resolves to a no-op; a task can
// never be its own predecessor.
func UpdateTask(tasks []domain.Task, id int, patch domain.TaskPatch) (Update, error) {
	i := indexOf(tasks, id)
	if i < 0 {
		return Update{}, nil
	}
	next := tasks[i]
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return Update{}, fmt.Errorf("%w: task name is required", domain.ErrValidation)
		}
		next.Name = name
	}
	if patch.Start != nil {
		next.Start = domain.DayOf(*patch.Start)
	}
	if patch.End != nil {
		next.End = domain.DayOf(*patch.End)
	}
	if next.End.Before(next.Start) {
		return Update{}, fmt.Errorf("%w: task cannot end before it starts", domain.ErrValidation)
	}
	if patch.Progress != nil {
		if *patch.Progress < 0 || *patch.Progress > 100 {
			return Update{}, fmt.Errorf("%w: progress must be between 0 and 100", domain.ErrValidation)
		}
		next.Progress = *patch.Progress
	}
	switch {
	case patch.ClearPredecessor:
		next.PredecessorID = nil
	case patch.PredecessorID != nil:
		pid := *patch.PredecessorID
		if pid == 0 {
			next.PredecessorID = nil
			break
		}
		if pid == id {
			return Update{}, fmt.Errorf("%w: a task cannot be its own predecessor", domain.ErrValidation)
		}
		if indexOf(tasks, pid) < 0 {
			return Update{}, nil
		}
		next.PredecessorID = &pid
	}
	if patch.UnitID != nil {
		next.UnitID = *patch.UnitID
	}
	if taskEqual(next, tasks[i]) {
		return Update{}, nil
	}
	out := cloneTasks(tasks)
	out[i] = next
	return Update{Tasks: out, TasksChanged: true}, nil
}

// DeleteTask removes a task and repairs everything that pointed at it:
// predecessor links are cleared and group membership is detached,
// dissolving the group when fewer than two members remain.
func DeleteTask(tasks []domain.Task, groups []domain.TaskGroup, id int) Update {
	i := indexOf(tasks, id)
	if i < 0 {
		return Update{}
	}
	gid := tasks[i].GroupID
	out := make([]domain.Task, 0, len(tasks)-1)
	for _, t := range tasks {
		if t.ID == id {
			continue
		}
		if t.PredecessorID != nil && *t.PredecessorID == id {
			t.PredecessorID = nil
		}
		out = append(out, t)
	}
	up := Update{Tasks: out, TasksChanged: true}
	if gid != "" {
		up.Groups, up.GroupsChanged = detachFromGroup(out, groups, gid, id)
	}
	return up
}
