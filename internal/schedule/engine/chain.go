package engine

import (
	"sort"
	"time"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
)

// sortedMemberIdx returns the indexes of a group's member tasks in
// chronological start order, ties broken by id. Chain operations order
// members by their current dates, not by the stored TaskIDs order.
func sortedMemberIdx(tasks []domain.Task, groupID string) []int {
	idx := make([]int, 0, 4)
	for i := range tasks {
		if tasks[i].GroupID == groupID {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ta, tb := tasks[idx[a]], tasks[idx[b]]
		if ta.Start.Equal(tb.Start) {
			return ta.ID < tb.ID
		}
		return ta.Start.Before(tb.Start)
	})
	return idx
}

// EditInterval re-spaces a group chain at one link: the member that
// follows prevID is moved to start gapDays after prevID's end, and
// every member from that point on (chronologically) shifts by the same
// delta. Members before the link keep their dates. A gap that resolves
// to the current spacing is a no-op.
func EditInterval(tasks []domain.Task, groupID string, prevID, shiftID, gapDays int) Update {
	if groupID == "" {
		return Update{}
	}
	pi, si := indexOf(tasks, prevID), indexOf(tasks, shiftID)
	if pi < 0 || si < 0 || tasks[pi].GroupID != groupID || tasks[si].GroupID != groupID {
		return Update{}
	}
	newStart := domain.AddDays(tasks[pi].End, gapDays)
	delta := domain.DaysBetween(tasks[si].Start, newStart)
	if delta == 0 {
		return Update{}
	}
	order := sortedMemberIdx(tasks, groupID)
	from := -1
	for k, i := range order {
		if i == si {
			from = k
			break
		}
	}
	if from < 0 {
		return Update{}
	}
	out := cloneTasks(tasks)
	for _, i := range order[from:] {
		out[i].Start = domain.AddDays(out[i].Start, delta)
		out[i].End = domain.AddDays(out[i].End, delta)
	}
	return Update{Tasks: out, TasksChanged: true}
}

// ReorderGroup applies an explicit member ordering and lays the chain
// out back-to-back: the first task keeps its dates, every following
// task starts the day after its predecessor ends, and each task keeps
// its own duration. The ordering is persisted on the group record.
// Anything other than an exact permutation of the current members is a
// no-op.
func ReorderGroup(tasks []domain.Task, groups []domain.TaskGroup, groupID string, order []int) Update {
	gi := groupIndexOf(groups, groupID)
	if gi < 0 {
		return Update{}
	}
	members := make(map[int]int, len(order)) // task id -> index in tasks
	for i := range tasks {
		if tasks[i].GroupID == groupID {
			members[tasks[i].ID] = i
		}
	}
	if len(order) != len(members) {
		return Update{}
	}
	seen := make(map[int]bool, len(order))
	for _, id := range order {
		if _, ok := members[id]; !ok || seen[id] {
			return Update{}
		}
		seen[id] = true
	}
	outTasks := cloneTasks(tasks)
	tasksChanged := false
	var prevEnd time.Time
	for k, id := range order {
		i := members[id]
		if k > 0 {
			duration := domain.DaysBetween(outTasks[i].Start, outTasks[i].End)
			start := domain.AddDays(prevEnd, 1)
			end := domain.AddDays(start, duration)
			if !start.Equal(outTasks[i].Start) || !end.Equal(outTasks[i].End) {
				outTasks[i].Start, outTasks[i].End = start, end
				tasksChanged = true
			}
		}
		prevEnd = outTasks[i].End
	}
	up := Update{}
	if tasksChanged {
		up.Tasks = outTasks
		up.TasksChanged = true
	}
	if !intsEqual(groups[gi].TaskIDs, order) {
		outGroups := cloneGroups(groups)
		outGroups[gi].TaskIDs = append(make([]int, 0, len(order)), order...)
		up.Groups = outGroups
		up.GroupsChanged = true
	}
	return up
}
