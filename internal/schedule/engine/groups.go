package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
)

// groupPalette is cycled by the number of existing groups when a new
// group picks its color.
var groupPalette = []string{
	"#e74c3c", "#f39c12", "#27ae60", "#2980b9", "#8e44ad", "#16a085", "#d35400", "#7f8c8d",
}

// CreateGroup bundles the selected tasks into a new group. At least
// two distinct tasks are required and none of them may already belong
// to a group. Members are recorded in chronological start order.
func CreateGroup(tasks []domain.Task, groups []domain.TaskGroup, name string, taskIDs []int) (Update, error) {
	ids := dedupeInts(taskIDs)
	if len(ids) < 2 {
		return Update{}, fmt.Errorf("%w: a group needs at least two tasks", domain.ErrValidation)
	}
	members := make([]int, 0, len(ids))
	for _, id := range ids {
		i := indexOf(tasks, id)
		if i < 0 {
			return Update{}, nil
		}
		if tasks[i].GroupID != "" {
			return Update{}, fmt.Errorf("%w: task %q already belongs to a group", domain.ErrValidation, tasks[i].Name)
		}
		members = append(members, i)
	}
	sort.SliceStable(members, func(a, b int) bool {
		ta, tb := tasks[members[a]], tasks[members[b]]
		if ta.Start.Equal(tb.Start) {
			return ta.ID < tb.ID
		}
		return ta.Start.Before(tb.Start)
	})
	group := domain.TaskGroup{
		ID:      NewGroupID(),
		Name:    strings.TrimSpace(name),
		TaskIDs: make([]int, 0, len(members)),
		Color:   groupPalette[len(groups)%len(groupPalette)],
	}
	outTasks := cloneTasks(tasks)
	for _, i := range members {
		group.TaskIDs = append(group.TaskIDs, tasks[i].ID)
		outTasks[i].GroupID = group.ID
	}
	outGroups := append(cloneGroups(groups), group)
	return Update{Tasks: outTasks, Groups: outGroups, TasksChanged: true, GroupsChanged: true}, nil
}

// RenameGroup sets the display name of a group.
func RenameGroup(groups []domain.TaskGroup, id, name string) Update {
	gi := groupIndexOf(groups, id)
	if gi < 0 {
		return Update{}
	}
	name = strings.TrimSpace(name)
	if groups[gi].Name == name {
		return Update{}
	}
	out := cloneGroups(groups)
	out[gi].Name = name
	return Update{Groups: out, GroupsChanged: true}
}

// UngroupTask releases one task from its group, dissolving the group
// when that would leave fewer than two members. A stale groupId on the
// task is cleared even if the group record is already gone.
func UngroupTask(tasks []domain.Task, groups []domain.TaskGroup, id int) Update {
	i := indexOf(tasks, id)
	if i < 0 || tasks[i].GroupID == "" {
		return Update{}
	}
	gid := tasks[i].GroupID
	outTasks := cloneTasks(tasks)
	outTasks[i].GroupID = ""
	outGroups, changed := detachFromGroup(outTasks, groups, gid, id)
	return Update{Tasks: outTasks, Groups: outGroups, TasksChanged: true, GroupsChanged: changed}
}

// DeleteGroup removes the group record and clears the groupId of all
// its members. The member tasks stay on the board.
func DeleteGroup(tasks []domain.Task, groups []domain.TaskGroup, id string) Update {
	gi := groupIndexOf(groups, id)
	if gi < 0 {
		return Update{}
	}
	outTasks := cloneTasks(tasks)
	tasksChanged := false
	for j := range outTasks {
		if outTasks[j].GroupID == id {
			outTasks[j].GroupID = ""
			tasksChanged = true
		}
	}
	outGroups := cloneGroups(groups)
	outGroups = append(outGroups[:gi], outGroups[gi+1:]...)
	return Update{Tasks: outTasks, Groups: outGroups, TasksChanged: tasksChanged, GroupsChanged: true}
}

// detachFromGroup drops taskID from the group's member list. When
// fewer than two members would remain the group dissolves entirely and
// any survivor has its groupId cleared. tasks must already be a
// private copy; the returned bool reports whether groups changed.
func detachFromGroup(tasks []domain.Task, groups []domain.TaskGroup, groupID string, taskID int) ([]domain.TaskGroup, bool) {
	gi := groupIndexOf(groups, groupID)
	if gi < 0 {
		return groups, false
	}
	remaining := removeInt(groups[gi].TaskIDs, taskID)
	out := cloneGroups(groups)
	if len(remaining) < 2 {
		for j := range tasks {
			if tasks[j].GroupID == groupID {
				tasks[j].GroupID = ""
			}
		}
		out = append(out[:gi], out[gi+1:]...)
		return out, true
	}
	out[gi].TaskIDs = remaining
	return out, true
}
