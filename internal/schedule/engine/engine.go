// Package engine holds the pure scheduling rules of the board: every
// mutation takes the current collections and returns replacement
// slices, never touching its inputs. Persistence and transport live
// elsewhere.
package engine

import "github.com/planboard/planboard-backend/internal/schedule/domain"

func indexOf(tasks []domain.Task, id int) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func groupIndexOf(groups []domain.TaskGroup, id string) int {
	for i := range groups {
		if groups[i].ID == id {
			return i
		}
	}
	return -1
}

func unitIndexOf(units []domain.ExecutingUnit, id string) int {
	for i := range units {
		if units[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneTasks(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	return out
}

// cloneGroups copies the group records. The TaskIDs slices are still
// shared with the input; callers replace them wholesale instead of
// mutating in place.
func cloneGroups(groups []domain.TaskGroup) []domain.TaskGroup {
	out := make([]domain.TaskGroup, len(groups))
	copy(out, groups)
	return out
}

func removeInt(ids []int, id int) []int {
	out := make([]int, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func dedupeInts(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, v := range ids {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func unitsEqual(a, b []domain.ExecutingUnit) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func taskEqual(a, b domain.Task) bool {
	if (a.PredecessorID == nil) != (b.PredecessorID == nil) {
		return false
	}
	if a.PredecessorID != nil && *a.PredecessorID != *b.PredecessorID {
		return false
	}
	return a.ID == b.ID && a.Name == b.Name &&
		a.Start.Equal(b.Start) && a.End.Equal(b.End) &&
		a.Progress == b.Progress && a.GroupID == b.GroupID && a.UnitID == b.UnitID
}
