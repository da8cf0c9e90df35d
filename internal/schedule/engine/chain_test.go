package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
)

func chainTasks() []domain.Task {
	return []domain.Task{
		withGroup(task(1, "A", 1, 2), "g1"),
		withGroup(task(2, "B", 4, 6), "g1"),
		withGroup(task(3, "C", 8, 9), "g1"),
		task(4, "Outsider", 5, 7),
	}
}

func TestEditInterval(t *testing.T) {
	t.Run("shifts the link target and everything after it", func(t *testing.T) {
		up := EditInterval(chainTasks(), "g1", 1, 2, 3)
		require.False(t, up.IsNoop())
		assert.Equal(t, day(1), up.Tasks[0].Start, "members before the link keep their dates")
		assert.Equal(t, day(5), up.Tasks[1].Start)
		assert.Equal(t, day(7), up.Tasks[1].End)
		assert.Equal(t, day(9), up.Tasks[2].Start, "later members shift by the same delta")
		assert.Equal(t, day(10), up.Tasks[2].End)
		assert.Equal(t, day(5), up.Tasks[3].Start, "non-members never move")
	})

	t.Run("shrinking the gap shifts backwards", func(t *testing.T) {
		up := EditInterval(chainTasks(), "g1", 1, 2, 0)
		require.False(t, up.IsNoop())
		assert.Equal(t, day(2), up.Tasks[1].Start)
		assert.Equal(t, day(4), up.Tasks[1].End)
		assert.Equal(t, day(6), up.Tasks[2].Start)
	})

	t.Run("gap matching the current spacing is a no-op", func(t *testing.T) {
		assert.True(t, EditInterval(chainTasks(), "g1", 1, 2, 2).IsNoop())
	})

	t.Run("chronological order governs, not ids", func(t *testing.T) {
		tasks := []domain.Task{
			withGroup(task(5, "A", 1, 2), "g1"),
			withGroup(task(9, "B", 4, 6), "g1"),
			withGroup(task(2, "C", 8, 9), "g1"),
		}
		up := EditInterval(tasks, "g1", 5, 9, 3)
		require.False(t, up.IsNoop())
		assert.Equal(t, day(9), up.Tasks[2].Start, "task C follows B by date and shifts with it")
	})

	t.Run("either task outside the group is a no-op", func(t *testing.T) {
		assert.True(t, EditInterval(chainTasks(), "g1", 4, 2, 3).IsNoop())
		assert.True(t, EditInterval(chainTasks(), "g1", 1, 4, 3).IsNoop())
	})

	t.Run("unknown task id is a no-op", func(t *testing.T) {
		assert.True(t, EditInterval(chainTasks(), "g1", 1, 42, 3).IsNoop())
	})
}

func TestReorderGroup(t *testing.T) {
	reorderTasks := func() []domain.Task {
		return []domain.Task{
			withGroup(task(1, "A", 1, 3), "g1"),
			withGroup(task(2, "B", 5, 6), "g1"),
			withGroup(task(3, "C", 8, 11), "g1"),
		}
	}
	reorderGroups := func() []domain.TaskGroup {
		return []domain.TaskGroup{{ID: "g1", TaskIDs: []int{1, 2, 3}, Color: "#27ae60"}}
	}

	t.Run("lays the chain out back to back in the new order", func(t *testing.T) {
		up := ReorderGroup(reorderTasks(), reorderGroups(), "g1", []int{2, 1, 3})
		require.True(t, up.TasksChanged)
		require.True(t, up.GroupsChanged)

		// B keeps its dates; A and C follow, each keeping its duration.
		assert.Equal(t, day(5), up.Tasks[1].Start)
		assert.Equal(t, day(6), up.Tasks[1].End)
		assert.Equal(t, day(7), up.Tasks[0].Start)
		assert.Equal(t, day(9), up.Tasks[0].End)
		assert.Equal(t, day(10), up.Tasks[2].Start)
		assert.Equal(t, day(13), up.Tasks[2].End)

		assert.Equal(t, []int{2, 1, 3}, up.Groups[0].TaskIDs)
	})

	t.Run("every follower starts the day after its predecessor ends", func(t *testing.T) {
		up := ReorderGroup(reorderTasks(), reorderGroups(), "g1", []int{3, 2, 1})
		require.True(t, up.TasksChanged)
		byID := map[int]domain.Task{}
		for _, tk := range up.Tasks {
			byID[tk.ID] = tk
		}
		assert.Equal(t, byID[3].End.AddDate(0, 0, 1), byID[2].Start)
		assert.Equal(t, byID[2].End.AddDate(0, 0, 1), byID[1].Start)
	})

	t.Run("persists the order even when dates already align", func(t *testing.T) {
		tasks := []domain.Task{
			withGroup(task(1, "A", 1, 3), "g1"),
			withGroup(task(2, "B", 4, 5), "g1"),
		}
		groups := []domain.TaskGroup{{ID: "g1", TaskIDs: []int{2, 1}}}
		up := ReorderGroup(tasks, groups, "g1", []int{1, 2})
		assert.False(t, up.TasksChanged)
		require.True(t, up.GroupsChanged)
		assert.Equal(t, []int{1, 2}, up.Groups[0].TaskIDs)
	})

	t.Run("identical order and spacing is a no-op", func(t *testing.T) {
		tasks := []domain.Task{
			withGroup(task(1, "A", 1, 3), "g1"),
			withGroup(task(2, "B", 4, 5), "g1"),
		}
		groups := []domain.TaskGroup{{ID: "g1", TaskIDs: []int{1, 2}}}
		assert.True(t, ReorderGroup(tasks, groups, "g1", []int{1, 2}).IsNoop())
	})

	t.Run("rejects anything but an exact permutation", func(t *testing.T) {
		assert.True(t, ReorderGroup(reorderTasks(), reorderGroups(), "g1", []int{2, 1}).IsNoop(), "wrong length")
		assert.True(t, ReorderGroup(reorderTasks(), reorderGroups(), "g1", []int{2, 1, 42}).IsNoop(), "foreign id")
		assert.True(t, ReorderGroup(reorderTasks(), reorderGroups(), "g1", []int{2, 2, 3}).IsNoop(), "duplicate id")
		assert.True(t, ReorderGroup(reorderTasks(), reorderGroups(), "nope", []int{1, 2, 3}).IsNoop(), "unknown group")
	})
}
