package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
)

func TestMoveTask_Solo(t *testing.T) {
	t.Run("keeps the weekday count of the old span", func(t *testing.T) {
		// Mon 3 .. Fri 7 covers four weekdays before the end day.
		tasks := []domain.Task{task(1, "Design", 3, 7)}
		up := MoveTask(tasks, 1, day(10))
		require.False(t, up.IsNoop())
		assert.Equal(t, day(10), up.Tasks[0].Start)
		assert.Equal(t, day(14), up.Tasks[0].End)
	})

	t.Run("span straddling a weekend contracts to its working days", func(t *testing.T) {
		// Fri 7 .. Mon 10 holds a single weekday, so the moved copy
		// spans one calendar day.
		tasks := []domain.Task{task(1, "Handover", 7, 10)}
		up := MoveTask(tasks, 1, day(3))
		require.False(t, up.IsNoop())
		assert.Equal(t, day(3), up.Tasks[0].Start)
		assert.Equal(t, day(4), up.Tasks[0].End)
	})

	t.Run("zero delta is a no-op", func(t *testing.T) {
		tasks := []domain.Task{task(1, "Design", 3, 7)}
		assert.True(t, MoveTask(tasks, 1, day(3)).IsNoop())
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		tasks := []domain.Task{task(1, "Design", 3, 7)}
		assert.True(t, MoveTask(tasks, 42, day(10)).IsNoop())
	})
}

func TestMoveTask_Group(t *testing.T) {
	t.Run("shifts every member by the same calendar delta", func(t *testing.T) {
		tasks := []domain.Task{
			withGroup(task(1, "A", 3, 5), "g1"),
			withGroup(task(2, "B", 8, 10), "g1"),
			task(3, "Outsider", 4, 6),
		}
		up := MoveTask(tasks, 1, day(10))
		require.False(t, up.IsNoop())
		assert.Equal(t, day(10), up.Tasks[0].Start)
		assert.Equal(t, day(12), up.Tasks[0].End)
		assert.Equal(t, day(15), up.Tasks[1].Start)
		assert.Equal(t, day(17), up.Tasks[1].End)
		assert.Equal(t, day(4), up.Tasks[2].Start, "non-member must not move")
	})

	t.Run("shifts backwards too", func(t *testing.T) {
		tasks := []domain.Task{
			withGroup(task(1, "A", 10, 12), "g1"),
			withGroup(task(2, "B", 14, 15), "g1"),
		}
		up := MoveTask(tasks, 2, day(12))
		require.False(t, up.IsNoop())
		assert.Equal(t, day(8), up.Tasks[0].Start)
		assert.Equal(t, day(12), up.Tasks[1].Start)
		assert.Equal(t, day(13), up.Tasks[1].End)
	})

	t.Run("leaves the input slice untouched", func(t *testing.T) {
		tasks := []domain.Task{
			withGroup(task(1, "A", 3, 5), "g1"),
			withGroup(task(2, "B", 8, 10), "g1"),
		}
		MoveTask(tasks, 1, day(10))
		assert.Equal(t, day(3), tasks[0].Start)
		assert.Equal(t, day(8), tasks[1].Start)
	})
}

func TestResizeTask(t *testing.T) {
	t.Run("moves a single edge", func(t *testing.T) {
		tasks := []domain.Task{task(1, "Design", 3, 7)}
		end := day(10)
		up, err := ResizeTask(tasks, 1, nil, &end)
		require.NoError(t, err)
		require.False(t, up.IsNoop())
		assert.Equal(t, day(3), up.Tasks[0].Start)
		assert.Equal(t, day(10), up.Tasks[0].End)
	})

	t.Run("rejects an end before the start", func(t *testing.T) {
		tasks := []domain.Task{task(1, "Design", 3, 7)}
		end := day(2)
		_, err := ResizeTask(tasks, 1, nil, &end)
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("collapsing to a single day is allowed", func(t *testing.T) {
		tasks := []domain.Task{task(1, "Design", 3, 7)}
		end := day(3)
		up, err := ResizeTask(tasks, 1, nil, &end)
		require.NoError(t, err)
		assert.Equal(t, day(3), up.Tasks[0].End)
	})

	t.Run("identical edges are a no-op", func(t *testing.T) {
		tasks := []domain.Task{task(1, "Design", 3, 7)}
		start, end := day(3), day(7)
		up, err := ResizeTask(tasks, 1, &start, &end)
		require.NoError(t, err)
		assert.True(t, up.IsNoop())
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		end := day(9)
		up, err := ResizeTask([]domain.Task{task(1, "Design", 3, 7)}, 9, nil, &end)
		require.NoError(t, err)
		assert.True(t, up.IsNoop())
	})
}

func TestCreateTask(t *testing.T) {
	t.Run("first task on an empty board gets id 1", func(t *testing.T) {
		up, err := CreateTask(nil, "Kickoff", day(3), day(3))
		require.NoError(t, err)
		require.Len(t, up.Tasks, 1)
		assert.Equal(t, 1, up.Tasks[0].ID)
		assert.Equal(t, 0, up.Tasks[0].Progress)
	})

	t.Run("id is one above the highest in use", func(t *testing.T) {
		tasks := []domain.Task{
			task(1, "A", 3, 4),
			task(3, "B", 5, 6),
			task(7, "C", 7, 8),
		}
		up, err := CreateTask(tasks, "D", day(10), day(11))
		require.NoError(t, err)
		assert.Equal(t, 8, up.Tasks[3].ID)
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := CreateTask(nil, "   ", day(3), day(4))
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects an end before the start", func(t *testing.T) {
		_, err := CreateTask(nil, "Kickoff", day(5), day(3))
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestAddTasks(t *testing.T) {
	t.Run("allocates consecutive ids above the maximum", func(t *testing.T) {
		tasks := []domain.Task{task(4, "Existing", 3, 5)}
		seeds := []domain.TaskSeed{
			{Name: "One", Start: day(3), End: day(4)},
			{Name: "Two", Start: day(5), End: day(6)},
		}
		up, err := AddTasks(tasks, seeds)
		require.NoError(t, err)
		require.Len(t, up.Tasks, 3)
		assert.Equal(t, 5, up.Tasks[1].ID)
		assert.Equal(t, 6, up.Tasks[2].ID)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		up, err := AddTasks([]domain.Task{task(1, "A", 3, 4)}, nil)
		require.NoError(t, err)
		assert.True(t, up.IsNoop())
	})

	t.Run("a bad seed rejects the batch", func(t *testing.T) {
		seeds := []domain.TaskSeed{
			{Name: "Fine", Start: day(3), End: day(4)},
			{Name: "Broken", Start: day(6), End: day(5)},
		}
		_, err := AddTasks(nil, seeds)
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestUpdateTask(t *testing.T) {
	base := func() []domain.Task {
		return []domain.Task{
			task(1, "Design", 3, 7),
			task(2, "Build", 10, 14),
		}
	}

	t.Run("merges supplied fields only", func(t *testing.T) {
		name := "Design v2"
		progress := 40
		up, err := UpdateTask(base(), 1, domain.TaskPatch{Name: &name, Progress: &progress})
		require.NoError(t, err)
		require.False(t, up.IsNoop())
		assert.Equal(t, "Design v2", up.Tasks[0].Name)
		assert.Equal(t, 40, up.Tasks[0].Progress)
		assert.Equal(t, day(3), up.Tasks[0].Start, "untouched field keeps its value")
	})

	t.Run("sets a predecessor link", func(t *testing.T) {
		pred := 1
		up, err := UpdateTask(base(), 2, domain.TaskPatch{PredecessorID: &pred})
		require.NoError(t, err)
		require.NotNil(t, up.Tasks[1].PredecessorID)
		assert.Equal(t, 1, *up.Tasks[1].PredecessorID)
	})

	t.Run("predecessor zero clears the link", func(t *testing.T) {
		tasks := []domain.Task{
			task(1, "Design", 3, 7),
			withPred(task(2, "Build", 10, 14), 1),
		}
		zero := 0
		up, err := UpdateTask(tasks, 2, domain.TaskPatch{PredecessorID: &zero})
		require.NoError(t, err)
		assert.Nil(t, up.Tasks[1].PredecessorID)
	})

	t.Run("unknown predecessor is a no-op", func(t *testing.T) {
		pred := 99
		up, err := UpdateTask(base(), 2, domain.TaskPatch{PredecessorID: &pred})
		require.NoError(t, err)
		assert.True(t, up.IsNoop())
	})

	t.Run("self reference is rejected", func(t *testing.T) {
		pred := 2
		_, err := UpdateTask(base(), 2, domain.TaskPatch{PredecessorID: &pred})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("progress outside 0-100 is rejected", func(t *testing.T) {
		progress := 140
		_, err := UpdateTask(base(), 1, domain.TaskPatch{Progress: &progress})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("dates crossing is rejected", func(t *testing.T) {
		start := day(20)
		_, err := UpdateTask(base(), 1, domain.TaskPatch{Start: &start})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("patch matching current values is a no-op", func(t *testing.T) {
		name := "Design"
		up, err := UpdateTask(base(), 1, domain.TaskPatch{Name: &name})
		require.NoError(t, err)
		assert.True(t, up.IsNoop())
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		name := "Ghost"
		up, err := UpdateTask(base(), 42, domain.TaskPatch{Name: &name})
		require.NoError(t, err)
		assert.True(t, up.IsNoop())
	})
}

func TestDeleteTask(t *testing.T) {
	t.Run("clears predecessor links pointing at the deleted task", func(t *testing.T) {
		tasks := []domain.Task{
			task(1, "Design", 3, 7),
			withPred(task(2, "Build", 10, 14), 1),
			withPred(task(3, "Test", 15, 16), 2),
		}
		up := DeleteTask(tasks, nil, 1)
		require.Len(t, up.Tasks, 2)
		assert.Nil(t, up.Tasks[0].PredecessorID)
		require.NotNil(t, up.Tasks[1].PredecessorID)
		assert.Equal(t, 2, *up.Tasks[1].PredecessorID)
	})

	t.Run("keeps a group that still has two members", func(t *testing.T) {
		tasks := []domain.Task{
			withGroup(task(1, "A", 3, 4), "g1"),
			withGroup(task(2, "B", 5, 6), "g1"),
			withGroup(task(3, "C", 7, 8), "g1"),
		}
		groups := []domain.TaskGroup{{ID: "g1", TaskIDs: []int{1, 2, 3}, Color: "#e74c3c"}}
		up := DeleteTask(tasks, groups, 2)
		require.True(t, up.GroupsChanged)
		require.Len(t, up.Groups, 1)
		assert.Equal(t, []int{1, 3}, up.Groups[0].TaskIDs)
		assert.Equal(t, "g1", up.Tasks[0].GroupID)
		assert.Equal(t, "g1", up.Tasks[1].GroupID)
	})

	t.Run("dissolves a group left with one member", func(t *testing.T) {
		tasks := []domain.Task{
			withGroup(task(1, "A", 3, 4), "g1"),
			withGroup(task(2, "B", 5, 6), "g1"),
		}
		groups := []domain.TaskGroup{{ID: "g1", TaskIDs: []int{1, 2}, Color: "#e74c3c"}}
		up := DeleteTask(tasks, groups, 1)
		require.True(t, up.GroupsChanged)
		assert.Empty(t, up.Groups)
		assert.Empty(t, up.Tasks[0].GroupID, "survivor is released")
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		up := DeleteTask([]domain.Task{task(1, "A", 3, 4)}, nil, 9)
		assert.True(t, up.IsNoop())
	})

	t.Run("leaves the input slices untouched", func(t *testing.T) {
		tasks := []domain.Task{
			withGroup(task(1, "A", 3, 4), "g1"),
			withGroup(task(2, "B", 5, 6), "g1"),
		}
		groups := []domain.TaskGroup{{ID: "g1", TaskIDs: []int{1, 2}, Color: "#e74c3c"}}
		DeleteTask(tasks, groups, 1)
		assert.Len(t, tasks, 2)
		assert.Equal(t, "g1", tasks[1].GroupID)
		assert.Equal(t, []int{1, 2}, groups[0].TaskIDs)
	})
}
