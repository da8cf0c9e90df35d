package service

import (
	"context"
	"time"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
	"github.com/planboard/planboard-backend/internal/schedule/engine"
)

// MoveTask drags a task, and its whole group if it has one, to a new
// start day.
func (s *ProjectService) MoveTask(ctx context.Context, projectID string, taskID int, newStart time.Time) (*ProjectState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, err := s.store.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, project, engine.MoveTask(project.Tasks, taskID, newStart))
}

// ResizeTask moves one or both edges of a task.
func (s *ProjectService) ResizeTask(ctx context.Context, projectID string, taskID int, newStart, newEnd *time.Time) (*ProjectState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, err := s.store.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	up, err := engine.ResizeTask(project.Tasks, taskID, newStart, newEnd)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, project, up)
}

// CreateTask adds a task to the board.
func (s *ProjectService) CreateTask(ctx context.Context, projectID, name string, start, end time.Time) (*ProjectState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, err := s.store.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	up, err := engine.CreateTask(project.Tasks, name, start, end)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, project, up)
}

// UpdateTask merges a patch into a task.
func (s *ProjectService) UpdateTask(ctx context.Context, projectID string, taskID int, patch domain.TaskPatch) (*ProjectState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, err := s.store.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	up, err := engine.UpdateTask(project.Tasks, taskID, patch)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, project, up)
}

// DeleteTask removes a task and repairs links that pointed at it.
func (s *ProjectService) DeleteTask(ctx context.Context, projectID string, taskID int) (*ProjectState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, err := s.store.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, project, engine.DeleteTask(project.Tasks, project.TaskGroups, taskID))
}

// CreateGroup bundles the selected tasks into a new group.
func (s *ProjectService) CreateGroup(ctx context.Context, projectID, name string, taskIDs []int) (*ProjectState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, err := s.store.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	up, err := engine.CreateGroup(project.Tasks, project.TaskGroups, name, taskIDs)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, project, up)
}

// RenameGroup changes a group's display name.
func (s *ProjectService) RenameGroup(ctx context.Context, projectID, groupID, name string) (*ProjectState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, err := s.store.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, project, engine.RenameGroup(project.TaskGroups, groupID, name))
}

// UngroupTask releases one task from its group.
func (s *ProjectService) UngroupTask(ctx context.Context, projectID string, taskID int) (*ProjectState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, err := s.store.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, project, engine.UngroupTask(project.Tasks, project.TaskGroups, taskID))
}

// DeleteGroup removes a group record, leaving its tasks on the board.
func (s *ProjectService) DeleteGroup(ctx context.Context, projectID, groupID string) (*ProjectState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, err := s.store.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, project, engine.DeleteGroup(project.Tasks, project.TaskGroups, groupID))
}

// EditInterval re-spaces a group chain at one link.
func (s *ProjectService) EditInterval(ctx context.Context, projectID, groupID string, prevID, shiftID, gapDays int) (*ProjectState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, err := s.store.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, project, engine.EditInterval(project.Tasks, groupID, prevID, shiftID, gapDays))
}

// ReorderGroup applies an explicit member ordering and lays the chain
// out back to back.
func (s *ProjectService) ReorderGroup(ctx context.Context, projectID, groupID string, order []int) (*ProjectState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, err := s.store.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, project, engine.ReorderGroup(project.Tasks, project.TaskGroups, groupID, order))
}

// AssignUnit sets or clears the executing unit across a batch of
// tasks.
func (s *ProjectService) AssignUnit(ctx context.Context, projectID string, taskIDs []int, unitID string) (*ProjectState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, err := s.store.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, project, engine.AssignUnit(project.Tasks, project.ExecutingUnits, taskIDs, unitID))
}

// ReplaceUnits swaps in a new unit roster.
func (s *ProjectService) ReplaceUnits(ctx context.Context, projectID string, roster []domain.ExecutingUnit) (*ProjectState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, err := s.store.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	up, err := engine.ReplaceUnits(project.Tasks, project.ExecutingUnits, roster)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, project, up)
}
