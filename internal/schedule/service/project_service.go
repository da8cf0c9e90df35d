package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
	"github.com/planboard/planboard-backend/internal/schedule/engine"
	"github.com/planboard/planboard-backend/internal/schedule/repository"
	"github.com/planboard/planboard-backend/internal/schedule/snapshot"
)

// defaultSpanDays is the project horizon used when no end date is
// supplied at creation.
const defaultSpanDays = 28

// ProjectService owns every read and mutation of schedule documents.
// One mutex serializes all writes: boards are small documents and a
// single writer keeps load-modify-save races out without per-project
// bookkeeping.
type ProjectService struct {
	store repository.ProjectStore
	mu    sync.Mutex
}

// NewProjectService creates a ProjectService on the given store.
func NewProjectService(store repository.ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

// ProjectState is what board operations hand back: the current
// document, the warnings recomputed after a change, and whether the
// operation changed anything. After a no-op the warnings stay nil
// because nothing was recomputed.
type ProjectState struct {
	Project  *domain.Project
	Warnings []domain.Warning
	Changed  bool
}

// ListProjects returns all stored projects, oldest first.
func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.store.LoadAll(ctx)
}

// GetProject returns one project together with its current warnings.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*ProjectState, error) {
	project, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProjectState{
		Project:  project,
		Warnings: engine.DetectWarnings(project.Tasks),
	}, nil
}

// CreateProject starts a new empty board. A missing start date
// defaults to today, a missing end date to four weeks after the start.
func (s *ProjectService) CreateProject(ctx context.Context, name string, start, end time.Time) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name is required", domain.ErrValidation)
	}
	now := time.Now().UTC()
	if start.IsZero() {
		start = now
	}
	start = domain.DayOf(start)
	if end.IsZero() {
		end = domain.AddDays(start, defaultSpanDays)
	}
	end = domain.DayOf(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: project cannot end before it starts", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	project := &domain.Project{
		ID:             uuid.NewString(),
		Name:           name,
		StartDate:      start,
		EndDate:        end,
		Tasks:          make([]domain.Task, 0),
		TaskGroups:     make([]domain.TaskGroup, 0),
		ExecutingUnits: make([]domain.ExecutingUnit, 0),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.Save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// UpdateProject merges the patch into the project header.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: project name is required", domain.ErrValidation)
		}
		project.Name = name
	}
	if patch.StartDate != nil {
		project.StartDate = domain.DayOf(*patch.StartDate)
	}
	if patch.EndDate != nil {
		project.EndDate = domain.DayOf(*patch.EndDate)
	}
	if project.EndDate.Before(project.StartDate) {
		return nil, fmt.Errorf("%w: project cannot end before it starts", domain.ErrValidation)
	}
	project.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes a project for good.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Delete(ctx, id)
}

// ExportProject renders one project as an indented JSON document.
func (s *ProjectService) ExportProject(ctx context.Context, id string) ([]byte, error) {
	project, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return snapshot.Render(project)
}

// commit applies an engine update, recomputes warnings and persists
// the document. A failed write fails the whole mutation, so the store
// stays authoritative. No-ops return the untouched document without
// recomputing or writing anything.
func (s *ProjectService) commit(ctx context.Context, project *domain.Project, up engine.Update) (*ProjectState, error) {
	if up.IsNoop() {
		return &ProjectState{Project: project}, nil
	}
	up.Apply(project)
	project.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, project); err != nil {
		return nil, err
	}
	return &ProjectState{
		Project:  project,
		Warnings: engine.DetectWarnings(project.Tasks),
		Changed:  true,
	}, nil
}
