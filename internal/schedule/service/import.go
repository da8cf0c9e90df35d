package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
	"github.com/planboard/planboard-backend/internal/schedule/engine"
	"github.com/planboard/planboard-backend/internal/schedule/ingest"
)

// NoteFile is one uploaded note of a batch import.
type NoteFile struct {
	Name string
	Data []byte
}

// ImportOutcome reports a file import: the resulting board state, the
// names of the tasks created, and how many inputs were skipped.
type ImportOutcome struct {
	State   *ProjectState
	Created []string
	Skipped int
}

// ImportPlan maps an uploaded plan file onto the board, laid out from
// the project start date.
func (s *ProjectService) ImportPlan(ctx context.Context, projectID, filename string, data []byte) (*ImportOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, err := s.store.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	seeds, err := ingest.ParsePlan(filename, data, project.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	up, err := engine.AddTasks(project.Tasks, seeds)
	if err != nil {
		return nil, err
	}
	state, err := s.commit(ctx, project, up)
	if err != nil {
		return nil, err
	}
	created := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		created = append(created, seed.Name)
	}
	return &ImportOutcome{State: state, Created: created}, nil
}

// ImportNotes turns a batch of note files into tasks. Files that do
// not parse are logged and skipped; the rest land on the board as one
// batch.
func (s *ProjectService) ImportNotes(ctx context.Context, projectID string, files []NoteFile) (*ImportOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project, err := s.store.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	today := time.Now()
	seeds := make([]domain.TaskSeed, 0, len(files))
	created := make([]string, 0, len(files))
	skipped := 0
	for _, file := range files {
		seed, err := ingest.ParseNote(file.Name, file.Data, today)
		if err != nil {
			log.Printf("[import] skipping note: %v", err)
			skipped++
			continue
		}
		seeds = append(seeds, seed)
		created = append(created, seed.Name)
	}
	up, err := engine.AddTasks(project.Tasks, seeds)
	if err != nil {
		return nil, err
	}
	state, err := s.commit(ctx, project, up)
	if err != nil {
		return nil, err
	}
	return &ImportOutcome{State: state, Created: created, Skipped: skipped}, nil
}
