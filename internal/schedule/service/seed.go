package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
	"github.com/planboard/planboard-backend/internal/schedule/engine"
)

// SeedSampleBoard gives a first-run install something to look at: when
// the store holds no projects it creates one sample board with a
// predecessor chain, a group and two executing units.
func (s *ProjectService) SeedSampleBoard(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, err := s.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	project := sampleBoard()
	if err := s.store.Save(ctx, project); err != nil {
		return err
	}
	log.Printf("seeded sample project %s", project.ID)
	return nil
}

func sampleBoard() *domain.Project {
	now := time.Now().UTC()
	start := domain.DayOf(now)
	day := func(offset int) time.Time { return domain.AddDays(start, offset) }

	pred := 1
	groupID := engine.NewGroupID()
	design := domain.ExecutingUnit{ID: engine.NewUnitID(), Name: "Design", Color: "#8e44ad"}
	build := domain.ExecutingUnit{ID: engine.NewUnitID(), Name: "Engineering", Color: "#2980b9"}

	return &domain.Project{
		ID:        uuid.NewString(),
		Name:      "Website relaunch",
		StartDate: start,
		EndDate:   day(27),
		Tasks: []domain.Task{
			{ID: 1, Name: "Kickoff", Start: day(0), End: day(0), Progress: 100, UnitID: design.ID},
			{ID: 2, Name: "Concept & design", Start: day(1), End: day(5), Progress: 40, PredecessorID: &pred, UnitID: design.ID},
			{ID: 3, Name: "Content inventory", Start: day(2), End: day(6), UnitID: design.ID},
			{ID: 4, Name: "Frontend build", Start: day(6), End: day(12), GroupID: groupID, UnitID: build.ID},
			{ID: 5, Name: "Backend build", Start: day(13), End: day(19), GroupID: groupID, UnitID: build.ID},
			{ID: 6, Name: "Launch review", Start: day(20), End: day(21)},
		},
		TaskGroups: []domain.TaskGroup{
			{ID: groupID, Name: "Implementation", TaskIDs: []int{4, 5}, Color: "#27ae60"},
		},
		ExecutingUnits: []domain.ExecutingUnit{design, build},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
