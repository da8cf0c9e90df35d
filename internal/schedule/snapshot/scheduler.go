package snapshot

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/planboard/planboard-backend/internal/schedule/repository"
)

// Scheduler exports all projects to a directory on a cron schedule.
type Scheduler struct {
	store repository.ProjectStore
	dir   string
	spec  string
	c     *cron.Cron
}

// NewScheduler creates a snapshot scheduler. spec is a six-field cron
// expression with a leading seconds field.
func NewScheduler(store repository.ProjectStore, dir, spec string) *Scheduler {
	return &Scheduler{
		store: store,
		dir:   dir,
		spec:  spec,
		c:     cron.New(cron.WithSeconds()),
	}
}

// Start registers the export job and launches the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.c.AddFunc(s.spec, s.sweep); err != nil {
		return fmt.Errorf("failed to schedule snapshots: %w", err)
	}
	log.Printf("snapshot scheduler started (%s -> %s)", s.spec, s.dir)
	s.c.Start()
	return nil
}

// Stop halts the cron loop, waiting for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.c.Stop().Done()
	log.Println("snapshot scheduler stopped")
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	written, err := WriteAll(ctx, s.store, s.dir)
	if err != nil {
		log.Printf("snapshot sweep failed: %v", err)
		return
	}
	log.Printf("snapshot sweep wrote %d project(s) to %s", written, s.dir)
}
