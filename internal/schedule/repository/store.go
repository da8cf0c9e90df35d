package repository

import (
	"context"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
)

// ProjectStore is the persistence contract for schedule documents.
// Whole projects are written and read as single JSON documents; there
// is no partial update below project granularity.
type ProjectStore interface {
	LoadAll(ctx context.Context) ([]domain.Project, error)
	Load(ctx context.Context, id string) (*domain.Project, error)
	Save(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
