package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
)

const (
	projectKeyPrefix = "plan:project:" // One project document: plan:project:{project_id}
	projectIndexKey  = "plan:projects" // Set of all known project ids
)

// RedisStore keeps each project as one JSON document under its own
// key, with a set indexing the known ids. Documents carry no TTL: a
// schedule lives until it is deleted.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore on the given client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// LoadAll returns every stored project, oldest first.
func (s *RedisStore) LoadAll(ctx context.Context) ([]domain.Project, error) {
	ids, err := s.client.SMembers(ctx, projectIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	projects := make([]domain.Project, 0, len(ids))
	for _, id := range ids {
		project, err := s.Load(ctx, id)
		if err == domain.ErrProjectNotFound {
			// Stale index entry; drop it and keep going.
			s.client.SRem(ctx, projectIndexKey, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt.Before(projects[j].CreatedAt)
	})
	return projects, nil
}

// Load retrieves one project by id.
func (s *RedisStore) Load(ctx context.Context, id string) (*domain.Project, error) {
	data, err := s.client.Get(ctx, s.projectKey(id)).Result()
	if err == redis.Nil {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	var project domain.Project
	if err := json.Unmarshal([]byte(data), &project); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project %s: %w", id, err)
	}
	project.Normalize()
	return &project, nil
}

// Save writes the document and registers the id in the index set.
func (s *RedisStore) Save(ctx context.Context, project *domain.Project) error {
	data, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.projectKey(project.ID), data, 0)
	pipe.SAdd(ctx, projectIndexKey, project.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

// Delete removes the document and its index entry.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	pipe := s.client.Pipeline()
	del := pipe.Del(ctx, s.projectKey(id))
	pipe.SRem(ctx, projectIndexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if del.Val() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// Ping reports whether the backing Redis answers.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) projectKey(id string) string {
	return fmt.Sprintf("%s%s", projectKeyPrefix, id)
}
