// Package snapshot renders schedule documents to JSON files, on
// demand for exports and on a cron schedule for backups.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
	"github.com/planboard/planboard-backend/internal/schedule/repository"
)

// Render serializes one project as an indented JSON document with a
// trailing newline. The shape is exactly what the store holds, so an
// export can be read back as a document.
func Render(project *domain.Project) ([]byte, error) {
	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render project %s: %w", project.ID, err)
	}
	return append(data, '\n'), nil
}

// WriteAll exports every stored project to dir as <id>.json and
// returns how many files were written.
func WriteAll(ctx context.Context, store repository.ProjectStore, dir string) (int, error) {
	projects, err := store.LoadAll(ctx)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create export dir: %w", err)
	}
	written := 0
	for i := range projects {
		data, err := Render(&projects[i])
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, projects[i].ID+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written++
	}
	return written, nil
}
