// Package ingest turns uploaded files into task seeds: exported notes
// with YAML front matter, and project plan files.
package ingest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
)

const secondsPerDay = 86400

// noteHeader is the YAML front matter block of an exported note.
type noteHeader struct {
	Scheduled string `yaml:"scheduled"`
	Estimate  int64  `yaml:"estimate"` // planned effort in seconds
}

// ParseNote turns one exported note file into a task seed. A note may
// open with a front matter block:
//
//	---
//	scheduled: 2025-03-10
//	estimate: 172800
//	---
//	free-form body
//
// scheduled is the start day, falling back to today when absent, and
// estimate is rounded up to whole days with a one-day minimum. The
// task name is the file name without its extension. Notes without a
// body are rejected.
func ParseNote(name string, data []byte, today time.Time) (domain.TaskSeed, error) {
	taskName := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if strings.TrimSpace(taskName) == "" {
		return domain.TaskSeed{}, fmt.Errorf("note %q: no usable name", name)
	}
	header, body, err := splitFrontMatter(data)
	if err != nil {
		return domain.TaskSeed{}, fmt.Errorf("note %q: %w", name, err)
	}
	if strings.TrimSpace(body) == "" {
		return domain.TaskSeed{}, fmt.Errorf("note %q: empty body", name)
	}
	start := domain.DayOf(today)
	if header.Scheduled != "" {
		parsed, err := time.Parse("2006-01-02", header.Scheduled)
		if err != nil {
			return domain.TaskSeed{}, fmt.Errorf("note %q: invalid scheduled date: %w", name, err)
		}
		start = domain.DayOf(parsed)
	}
	if header.Estimate < 0 {
		return domain.TaskSeed{}, fmt.Errorf("note %q: negative estimate", name)
	}
	days := 1
	if header.Estimate > 0 {
		days = int((header.Estimate + secondsPerDay - 1) / secondsPerDay)
	}
	return domain.TaskSeed{
		Name:  taskName,
		Start: start,
		End:   domain.AddDays(start, days-1),
	}, nil
}

// splitFrontMatter separates the optional YAML header from the note
// body. A header is delimited by lines holding only "---".
func splitFrontMatter(data []byte) (noteHeader, string, error) {
	var header noteHeader
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return header, text, nil
	}
	lines := strings.Split(text, "\n")
	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			closing = i
			break
		}
	}
	if closing < 0 {
		return header, "", errors.New("unterminated front matter")
	}
	raw := strings.Join(lines[1:closing], "\n")
	if err := yaml.Unmarshal([]byte(raw), &header); err != nil {
		return header, "", fmt.Errorf("invalid front matter: %w", err)
	}
	return header, strings.Join(lines[closing+1:], "\n"), nil
}
