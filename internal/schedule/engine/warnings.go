package engine

import (
	"fmt"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
)

// DetectWarnings scans the predecessor links and flags every task that
// starts before its predecessor has ended. Links pointing at missing
// tasks are ignored rather than reported. The scan is a pure
// projection of the task list and can be rerun after any mutation.
func DetectWarnings(tasks []domain.Task) []domain.Warning {
	index := make(map[int]int, len(tasks))
	for i, t := range tasks {
		index[t.ID] = i
	}
	warnings := make([]domain.Warning, 0)
	for _, t := range tasks {
		if t.PredecessorID == nil {
			continue
		}
		j, ok := index[*t.PredecessorID]
		if !ok || tasks[j].ID == t.ID {
			continue
		}
		if pred := tasks[j]; t.Start.Before(pred.End) {
			warnings = append(warnings, domain.Warning{
				TaskID:  t.ID,
				Message: fmt.Sprintf("%q starts before predecessor %q ends", t.Name, pred.Name),
			})
		}
	}
	return warnings
}
