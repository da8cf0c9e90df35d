package engine

import (
	"time"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
)

// March 2025: the 1st falls on a Saturday, so the 3rd is a Monday and
// the 7th a Friday. Keeps weekday math in the tests checkable by hand.
func day(d int) time.Time {
	return domain.Day(2025, time.March, d)
}

func task(id int, name string, start, end int) domain.Task {
	return domain.Task{ID: id, Name: name, Start: day(start), End: day(end)}
}

func withPred(t domain.Task, pred int) domain.Task {
	t.PredecessorID = &pred
	return t
}

func withGroup(t domain.Task, gid string) domain.Task {
	t.GroupID = gid
	return t
}

func withUnit(t domain.Task, uid string) domain.Task {
	t.UnitID = uid
	return t
}
