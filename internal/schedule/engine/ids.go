package engine

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
)

// NextTaskID allocates the next task id: one above the highest id in
// use, starting at 1 on an empty board. Ids of deleted tasks are never
// reused.
func NextTaskID(tasks []domain.Task) int {
	max := 0
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

var lastGroupToken atomic.Int64

// NewGroupID returns a time-based token that is strictly increasing
// within the process, so groups created back to back never collide.
func NewGroupID() string {
	for {
		now := time.Now().UnixNano()
		last := lastGroupToken.Load()
		if now <= last {
			now = last + 1
		}
		if lastGroupToken.CompareAndSwap(last, now) {
			return strconv.FormatInt(now, 10)
		}
	}
}

// NewUnitID returns a fresh opaque id for an executing unit.
func NewUnitID() string {
	return uuid.NewString()
}
