package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/planboard/planboard-backend/internal/api/http/middleware"
	"github.com/planboard/planboard-backend/internal/schedule/domain"
	"github.com/planboard/planboard-backend/internal/schedule/service"
)

// parseDay accepts the two date shapes clients send: a plain day
// ("2025-03-10") or a full RFC 3339 timestamp. The result is truncated
// to UTC midnight.
func parseDay(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return domain.DayOf(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return domain.DayOf(t), nil
}

// parseOptionalDay maps an absent pointer through parseDay.
func parseOptionalDay(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseDay(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// taskParam reads the numeric task id from the path, answering the
// request itself when the id does not parse.
func taskParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid task id"})
		return 0, false
	}
	return id, true
}

// respondErr maps service errors onto transport codes. Anything that
// is neither a missing project nor bad input is logged with the
// request id and hidden behind a 500.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	default:
		log.Printf("[api] id=%s unhandled error: %v", middleware.GetRequestID(c.Request.Context()), err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
	}
}

// respondState renders the standard mutation response: the document,
// whether anything changed, and the recomputed warnings when a change
// made them fresh.
func respondState(c *gin.Context, status int, state *service.ProjectState) {
	resp := gin.H{
		"ok":      true,
		"changed": state.Changed,
		"project": state.Project,
	}
	if state.Warnings != nil {
		resp["warnings"] = state.Warnings
	}
	c.JSON(status, resp)
}
