package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
)

type taskCreateReq struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func (h *Handler) createTask(c *gin.Context) {
	var req taskCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	start, err := parseDay(req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	end, err := parseDay(req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	state, err := h.svc.CreateTask(c.Request.Context(), c.Param("id"), req.Name, start, end)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondState(c, http.StatusCreated, state)
}

type taskUpdateReq struct {
	Name          *string `json:"name"`
	Start         *string `json:"start"`
	End           *string `json:"end"`
	Progress      *int    `json:"progress"`
	PredecessorID *int    `json:"predecessorId"`
	UnitID        *string `json:"unitId"`
}

func (h *Handler) updateTask(c *gin.Context) {
	taskID, ok := taskParam(c)
	if !ok {
		return
	}
	var req taskUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	start, err := parseOptionalDay(req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	end, err := parseOptionalDay(req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	patch := domain.TaskPatch{
		Name:     req.Name,
		Start:    start,
		End:      end,
		Progress: req.Progress,
		UnitID:   req.UnitID,
	}
	if req.PredecessorID != nil {
		if *req.PredecessorID == 0 {
			patch.ClearPredecessor = true
		} else {
			patch.PredecessorID = req.PredecessorID
		}
	}

	state, err := h.svc.UpdateTask(c.Request.Context(), c.Param("id"), taskID, patch)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondState(c, http.StatusOK, state)
}

func (h *Handler) deleteTask(c *gin.Context) {
	taskID, ok := taskParam(c)
	if !ok {
		return
	}
	state, err := h.svc.DeleteTask(c.Request.Context(), c.Param("id"), taskID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondState(c, http.StatusOK, state)
}

type moveReq struct {
	Start string `json:"start"`
}

func (h *Handler) moveTask(c *gin.Context) {
	taskID, ok := taskParam(c)
	if !ok {
		return
	}
	var req moveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	start, err := parseDay(req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	state, err := h.svc.MoveTask(c.Request.Context(), c.Param("id"), taskID, start)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondState(c, http.StatusOK, state)
}

type resizeReq struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

func (h *Handler) resizeTask(c *gin.Context) {
	taskID, ok := taskParam(c)
	if !ok {
		return
	}
	var req resizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	start, err := parseOptionalDay(req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	end, err := parseOptionalDay(req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	state, err := h.svc.ResizeTask(c.Request.Context(), c.Param("id"), taskID, start, end)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondState(c, http.StatusOK, state)
}

func (h *Handler) ungroupTask(c *gin.Context) {
	taskID, ok := taskParam(c)
	if !ok {
		return
	}
	state, err := h.svc.UngroupTask(c.Request.Context(), c.Param("id"), taskID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondState(c, http.StatusOK, state)
}
