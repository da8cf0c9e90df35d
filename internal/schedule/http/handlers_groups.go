package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type groupCreateReq struct {
	Name    string `json:"name"`
	TaskIDs []int  `json:"taskIds"`
}

func (h *Handler) createGroup(c *gin.Context) {
	var req groupCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	state, err := h.svc.CreateGroup(c.Request.Context(), c.Param("id"), req.Name, req.TaskIDs)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondState(c, http.StatusCreated, state)
}

type groupRenameReq struct {
	Name string `json:"name"`
}

func (h *Handler) renameGroup(c *gin.Context) {
	var req groupRenameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	state, err := h.svc.RenameGroup(c.Request.Context(), c.Param("id"), c.Param("groupId"), req.Name)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondState(c, http.StatusOK, state)
}

func (h *Handler) deleteGroup(c *gin.Context) {
	state, err := h.svc.DeleteGroup(c.Request.Context(), c.Param("id"), c.Param("groupId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondState(c, http.StatusOK, state)
}

type intervalReq struct {
	PrevTaskID  int `json:"prevTaskId"`
	ShiftTaskID int `json:"shiftTaskId"`
	GapDays     int `json:"gapDays"`
}

func (h *Handler) editInterval(c *gin.Context) {
	var req intervalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	state, err := h.svc.EditInterval(c.Request.Context(), c.Param("id"), c.Param("groupId"), req.PrevTaskID, req.ShiftTaskID, req.GapDays)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondState(c, http.StatusOK, state)
}

type reorderReq struct {
	Order []int `json:"order"`
}

func (h *Handler) reorderGroup(c *gin.Context) {
	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	state, err := h.svc.ReorderGroup(c.Request.Context(), c.Param("id"), c.Param("groupId"), req.Order)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondState(c, http.StatusOK, state)
}
