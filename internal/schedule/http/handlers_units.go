package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/planboard/planboard-backend/internal/schedule/domain"
)

type replaceUnitsReq struct {
	Units []domain.ExecutingUnit `json:"units"`
}

func (h *Handler) replaceUnits(c *gin.Context) {
	var req replaceUnitsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	state, err := h.svc.ReplaceUnits(c.Request.Context(), c.Param("id"), req.Units)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondState(c, http.StatusOK, state)
}

type assignUnitReq struct {
	TaskIDs []int  `json:"taskIds"`
	UnitID  string `json:"unitId"`
}

func (h *Handler) assignUnit(c *gin.Context) {
	var req assignUnitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	state, err := h.svc.AssignUnit(c.Request.Context(), c.Param("id"), req.TaskIDs, req.UnitID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondState(c, http.StatusOK, state)
}
