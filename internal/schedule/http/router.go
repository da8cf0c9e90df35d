package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/planboard/planboard-backend/internal/api/http/middleware"
	"github.com/planboard/planboard-backend/internal/schedule/service"
)

// Import endpoints accept file uploads, so they ride behind a small
// shared rate limit.
const (
	importRate  = rate.Limit(2)
	importBurst = 5
)

// Handler carries the schedule endpoints.
type Handler struct {
	svc *service.ProjectService
}

// Register mounts all schedule routes on the given group.
func Register(rg *gin.RouterGroup, svc *service.ProjectService) {
	h := &Handler{svc: svc}

	projects := rg.Group("/projects")
	projects.POST("", h.createProject)
	projects.GET("", h.listProjects)
	projects.GET("/:id", h.getProject)
	projects.PATCH("/:id", h.updateProject)
	projects.DELETE("/:id", h.deleteProject)
	projects.GET("/:id/export", h.exportProject)

	projects.POST("/:id/tasks", h.createTask)
	projects.PATCH("/:id/tasks/:taskId", h.updateTask)
	projects.DELETE("/:id/tasks/:taskId", h.deleteTask)
	projects.POST("/:id/tasks/:taskId/move", h.moveTask)
	projects.POST("/:id/tasks/:taskId/resize", h.resizeTask)
	projects.POST("/:id/tasks/:taskId/ungroup", h.ungroupTask)

	projects.POST("/:id/groups", h.createGroup)
	projects.PATCH("/:id/groups/:groupId", h.renameGroup)
	projects.DELETE("/:id/groups/:groupId", h.deleteGroup)
	projects.POST("/:id/groups/:groupId/interval", h.editInterval)
	projects.POST("/:id/groups/:groupId/reorder", h.reorderGroup)

	projects.PUT("/:id/units", h.replaceUnits)
	projects.POST("/:id/units/assign", h.assignUnit)

	imports := projects.Group("/:id/import", middleware.RateLimit(importRate, importBurst))
	imports.POST("/plan", h.importPlan)
	imports.POST("/notes", h.importNotes)
}
