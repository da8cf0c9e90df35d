package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/planboard/planboard-backend/internal/api/http"
	"github.com/planboard/planboard-backend/internal/api/http/middleware"
	schedulehttp "github.com/planboard/planboard-backend/internal/schedule/http"
	"github.com/planboard/planboard-backend/internal/schedule/repository"
	"github.com/planboard/planboard-backend/internal/schedule/service"
)

// SetGinMode switches gin to release mode outside development.
func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

type RouterDeps struct {
	ServiceName    string
	Version        string
	APIKey         string
	AllowedOrigins []string
	Store          repository.ProjectStore
	Service        *service.ProjectService
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-Key"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.APIKey(dep.APIKey))
	api.Use(middleware.RequestID())

	schedulehttp.Register(api, dep.Service)

	return r
}
