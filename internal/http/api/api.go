// Package api wires HTTP routes to their handlers.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/studyapp/studygroup/internal/http/api/handlers"
	"github.com/studyapp/studygroup/internal/repository"
	"gorm.io/gorm"
)

// RegisterRoutes registers all service routes on the engine.
func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	if r == nil || db == nil {
		return
	}

	healthHandler := handlers.NewHealthHandler(db)
	r.GET("/healthz", healthHandler.Healthz)

	repo := repository.NewStudyGroupRepository(db)
	studyGroupHandler := handlers.NewStudyGroupHandler(repo)

	apiGroup := r.Group("/api")
	apiGroup.POST("/studygroup", studyGroupHandler.Create)
	apiGroup.GET("/studygroup", studyGroupHandler.List)
	apiGroup.GET("/studygroup/:id", studyGroupHandler.Get)
	apiGroup.POST("/studygroup/:id/join/:userId", studyGroupHandler.Join)
	apiGroup.POST("/studygroup/:id/leave/:userId", studyGroupHandler.Leave)
	apiGroup.DELETE("/studygroup/:id", studyGroupHandler.Delete)
}
