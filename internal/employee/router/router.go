// Package router provides employee module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"employee-directory/internal/employee/handler"
	"employee-directory/internal/employee/repository"
	"employee-directory/internal/employee/service"
	teamRepository "employee-directory/internal/team/repository"
)

// RegisterRoutes registers employee module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	teamRepo := teamRepository.New(db, logger)
	svc := service.New(repo, teamRepo, db, logger)
	h := handler.New(svc, logger)

	employees := r.Group("/employees")
	employees.GET("/", h.GetAll)
	employees.GET("/search", h.Search)
	employees.GET("/:id", h.GetByID)
	employees.POST("/create", h.Create)
	employees.PUT("/:id/update", h.Update)
	employees.DELETE("/:id", h.Delete)
}
