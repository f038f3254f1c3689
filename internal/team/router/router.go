// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	employeeRepository "employee-directory/internal/employee/repository"
	"employee-directory/internal/team/handler"
	"employee-directory/internal/team/repository"
	"employee-directory/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	employeeRepo := employeeRepository.New(db, logger)
	svc := service.New(repo, employeeRepo, db, logger)
	h := handler.New(svc, logger)

	teams := r.Group("/teams")
	teams.GET("/", h.GetAll)
	teams.GET("/:id", h.GetByID)
	teams.POST("/create", h.Create)
	teams.PUT("/:id/update", h.Update)
	teams.DELETE("/:id", h.Delete)
}
