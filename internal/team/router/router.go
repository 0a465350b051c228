// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_service/internal/team/handler"
	"github.com/festy23/team_service/internal/team/repository"
	"github.com/festy23/team_service/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	teams := r.Group("/teams")
	teams.GET("", h.ListTeams)
	teams.POST("", h.CreateTeam)
	teams.GET("/:id", h.GetTeam)
	teams.PUT("/:id", h.ReplaceTeam)
	teams.DELETE("/:id", h.DeleteTeam)
	teams.GET("/:id/players", h.GetRoster)
	teams.PUT("/:id/players/:playerId", h.AddPlayer)
	teams.DELETE("/:id/players/:playerId", h.RemovePlayer)
}
