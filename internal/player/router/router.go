// Package router provides player module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_service/internal/player/handler"
	"github.com/festy23/team_service/internal/player/repository"
	"github.com/festy23/team_service/internal/player/service"
)

// RegisterRoutes registers player module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	players := r.Group("/players")
	players.GET("", h.ListPlayers)
	players.POST("", h.CreatePlayer)
	players.GET("/:id", h.GetPlayer)
	players.PUT("/:id", h.ReplacePlayer)
	players.DELETE("/:id", h.DeletePlayer)
}
