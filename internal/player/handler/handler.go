// Package handler provides HTTP handlers for player endpoints.
package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/team_service/internal/player/model"
	"github.com/festy23/team_service/internal/player/service"
)

// Handler handles HTTP requests for player endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new player handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListPlayers handles GET /players.
// @Summary List players
// @Tags Players
// @Produce json
// @Param lastName query string false "Exact last name"
// @Param page query int false "Page number, values below 1 read as 1"
// @Param itemsPerPage query int false "Page size, clamped to 10..100"
// @Success 200 {array} model.Player
// @Failure 400 {object} ErrorResponse
// @Router /players [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListPlayers(c *gin.Context) {
	var query model.ListPlayersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		errorResponse(c, "INVALID_REQUEST", "page and itemsPerPage must be integers", http.StatusBadRequest)
		return
	}

	players, err := h.service.ListPlayers(c.Request.Context(), &query)
	if err != nil {
		h.logger.Errorw("error listing players", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, players)
}

// GetPlayer handles GET /players/{id}.
func (h *Handler) GetPlayer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	player, err := h.service.GetPlayer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			notFoundResponse(c, "player not found")
			return
		}
		h.logger.Errorw("error getting player", "player_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, player)
}

// CreatePlayer handles POST /players.
// @Summary Create a player
// @Tags Players
// @Accept json
// @Produce json
// @Param request body model.CreatePlayerRequest true "Player"
// @Success 201 {object} model.Player
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /players [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreatePlayer(c *gin.Context) {
	var req model.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	player, err := h.service.CreatePlayer(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidPlayer) {
			errorResponse(c, "INVALID_REQUEST", model.ErrInvalidPlayer.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error creating player", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.Header("Location", fmt.Sprintf("/players/%d", player.ID))
	c.JSON(http.StatusCreated, player)
}

// ReplacePlayer handles PUT /players/{id}.
func (h *Handler) ReplacePlayer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.ReplacePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.service.ReplacePlayer(c.Request.Context(), id, &req)
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, model.ErrIDMismatch), errors.Is(err, model.ErrInvalidPlayer):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrPlayerNotFound):
		notFoundResponse(c, "player not found")
	default:
		h.logger.Errorw("error replacing player", "player_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}

// DeletePlayer handles DELETE /players/{id}.
func (h *Handler) DeletePlayer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeletePlayer(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			notFoundResponse(c, "player not found")
			return
		}
		h.logger.Errorw("error deleting player", "player_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}
