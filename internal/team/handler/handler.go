// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/team_service/internal/team/model"
	"github.com/festy23/team_service/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// writeError maps service errors to responses. Unknown errors are logged and
// answered with 500.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, model.ErrTeamNotFound):
		notFoundResponse(c, model.ErrTeamNotFound.Error())
	case errors.Is(err, model.ErrPlayerNotFound):
		notFoundResponse(c, model.ErrPlayerNotFound.Error())
	case errors.Is(err, model.ErrInvalidTeam), errors.Is(err, model.ErrIDMismatch):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrTeamExists):
		errorResponse(c, "TEAM_EXISTS", model.ErrTeamExists.Error(), http.StatusConflict)
	case errors.Is(err, model.ErrRosterFull):
		errorResponse(c, "ROSTER_FULL", model.ErrRosterFull.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrPlayerOnTeam):
		errorResponse(c, "PLAYER_ON_TEAM", model.ErrPlayerOnTeam.Error(), http.StatusBadRequest)
	default:
		h.logger.Errorw("error "+op, "path", c.Request.URL.Path, "error", err)
		internalErrorResponse(c)
	}
}

// ListTeams handles GET /teams.
// @Summary List teams
// @Tags Teams
// @Produce json
// @Param sortOrder query string false "name, name_desc, location or location_desc"
// @Param page query int false "Page number, values below 1 read as 1"
// @Param itemsPerPage query int false "Page size, clamped to 10..100"
// @Success 200 {array} model.Team
// @Failure 400 {object} ErrorResponse
// @Router /teams [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListTeams(c *gin.Context) {
	var query model.ListTeamsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		errorResponse(c, "INVALID_REQUEST", "page and itemsPerPage must be integers", http.StatusBadRequest)
		return
	}

	teams, err := h.service.ListTeams(c.Request.Context(), &query)
	if err != nil {
		h.writeError(c, "listing teams", err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/{id}.
func (h *Handler) GetTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	team, err := h.service.GetTeam(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "getting team", err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetRoster handles GET /teams/{id}/players.
// @Summary Get team roster
// @Tags Teams
// @Produce json
// @Param id path int true "Team id"
// @Success 200 {array} model.RosterPlayer
// @Failure 404 {object} ErrorResponse
// @Router /teams/{id}/players [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetRoster(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	roster, err := h.service.GetRoster(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "getting roster", err)
		return
	}

	c.JSON(http.StatusOK, roster)
}

// CreateTeam handles POST /teams.
// @Summary Create a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body model.CreateTeamRequest true "Team"
// @Success 201 {object} model.Team
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /teams [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateTeam(c *gin.Context) {
	var req model.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "creating team", err)
		return
	}

	c.Header("Location", fmt.Sprintf("/teams/%d", team.ID))
	c.JSON(http.StatusCreated, team)
}

// ReplaceTeam handles PUT /teams/{id}.
func (h *Handler) ReplaceTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.ReplaceTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.ReplaceTeam(c.Request.Context(), id, &req); err != nil {
		h.writeError(c, "replacing team", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteTeam handles DELETE /teams/{id}.
func (h *Handler) DeleteTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteTeam(c.Request.Context(), id); err != nil {
		h.writeError(c, "deleting team", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddPlayer handles PUT /teams/{id}/players/{playerId}.
// @Summary Add a player to a team
// @Tags Teams
// @Param id path int true "Team id"
// @Param playerId path int true "Player id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /teams/{id}/players/{playerId} [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) AddPlayer(c *gin.Context) {
	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}
	playerID, ok := pathID(c, "playerId")
	if !ok {
		return
	}

	if err := h.service.AddPlayerToTeam(c.Request.Context(), teamID, playerID); err != nil {
		h.writeError(c, "adding player to team", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemovePlayer handles DELETE /teams/{id}/players/{playerId}.
func (h *Handler) RemovePlayer(c *gin.Context) {
	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}
	playerID, ok := pathID(c, "playerId")
	if !ok {
		return
	}

	if err := h.service.RemovePlayerFromTeam(c.Request.Context(), teamID, playerID); err != nil {
		h.writeError(c, "removing player from team", err)
		return
	}

	c.Status(http.StatusNoContent)
}
