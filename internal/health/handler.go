// Package health provides the liveness endpoint and the startup store check.
package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_service/internal/database/database"
)

// DefaultTimeout bounds a single health probe.
const DefaultTimeout = 5 * time.Second

// requiredTables must exist before the API can serve requests.
var requiredTables = []string{"teams", "players"}

// Handler handles health check requests.
type Handler struct {
	db      *gorm.DB
	logger  *zap.SugaredLogger
	timeout time.Duration
}

// New creates a new health handler instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		db:      db,
		logger:  logger,
		timeout: DefaultTimeout,
	}
}

// Response represents health check response.
type Response struct {
	Status string `json:"status"`
}

// RegisterRoutes registers GET /health.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	r.GET("/health", New(db, logger).Check)
}

// Check handles GET /health request.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{Status: "unhealthy"})
		return
	}

	c.JSON(http.StatusOK, Response{Status: "ok"})
}

// VerifyStore checks once at startup that the database answers and the
// team and player tables exist. The server must not start otherwise.
func VerifyStore(ctx context.Context, db *gorm.DB) error {
	if err := database.HealthCheck(ctx, db); err != nil {
		return err
	}

	migrator := db.WithContext(ctx).Migrator()
	for _, table := range requiredTables {
		if !migrator.HasTable(table) {
			return fmt.Errorf("store not initialized: table %q is missing", table)
		}
	}
	return nil
}
