// Package repository provides data access layer for player module.
package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_service/internal/database/database"
	"github.com/festy23/team_service/internal/player/model"
	"github.com/festy23/team_service/pkg/pagination"
)

// Repository defines the interface for player data access operations.
type Repository interface {
	// List returns one page of players, optionally filtered by exact last name.
	List(ctx context.Context, lastName string, page pagination.Page) ([]model.Player, error)

	// GetByID finds player by id.
	GetByID(ctx context.Context, id uint) (*model.Player, error)

	// Exists reports whether a player with the id exists.
	Exists(ctx context.Context, id uint) (bool, error)

	// Create inserts a new player and fills its generated id.
	Create(ctx context.Context, player *model.Player) error

	// UpdateNames writes first and last name of an existing player.
	UpdateNames(ctx context.Context, player *model.Player) (database.SaveResult, error)

	// Delete removes a player by id.
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new player repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// List returns one page of players in id order.
func (r *repository) List(ctx context.Context, lastName string, page pagination.Page) ([]model.Player, error) {
	query := r.db.WithContext(ctx).Model(&model.Player{})
	if lastName != "" {
		query = query.Where("last_name = ?", lastName)
	}

	players := []model.Player{}
	err := query.
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&players).Error
	if err != nil {
		r.logger.Errorw("List database error", "last_name", lastName, "error", err)
		return nil, errors.Wrap(err, "list players")
	}

	return players, nil
}

// GetByID finds player by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*model.Player, error) {
	var player model.Player
	err := r.db.WithContext(ctx).First(&player, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByID player not found", "player_id", id)
			return nil, model.ErrPlayerNotFound
		}
		r.logger.Errorw("GetByID database error", "player_id", id, "error", err)
		return nil, errors.Wrapf(err, "get player %d", id)
	}

	return &player, nil
}

// Exists reports whether a player with the id exists.
func (r *repository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Player{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "check player %d", id)
	}

	return count > 0, nil
}

// Create inserts a new player.
func (r *repository) Create(ctx context.Context, player *model.Player) error {
	now := time.Now()
	player.CreatedAt = now
	player.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(player).Error; err != nil {
		r.logger.Errorw("Create database error", "error", err)
		return errors.Wrap(err, "create player")
	}

	return nil
}

// UpdateNames writes the names of player.ID. Team membership is left as is.
func (r *repository) UpdateNames(ctx context.Context, player *model.Player) (database.SaveResult, error) {
	result, err := database.ResultOf(r.db.WithContext(ctx).
		Model(&model.Player{}).
		Where("id = ?", player.ID).
		Updates(map[string]interface{}{
			"first_name": player.FirstName,
			"last_name":  player.LastName,
			"updated_at": time.Now(),
		}))
	if err != nil {
		r.logger.Errorw("UpdateNames database error", "player_id", player.ID, "error", err)
		return result, errors.Wrapf(err, "update player %d", player.ID)
	}

	return result, nil
}

// Delete removes a player by id. The row carries its own membership, so the
// player leaves any roster with it.
func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Player{}, id)
	if result.Error != nil {
		r.logger.Errorw("Delete database error", "player_id", id, "error", result.Error)
		return errors.Wrapf(result.Error, "delete player %d", id)
	}
	if result.RowsAffected == 0 {
		return model.ErrPlayerNotFound
	}

	return nil
}
