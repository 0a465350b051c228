// Package service provides business logic layer for player module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_service/internal/database/database"
	"github.com/festy23/team_service/internal/player/model"
	"github.com/festy23/team_service/internal/player/repository"
	"github.com/festy23/team_service/pkg/pagination"
)

// Service defines the interface for player business logic operations.
type Service interface {
	// ListPlayers returns one page of players, optionally filtered by last name.
	ListPlayers(ctx context.Context, query *model.ListPlayersQuery) ([]model.Player, error)

	// GetPlayer returns a player by id.
	GetPlayer(ctx context.Context, id uint) (*model.Player, error)

	// CreatePlayer validates and stores a new player.
	CreatePlayer(ctx context.Context, req *model.CreatePlayerRequest) (*model.Player, error)

	// ReplacePlayer overwrites the names of an existing player.
	ReplacePlayer(ctx context.Context, id uint, req *model.ReplacePlayerRequest) error

	// DeletePlayer removes a player and with it its roster membership.
	DeletePlayer(ctx context.Context, id uint) error
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new player service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// ListPlayers returns one page of players.
func (s *service) ListPlayers(ctx context.Context, query *model.ListPlayersQuery) ([]model.Player, error) {
	page := pagination.New(query.Page, query.ItemsPerPage)
	return s.repo.List(ctx, query.LastName, page)
}

// GetPlayer returns a player by id.
func (s *service) GetPlayer(ctx context.Context, id uint) (*model.Player, error) {
	return s.repo.GetByID(ctx, id)
}

// CreatePlayer validates and stores a new player.
func (s *service) CreatePlayer(ctx context.Context, req *model.CreatePlayerRequest) (*model.Player, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	player := &model.Player{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := s.repo.Create(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Infow("player created", "player_id", player.ID)
	return player, nil
}

// ReplacePlayer overwrites first and last name in one transaction.
// A save that matches no row is resolved by re-checking existence: a vanished
// player is ErrPlayerNotFound, anything else is ErrConcurrencyConflict.
func (s *service) ReplacePlayer(ctx context.Context, id uint, req *model.ReplacePlayerRequest) error {
	if req.ID != id {
		return model.ErrIDMismatch
	}
	if err := req.Validate(); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		result, err := txRepo.UpdateNames(ctx, &model.Player{
			ID:        id,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
		if err != nil {
			return err
		}
		if result == database.SaveApplied {
			return nil
		}

		exists, err := txRepo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return model.ErrPlayerNotFound
		}
		return model.ErrConcurrencyConflict
	})
	if err != nil {
		if errors.Is(err, model.ErrConcurrencyConflict) {
			s.logger.Errorw("player update conflict", "player_id", id)
		}
		return err
	}

	s.logger.Infow("player replaced", "player_id", id)
	return nil
}

// DeletePlayer removes a player by id.
func (s *service) DeletePlayer(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("player deleted", "player_id", id)
	return nil
}
