// Package service provides business logic layer for team module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_service/internal/database/database"
	"github.com/festy23/team_service/internal/team/model"
	"github.com/festy23/team_service/internal/team/repository"
	"github.com/festy23/team_service/pkg/pagination"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// ListTeams returns one page of teams in the requested order.
	ListTeams(ctx context.Context, query *model.ListTeamsQuery) ([]model.Team, error)

	// GetTeam returns a team by id.
	GetTeam(ctx context.Context, id uint) (*model.Team, error)

	// GetRoster returns the players of a team.
	GetRoster(ctx context.Context, id uint) ([]model.RosterPlayer, error)

	// CreateTeam validates and stores a new team.
	CreateTeam(ctx context.Context, req *model.CreateTeamRequest) (*model.Team, error)

	// ReplaceTeam overwrites name and location of an existing team.
	ReplaceTeam(ctx context.Context, id uint, req *model.ReplaceTeamRequest) error

	// DeleteTeam removes a team and releases its players.
	DeleteTeam(ctx context.Context, id uint) error

	// AddPlayerToTeam puts a player on a team's roster.
	AddPlayerToTeam(ctx context.Context, teamID, playerID uint) error

	// RemovePlayerFromTeam takes a player off a team's roster.
	RemovePlayerFromTeam(ctx context.Context, teamID, playerID uint) error
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// ListTeams returns one page of teams.
func (s *service) ListTeams(ctx context.Context, query *model.ListTeamsQuery) ([]model.Team, error) {
	page := pagination.New(query.Page, query.ItemsPerPage)
	return s.repo.List(ctx, model.ParseSortOrder(query.SortOrder), page)
}

// GetTeam returns a team by id.
func (s *service) GetTeam(ctx context.Context, id uint) (*model.Team, error) {
	return s.repo.GetByID(ctx, id)
}

// GetRoster returns the players of a team. An empty roster is an empty slice.
func (s *service) GetRoster(ctx context.Context, id uint) ([]model.RosterPlayer, error) {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrTeamNotFound
	}

	return s.repo.Roster(ctx, id)
}

// CreateTeam validates the request, rejects duplicates and stores the team
// in one transaction.
func (s *service) CreateTeam(ctx context.Context, req *model.CreateTeamRequest) (*model.Team, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	team := &model.Team{
		Name:     req.Name,
		Location: req.Location,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		dup, err := txRepo.FindDuplicate(ctx, team.Name, team.Location, 0)
		if err != nil {
			return err
		}
		if dup {
			return model.ErrTeamExists
		}

		return txRepo.Create(ctx, team)
	})
	if err != nil {
		if errors.Is(err, model.ErrTeamExists) {
			s.logger.Infow("team rejected as duplicate", "name", team.Name, "location", team.Location)
		}
		return nil, err
	}

	s.logger.Infow("team created", "team_id", team.ID, "name", team.Name)
	return team, nil
}

// ReplaceTeam overwrites name and location. The roster is untouched.
func (s *service) ReplaceTeam(ctx context.Context, id uint, req *model.ReplaceTeamRequest) error {
	if req.ID != id {
		return model.ErrIDMismatch
	}
	if err := req.Validate(); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		dup, err := txRepo.FindDuplicate(ctx, req.Name, req.Location, id)
		if err != nil {
			return err
		}
		if dup {
			return model.ErrTeamExists
		}

		result, err := txRepo.UpdateFields(ctx, &model.Team{
			ID:       id,
			Name:     req.Name,
			Location: req.Location,
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
			return model.ErrTeamNotFound
		}
		return model.ErrConcurrencyConflict
	})
	if err != nil {
		if errors.Is(err, model.ErrConcurrencyConflict) {
			s.logger.Errorw("team update conflict", "team_id", id)
		}
		return err
	}

	s.logger.Infow("team replaced", "team_id", id)
	return nil
}

// DeleteTeam releases the roster and removes the team in one transaction.
func (s *service) DeleteTeam(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.New(tx, s.logger).Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("team deleted", "team_id", id)
	return nil
}

// AddPlayerToTeam checks existence, then capacity, then membership, and
// assigns the player. The assignment only applies to a player without a
// team, so a concurrent assignment elsewhere surfaces as ErrPlayerOnTeam.
func (s *service) AddPlayerToTeam(ctx context.Context, teamID, playerID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		exists, err := txRepo.Exists(ctx, teamID)
		if err != nil {
			return err
		}
		if !exists {
			return model.ErrTeamNotFound
		}

		player, err := txRepo.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}

		count, err := txRepo.CountRoster(ctx, teamID)
		if err != nil {
			return err
		}
		if count >= model.MaxPlayers {
			return model.ErrRosterFull
		}

		if player.OnTeam() {
			return model.ErrPlayerOnTeam
		}

		result, err := txRepo.AssignPlayer(ctx, teamID, playerID)
		if err != nil {
			return err
		}
		if result == database.SaveApplied {
			return nil
		}

		if _, err := txRepo.GetPlayer(ctx, playerID); err != nil {
			return err
		}
		return model.ErrPlayerOnTeam
	})
	if err != nil {
		return err
	}

	s.logger.Infow("player added to team", "team_id", teamID, "player_id", playerID)
	return nil
}

// RemovePlayerFromTeam takes the player off the roster. A player that is not
// on this team is left as is and the call still succeeds.
func (s *service) RemovePlayerFromTeam(ctx context.Context, teamID, playerID uint) error {
	var removed bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		exists, err := txRepo.Exists(ctx, teamID)
		if err != nil {
			return err
		}
		if !exists {
			return model.ErrTeamNotFound
		}

		if _, err := txRepo.GetPlayer(ctx, playerID); err != nil {
			return err
		}

		result, err := txRepo.ReleasePlayer(ctx, teamID, playerID)
		if err != nil {
			return err
		}
		removed = result == database.SaveApplied
		return nil
	})
	if err != nil {
		return err
	}

	if removed {
		s.logger.Infow("player removed from team", "team_id", teamID, "player_id", playerID)
	} else {
		s.logger.Debugw("player not on team, nothing to remove", "team_id", teamID, "player_id", playerID)
	}
	return nil
}
