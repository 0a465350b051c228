// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/team_service/internal/database/database"
	"github.com/festy23/team_service/internal/team/model"
	"github.com/festy23/team_service/pkg/pagination"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// List returns one page of teams in the given order.
	List(ctx context.Context, order model.SortOrder, page pagination.Page) ([]model.Team, error)

	// GetByID finds team by id.
	GetByID(ctx context.Context, id uint) (*model.Team, error)

	// Exists reports whether a team with the id exists.
	Exists(ctx context.Context, id uint) (bool, error)

	// FindDuplicate reports whether a team other than excludeID uses the name
	// or the location, ignoring case.
	FindDuplicate(ctx context.Context, name, location string, excludeID uint) (bool, error)

	// Create inserts a new team and fills its generated id.
	Create(ctx context.Context, team *model.Team) error

	// UpdateFields writes name and location of an existing team.
	UpdateFields(ctx context.Context, team *model.Team) (database.SaveResult, error)

	// Delete releases the roster of a team and removes the team.
	Delete(ctx context.Context, id uint) error

	// Roster returns the players of a team in id order.
	Roster(ctx context.Context, teamID uint) ([]model.RosterPlayer, error)

	// CountRoster returns the number of players on a team.
	CountRoster(ctx context.Context, teamID uint) (int64, error)

	// GetPlayer finds a player by id.
	GetPlayer(ctx context.Context, playerID uint) (*model.RosterPlayer, error)

	// AssignPlayer puts a player without a team on the team.
	AssignPlayer(ctx context.Context, teamID, playerID uint) (database.SaveResult, error)

	// ReleasePlayer takes a player off the team if it is on it.
	ReleasePlayer(ctx context.Context, teamID, playerID uint) (database.SaveResult, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func orderColumns(order model.SortOrder) []clause.OrderByColumn {
	byID := clause.OrderByColumn{Column: clause.Column{Name: "id"}}
	switch order {
	case model.SortByName:
		return []clause.OrderByColumn{{Column: clause.Column{Name: "name"}}, byID}
	case model.SortByNameDesc:
		return []clause.OrderByColumn{{Column: clause.Column{Name: "name"}, Desc: true}, byID}
	case model.SortByLocation:
		return []clause.OrderByColumn{{Column: clause.Column{Name: "location"}}, byID}
	case model.SortByLocationDesc:
		return []clause.OrderByColumn{{Column: clause.Column{Name: "location"}, Desc: true}, byID}
	default:
		return []clause.OrderByColumn{byID}
	}
}

// List returns one page of teams. Ordering is applied before offset and limit.
func (r *repository) List(ctx context.Context, order model.SortOrder, page pagination.Page) ([]model.Team, error) {
	teams := []model.Team{}
	err := r.db.WithContext(ctx).
		Clauses(clause.OrderBy{Columns: orderColumns(order)}).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&teams).Error
	if err != nil {
		r.logger.Errorw("List database error", "sort_order", order, "error", err)
		return nil, errors.Wrap(err, "list teams")
	}

	return teams, nil
}

// GetByID finds team by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByID team not found", "team_id", id)
			return nil, model.ErrTeamNotFound
		}
		r.logger.Errorw("GetByID database error", "team_id", id, "error", err)
		return nil, errors.Wrapf(err, "get team %d", id)
	}

	return &team, nil
}

// Exists reports whether a team with the id exists.
func (r *repository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "check team %d", id)
	}

	return count > 0, nil
}

// FindDuplicate reports whether another team shares name or location.
func (r *repository) FindDuplicate(ctx context.Context, name, location string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Team{}).
		Where("(LOWER(name) = LOWER(?) OR LOWER(location) = LOWER(?)) AND id <> ?", name, location, excludeID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("FindDuplicate database error", "name", name, "location", location, "error", err)
		return false, errors.Wrap(err, "find duplicate team")
	}

	return count > 0, nil
}

// Create inserts a new team. A unique index hit is reported as ErrTeamExists.
func (r *repository) Create(ctx context.Context, team *model.Team) error {
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return model.ErrTeamExists
		}
		r.logger.Errorw("Create database error", "name", team.Name, "error", err)
		return errors.Wrap(err, "create team")
	}

	return nil
}

// UpdateFields writes name and location of team.ID.
func (r *repository) UpdateFields(ctx context.Context, team *model.Team) (database.SaveResult, error) {
	result, err := database.ResultOf(r.db.WithContext(ctx).
		Model(&model.Team{}).
		Where("id = ?", team.ID).
		Updates(map[string]interface{}{
			"name":       team.Name,
			"location":   team.Location,
			"updated_at": time.Now(),
		}))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return result, model.ErrTeamExists
		}
		r.logger.Errorw("UpdateFields database error", "team_id", team.ID, "error", err)
		return result, errors.Wrapf(err, "update team %d", team.ID)
	}

	return result, nil
}

// Delete clears team_id on the roster and removes the team.
// Callers run it inside a transaction.
func (r *repository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&model.RosterPlayer{}).
		Where("team_id = ?", id).
		Update("team_id", nil).Error
	if err != nil {
		r.logger.Errorw("Delete release roster error", "team_id", id, "error", err)
		return errors.Wrapf(err, "release roster of team %d", id)
	}

	result := r.db.WithContext(ctx).Delete(&model.Team{}, id)
	if result.Error != nil {
		r.logger.Errorw("Delete database error", "team_id", id, "error", result.Error)
		return errors.Wrapf(result.Error, "delete team %d", id)
	}
	if result.RowsAffected == 0 {
		return model.ErrTeamNotFound
	}

	return nil
}

// Roster returns the players of a team.
func (r *repository) Roster(ctx context.Context, teamID uint) ([]model.RosterPlayer, error) {
	players := []model.RosterPlayer{}
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("id ASC").
		Find(&players).Error
	if err != nil {
		r.logger.Errorw("Roster database error", "team_id", teamID, "error", err)
		return nil, errors.Wrapf(err, "roster of team %d", teamID)
	}

	return players, nil
}

// CountRoster returns the number of players on a team.
func (r *repository) CountRoster(ctx context.Context, teamID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.RosterPlayer{}).
		Where("team_id = ?", teamID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "count roster of team %d", teamID)
	}

	return count, nil
}

// GetPlayer finds a player by id.
func (r *repository) GetPlayer(ctx context.Context, playerID uint) (*model.RosterPlayer, error) {
	var player model.RosterPlayer
	err := r.db.WithContext(ctx).First(&player, playerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetPlayer player not found", "player_id", playerID)
			return nil, model.ErrPlayerNotFound
		}
		r.logger.Errorw("GetPlayer database error", "player_id", playerID, "error", err)
		return nil, errors.Wrapf(err, "get player %d", playerID)
	}

	return &player, nil
}

// AssignPlayer sets team_id only while the player has none, so a player
// picked up by another request in between is left alone.
func (r *repository) AssignPlayer(ctx context.Context, teamID, playerID uint) (database.SaveResult, error) {
	result, err := database.ResultOf(r.db.WithContext(ctx).
		Model(&model.RosterPlayer{}).
		Where("id = ? AND team_id IS NULL", playerID).
		Update("team_id", teamID))
	if err != nil {
		r.logger.Errorw("AssignPlayer database error", "team_id", teamID, "player_id", playerID, "error", err)
		return result, errors.Wrapf(err, "assign player %d to team %d", playerID, teamID)
	}

	return result, nil
}

// ReleasePlayer clears team_id only when it points at teamID.
func (r *repository) ReleasePlayer(ctx context.Context, teamID, playerID uint) (database.SaveResult, error) {
	result, err := database.ResultOf(r.db.WithContext(ctx).
		Model(&model.RosterPlayer{}).
		Where("id = ? AND team_id = ?", playerID, teamID).
		Update("team_id", nil))
	if err != nil {
		r.logger.Errorw("ReleasePlayer database error", "team_id", teamID, "player_id", playerID, "error", err)
		return result, errors.Wrapf(err, "release player %d from team %d", playerID, teamID)
	}

	return result, nil
}
