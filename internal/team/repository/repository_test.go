package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/festy23/team_service/internal/database/database"
	"github.com/festy23/team_service/internal/team/model"
	"github.com/festy23/team_service/pkg/pagination"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Team{}, &model.RosterPlayer{}))
	require.NoError(t, db.Exec("CREATE UNIQUE INDEX ux_teams_name ON teams (LOWER(name))").Error)
	require.NoError(t, db.Exec("CREATE UNIQUE INDEX ux_teams_location ON teams (LOWER(location))").Error)
	return db
}

func newRepo(db *gorm.DB) Repository {
	return New(db, zap.NewNop().Sugar())
}

func seedTeam(t *testing.T, db *gorm.DB, name, location string) model.Team {
	t.Helper()
	team := model.Team{Name: name, Location: location}
	require.NoError(t, db.Create(&team).Error)
	return team
}

func seedPlayer(t *testing.T, db *gorm.DB, teamID *uint) model.RosterPlayer {
	t.Helper()
	player := model.RosterPlayer{FirstName: "Jane", LastName: "Doe", TeamID: teamID}
	require.NoError(t, db.Create(&player).Error)
	return player
}

func teamIDOf(t *testing.T, db *gorm.DB, playerID uint) *uint {
	t.Helper()
	var player model.RosterPlayer
	require.NoError(t, db.First(&player, playerID).Error)
	return player.TeamID
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := newRepo(db)
	seedTeam(t, db, "Hawks", "Atlanta")
	seedTeam(t, db, "Celtics", "Boston")
	seedTeam(t, db, "Bulls", "Chicago")
	seedTeam(t, db, "Nets", "Brooklyn")

	names := func(teams []model.Team) []string {
		out := make([]string, 0, len(teams))
		for _, team := range teams {
			out = append(out, team.Name)
		}
		return out
	}

	tests := []struct {
		name     string
		order    model.SortOrder
		expected []string
	}{
		{name: "default is id order", order: model.SortDefault, expected: []string{"Hawks", "Celtics", "Bulls", "Nets"}},
		{name: "by name", order: model.SortByName, expected: []string{"Bulls", "Celtics", "Hawks", "Nets"}},
		{name: "by name desc", order: model.SortByNameDesc, expected: []string{"Nets", "Hawks", "Celtics", "Bulls"}},
		{name: "by location", order: model.SortByLocation, expected: []string{"Hawks", "Celtics", "Nets", "Bulls"}},
		{name: "by location desc", order: model.SortByLocationDesc, expected: []string{"Bulls", "Nets", "Celtics", "Hawks"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teams, err := repo.List(ctx, tt.order, pagination.New(1, 10))

			require.NoError(t, err)
			assert.Equal(t, tt.expected, names(teams))
		})
	}

	t.Run("sort applies before paging", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			seedTeam(t, db, fmt.Sprintf("Z%02d", i), fmt.Sprintf("City %02d", i))
		}

		teams, err := repo.List(ctx, model.SortByNameDesc, pagination.New(2, 10))

		require.NoError(t, err)
		assert.Equal(t, []string{"Nets", "Hawks", "Celtics", "Bulls"}, names(teams))
	})

	t.Run("empty page is an empty slice", func(t *testing.T) {
		teams, err := repo.List(ctx, model.SortDefault, pagination.New(50, 10))

		require.NoError(t, err)
		assert.NotNil(t, teams)
		assert.Empty(t, teams)
	})
}

func TestRepository_GetByIDAndExists(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := newRepo(db)
	team := seedTeam(t, db, "Hawks", "Atlanta")

	found, err := repo.GetByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "Atlanta", found.Location)

	_, err = repo.GetByID(ctx, team.ID+1)
	assert.ErrorIs(t, err, model.ErrTeamNotFound)

	exists, err := repo.Exists(ctx, team.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, team.ID+1)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_FindDuplicate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := newRepo(db)
	hawks := seedTeam(t, db, "Hawks", "Atlanta")
	seedTeam(t, db, "Celtics", "Boston")

	tests := []struct {
		name      string
		teamName  string
		location  string
		excludeID uint
		expected  bool
	}{
		{name: "same name other case", teamName: "HAWKS", location: "Denver", expected: true},
		{name: "same location other case", teamName: "Nuggets", location: "boston", expected: true},
		{name: "unused name and location", teamName: "Nuggets", location: "Denver", expected: false},
		{name: "self is excluded", teamName: "hawks", location: "ATLANTA", excludeID: hawks.ID, expected: false},
		{name: "other team still counts when self excluded", teamName: "Hawks", location: "Boston", excludeID: hawks.ID, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dup, err := repo.FindDuplicate(ctx, tt.teamName, tt.location, tt.excludeID)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, dup)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id", func(t *testing.T) {
		repo := newRepo(setupTestDB(t))
		team := &model.Team{Name: "Hawks", Location: "Atlanta"}

		require.NoError(t, repo.Create(ctx, team))
		assert.NotZero(t, team.ID)
		assert.False(t, team.CreatedAt.IsZero())
	})

	t.Run("unique index maps to team exists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := newRepo(db)
		seedTeam(t, db, "Hawks", "Atlanta")

		err := repo.Create(ctx, &model.Team{Name: "hawks", Location: "Denver"})

		assert.ErrorIs(t, err, model.ErrTeamExists)
	})
}

func TestRepository_UpdateFields(t *testing.T) {
	ctx := context.Background()

	t.Run("applied", func(t *testing.T) {
		db := setupTestDB(t)
		repo := newRepo(db)
		team := seedTeam(t, db, "Hawks", "Atlanta")

		result, err := repo.UpdateFields(ctx, &model.Team{ID: team.ID, Name: "Flames", Location: "Calgary"})

		require.NoError(t, err)
		assert.Equal(t, database.SaveApplied, result)
		stored, err := repo.GetByID(ctx, team.ID)
		require.NoError(t, err)
		assert.Equal(t, "Flames", stored.Name)
		assert.Equal(t, "Calgary", stored.Location)
	})

	t.Run("missing row is a conflict", func(t *testing.T) {
		repo := newRepo(setupTestDB(t))

		result, err := repo.UpdateFields(ctx, &model.Team{ID: 9, Name: "Flames", Location: "Calgary"})

		require.NoError(t, err)
		assert.Equal(t, database.SaveConflict, result)
	})

	t.Run("unique index maps to team exists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := newRepo(db)
		seedTeam(t, db, "Hawks", "Atlanta")
		celtics := seedTeam(t, db, "Celtics", "Boston")

		_, err := repo.UpdateFields(ctx, &model.Team{ID: celtics.ID, Name: "Celtics", Location: "ATLANTA"})

		assert.ErrorIs(t, err, model.ErrTeamExists)
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("releases roster and keeps players", func(t *testing.T) {
		db := setupTestDB(t)
		repo := newRepo(db)
		team := seedTeam(t, db, "Hawks", "Atlanta")
		other := seedTeam(t, db, "Celtics", "Boston")
		member := seedPlayer(t, db, &team.ID)
		outsider := seedPlayer(t, db, &other.ID)

		require.NoError(t, repo.Delete(ctx, team.ID))

		assert.Nil(t, teamIDOf(t, db, member.ID))
		assert.Equal(t, other.ID, *teamIDOf(t, db, outsider.ID))
		exists, err := repo.Exists(ctx, team.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newRepo(setupTestDB(t))

		assert.ErrorIs(t, repo.Delete(ctx, 5), model.ErrTeamNotFound)
	})
}

func TestRepository_Roster(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := newRepo(db)
	team := seedTeam(t, db, "Hawks", "Atlanta")
	empty := seedTeam(t, db, "Celtics", "Boston")
	first := seedPlayer(t, db, &team.ID)
	seedPlayer(t, db, nil)
	second := seedPlayer(t, db, &team.ID)

	roster, err := repo.Roster(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, first.ID, roster[0].ID)
	assert.Equal(t, second.ID, roster[1].ID)

	count, err := repo.CountRoster(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	roster, err = repo.Roster(ctx, empty.ID)
	require.NoError(t, err)
	assert.NotNil(t, roster)
	assert.Empty(t, roster)
}

func TestRepository_GetPlayer(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := newRepo(db)
	player := seedPlayer(t, db, nil)

	found, err := repo.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.False(t, found.OnTeam())

	_, err = repo.GetPlayer(ctx, player.ID+1)
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)
}

func TestRepository_AssignPlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("free player joins", func(t *testing.T) {
		db := setupTestDB(t)
		repo := newRepo(db)
		team := seedTeam(t, db, "Hawks", "Atlanta")
		player := seedPlayer(t, db, nil)

		result, err := repo.AssignPlayer(ctx, team.ID, player.ID)

		require.NoError(t, err)
		assert.Equal(t, database.SaveApplied, result)
		assert.Equal(t, team.ID, *teamIDOf(t, db, player.ID))
	})

	t.Run("player on a team is left alone", func(t *testing.T) {
		db := setupTestDB(t)
		repo := newRepo(db)
		team := seedTeam(t, db, "Hawks", "Atlanta")
		other := seedTeam(t, db, "Celtics", "Boston")
		player := seedPlayer(t, db, &other.ID)

		result, err := repo.AssignPlayer(ctx, team.ID, player.ID)

		require.NoError(t, err)
		assert.Equal(t, database.SaveConflict, result)
		assert.Equal(t, other.ID, *teamIDOf(t, db, player.ID))
	})
}

func TestRepository_ReleasePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("member leaves", func(t *testing.T) {
		db := setupTestDB(t)
		repo := newRepo(db)
		team := seedTeam(t, db, "Hawks", "Atlanta")
		player := seedPlayer(t, db, &team.ID)

		result, err := repo.ReleasePlayer(ctx, team.ID, player.ID)

		require.NoError(t, err)
		assert.Equal(t, database.SaveApplied, result)
		assert.Nil(t, teamIDOf(t, db, player.ID))
	})

	t.Run("member of another team is left alone", func(t *testing.T) {
		db := setupTestDB(t)
		repo := newRepo(db)
		team := seedTeam(t, db, "Hawks", "Atlanta")
		other := seedTeam(t, db, "Celtics", "Boston")
		player := seedPlayer(t, db, &other.ID)

		result, err := repo.ReleasePlayer(ctx, team.ID, player.ID)

		require.NoError(t, err)
		assert.Equal(t, database.SaveConflict, result)
		assert.Equal(t, other.ID, *teamIDOf(t, db, player.ID))
	})
}
