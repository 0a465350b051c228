package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/festy23/team_service/internal/database/database"
	"github.com/festy23/team_service/internal/player/model"
	"github.com/festy23/team_service/internal/player/repository"
	"github.com/festy23/team_service/pkg/pagination"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context, lastName string, page pagination.Page) ([]model.Player, error) {
	args := m.Called(ctx, lastName, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Player), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id uint) (*model.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Player), args.Error(1)
}

func (m *mockRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, player *model.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *mockRepository) UpdateNames(ctx context.Context, player *model.Player) (database.SaveResult, error) {
	args := m.Called(ctx, player)
	return args.Get(0).(database.SaveResult), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repository.Repository = (*mockRepository)(nil)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Player{}))
	return db
}

func newIntegrationService(db *gorm.DB) Service {
	log := zap.NewNop().Sugar()
	return New(repository.New(db, log), db, log)
}

func TestService_ListPlayers(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps paging before querying", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, nil, zap.NewNop().Sugar())
		expected := []model.Player{{ID: 1, FirstName: "Jane", LastName: "Doe"}}

		mockRepo.On("List", ctx, "Doe", pagination.Page{Number: 1, ItemsPerPage: 10}).Return(expected, nil)

		players, err := svc.ListPlayers(ctx, &model.ListPlayersQuery{LastName: "Doe", Page: 0, ItemsPerPage: 5})

		require.NoError(t, err)
		assert.Equal(t, expected, players)
		mockRepo.AssertExpectations(t)
	})

	t.Run("upper bound", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, nil, zap.NewNop().Sugar())

		mockRepo.On("List", ctx, "", pagination.Page{Number: 4, ItemsPerPage: 100}).Return([]model.Player{}, nil)

		_, err := svc.ListPlayers(ctx, &model.ListPlayersQuery{Page: 4, ItemsPerPage: 500})

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, nil, zap.NewNop().Sugar())
		dbErr := errors.New("connection reset")

		mockRepo.On("List", ctx, "", mock.Anything).Return(nil, dbErr)

		players, err := svc.ListPlayers(ctx, &model.ListPlayersQuery{Page: 1, ItemsPerPage: 10})

		assert.Nil(t, players)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestService_CreatePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid request never reaches repository", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, nil, zap.NewNop().Sugar())

		player, err := svc.CreatePlayer(ctx, &model.CreatePlayerRequest{FirstName: "Jane"})

		assert.Nil(t, player)
		assert.ErrorIs(t, err, model.ErrInvalidPlayer)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, nil, zap.NewNop().Sugar())

		mockRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Player) bool {
			return p.FirstName == "Jane" && p.LastName == "Doe"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Player).ID = 11
		}).Return(nil)

		player, err := svc.CreatePlayer(ctx, &model.CreatePlayerRequest{FirstName: "Jane", LastName: "Doe"})

		require.NoError(t, err)
		assert.Equal(t, uint(11), player.ID)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_GetPlayer(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mockRepository)
	svc := New(mockRepo, nil, zap.NewNop().Sugar())

	mockRepo.On("GetByID", ctx, uint(3)).Return(nil, model.ErrPlayerNotFound)

	player, err := svc.GetPlayer(ctx, 3)

	assert.Nil(t, player)
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)
}

func TestService_ReplacePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("id mismatch", func(t *testing.T) {
		svc := New(new(mockRepository), nil, zap.NewNop().Sugar())

		err := svc.ReplacePlayer(ctx, 1, &model.ReplacePlayerRequest{ID: 2, FirstName: "A", LastName: "B"})

		assert.ErrorIs(t, err, model.ErrIDMismatch)
	})

	t.Run("invalid names", func(t *testing.T) {
		svc := New(new(mockRepository), nil, zap.NewNop().Sugar())

		err := svc.ReplacePlayer(ctx, 1, &model.ReplacePlayerRequest{ID: 1, FirstName: "A"})

		assert.ErrorIs(t, err, model.ErrInvalidPlayer)
	})

	t.Run("success", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newIntegrationService(db)
		require.NoError(t, db.Create(&model.Player{FirstName: "Jane", LastName: "Doe"}).Error)

		err := svc.ReplacePlayer(ctx, 1, &model.ReplacePlayerRequest{ID: 1, FirstName: "Janet", LastName: "Roe"})

		require.NoError(t, err)
		player, err := svc.GetPlayer(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Janet", player.FirstName)
		assert.Equal(t, "Roe", player.LastName)
	})

	t.Run("missing player", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newIntegrationService(db)

		err := svc.ReplacePlayer(ctx, 9, &model.ReplacePlayerRequest{ID: 9, FirstName: "A", LastName: "B"})

		assert.ErrorIs(t, err, model.ErrPlayerNotFound)
	})

	t.Run("unexplained conflict is fatal", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newIntegrationService(db)
		require.NoError(t, db.Create(&model.Player{FirstName: "Jane", LastName: "Doe"}).Error)

		// Simulate a concurrent writer: the update matches no row although it exists.
		require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:lost_update", func(tx *gorm.DB) {
			tx.RowsAffected = 0
		}))

		err := svc.ReplacePlayer(ctx, 1, &model.ReplacePlayerRequest{ID: 1, FirstName: "A", LastName: "B"})

		assert.ErrorIs(t, err, model.ErrConcurrencyConflict)
	})
}

func TestService_DeletePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, nil, zap.NewNop().Sugar())
		mockRepo.On("Delete", ctx, uint(2)).Return(nil)

		assert.NoError(t, svc.DeletePlayer(ctx, 2))
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, nil, zap.NewNop().Sugar())
		mockRepo.On("Delete", ctx, uint(2)).Return(model.ErrPlayerNotFound)

		assert.ErrorIs(t, svc.DeletePlayer(ctx, 2), model.ErrPlayerNotFound)
	})
}
