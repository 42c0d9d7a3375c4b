package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"growth_journal/internal/feature/auth/domain/entity"
	"growth_journal/internal/feature/auth/usecase"
	platformdb "growth_journal/internal/platform/db"
	"growth_journal/internal/shared/apperr"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := platformdb.OpenSQLite(":memory:")
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(Models()...), "failed to migrate table")
	return db
}

func TestNewUserRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		user := &entity.User{
			Name:     "Mum",
			Email:    "test@example.com",
			Password: "hashed_password",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		err := repo.Create(context.Background(), &entity.User{Name: "A", Email: "duplicate@example.com", Password: "password1"})
		require.NoError(t, err, "failed to create first user")

		err = repo.Create(context.Background(), &entity.User{Name: "B", Email: "duplicate@example.com", Password: "password2"})

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("nil user error", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		err := repo.Create(context.Background(), nil)

		assert.Error(t, err, "should return error for nil user")
	})
}

func TestUserGorm_FindByEmail(t *testing.T) {
	t.Run("find correct user when multiple users exist", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		users := []*entity.User{
			{Name: "One", Email: "user1@example.com", Password: "pass1"},
			{Name: "Two", Email: "user2@example.com", Password: "pass2", Verified: true},
			{Name: "Three", Email: "user3@example.com", Password: "pass3"},
		}
		for _, u := range users {
			require.NoError(t, repo.Create(context.Background(), u), "failed to create test data")
		}

		found, err := repo.FindByEmail(context.Background(), "user2@example.com")

		require.NoError(t, err, "failed to find user")
		assert.Equal(t, users[1].ID, found.ID, "ID does not match")
		assert.Equal(t, "Two", found.Name)
		assert.Equal(t, "pass2", found.Password, "password does not match")
		assert.True(t, found.Verified)
	})

	t.Run("email not found error", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		found, err := repo.FindByEmail(context.Background(), "notfound@example.com")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})

	t.Run("empty email error", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		found, err := repo.FindByEmail(context.Background(), "")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserGorm_FindByID(t *testing.T) {
	t.Run("find user by ID successfully", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		expected := &entity.User{Name: "Dad", Email: "findbyid@example.com", Password: "hashed_password"}
		require.NoError(t, repo.Create(context.Background(), expected), "failed to create test data")

		found, err := repo.FindByID(context.Background(), expected.ID)

		require.NoError(t, err, "failed to find user")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
	})

	t.Run("ID not found error", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		found, err := repo.FindByID(context.Background(), 999)

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})

	t.Run("ID 0 error", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		found, err := repo.FindByID(context.Background(), 0)

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

// TestUserGorm_DisplayName は表示名の解決と未登録ユーザーのNotFoundを検証します。
func TestUserGorm_DisplayName(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	u := &entity.User{Name: "Grandpa", Email: "gp@example.com", Password: "x"}
	require.NoError(t, repo.Create(context.Background(), u))

	name, err := repo.DisplayName(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grandpa", name)

	_, err = repo.DisplayName(context.Background(), u.ID+100)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
