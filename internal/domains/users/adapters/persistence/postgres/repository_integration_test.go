//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lemono/storefront-api/internal/domains/users/domain"
	"github.com/lemono/storefront-api/internal/domains/users/ports"
	"github.com/lemono/storefront-api/internal/platform/migrations"
)

func setupUsersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("storefront_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestRepository_SaveAndLookup(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupUsersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	user, err := domain.NewUser("Asha Rao", "asha@example.com", domain.ProviderEmail)
	require.NoError(t, err)
	user.PasswordHash = "$2a$10$notarealhashbutlongenough"

	saved, err := repo.Save(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	byEmail, err := repo.GetByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, byEmail.ID)
	assert.True(t, byEmail.HasPassword())

	_, err = repo.GetByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_DuplicateEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupUsersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	first, err := domain.NewUser("Asha Rao", "asha@example.com", domain.ProviderEmail)
	require.NoError(t, err)
	_, err = repo.Save(ctx, first)
	require.NoError(t, err)

	second, err := domain.NewUser("Other Asha", "asha@example.com", domain.ProviderGoogle)
	require.NoError(t, err)
	_, err = repo.Save(ctx, second)
	require.ErrorIs(t, err, ports.ErrEmailTaken)
}

func TestSessionStore_SaveDeletePurge(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupUsersPostgresContainer(t)
	defer cleanup()

	store := NewSessionStore(db, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user-1", "token-1"))
	require.NoError(t, store.Save(ctx, "user-1", "token-2"))
	require.NoError(t, store.Delete(ctx, "user-1"))

	stale := time.Now().Add(-time.Minute)
	require.NoError(t, db.Create(&sessionRecord{
		UserID:    "user-2",
		Token:     "stale-token",
		ExpiresAt: &stale,
	}).Error)
	require.NoError(t, store.PurgeExpired(ctx))

	var count int64
	require.NoError(t, db.Table("user_sessions").Count(&count).Error)
	assert.Zero(t, count)
}

func TestFavoriteStore_Relation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupUsersPostgresContainer(t)
	defer cleanup()

	store := NewFavoriteStore(db)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "user-1", "p-tee"))
	require.NoError(t, store.Add(ctx, "user-1", "p-cap"))
	require.ErrorIs(t, store.Add(ctx, "user-1", "p-tee"), ports.ErrAlreadyFavorite)

	ids, err := store.ListProductIDs(ctx, "user-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p-tee", "p-cap"}, ids)

	require.NoError(t, store.Remove(ctx, "user-1", "p-tee"))
	ids, err = store.ListProductIDs(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p-cap"}, ids)
}
