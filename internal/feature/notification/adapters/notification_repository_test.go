package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shop_backend/internal/feature/notification/domain/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entity.Notification{}))
	return db
}

func TestNotificationRepository_Inbox(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	seed := []entity.Notification{
		{UserID: 1, Title: "a", Content: "first", CreatedAt: base},
		{UserID: 1, Title: "b", Content: "second", CreatedAt: base.Add(time.Minute)},
		{UserID: 1, Title: "c", Content: "same time", CreatedAt: base.Add(time.Minute)},
		{UserID: 2, Title: "d", Content: "other user", CreatedAt: base},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
		assert.NotZero(t, seed[i].ID)
	}

	list, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{list[0].Title, list[1].Title, list[2].Title})
	assert.False(t, list[0].IsRead)

	unread, err := repo.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), unread)

	n, err := repo.MarkAllRead(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = repo.MarkAllRead(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n, "already read rows are not touched again")

	unread, err = repo.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, unread)

	unread, err = repo.CountUnread(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread, "other users are unaffected")
}

func TestNotificationRepository_ListByUser_Empty(t *testing.T) {
	t.Parallel()
	repo := NewNotificationRepository(setupTestDB(t))

	list, err := repo.ListByUser(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, list)
}
