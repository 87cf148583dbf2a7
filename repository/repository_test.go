package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"moodsync-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// These tests need a running MongoDB. Set MONGODB_URI to run them:
//
//	MONGODB_URI=mongodb://localhost:27017 go test ./repository/...
func testDB(t *testing.T) *DB {
	t.Helper()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := NewDB(ctx, uri, "moodsync_test")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(context.Background())
	})
	return db
}

func TestMoodRepositoryRoundTrip(t *testing.T) {
	db := testDB(t)
	repo := NewMoodRepository(db)
	ctx := context.Background()

	userID := uuid.NewString()
	t.Cleanup(func() {
		_, _ = repo.DeleteByUser(ctx, userID)
	})

	base := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	for i, trigger := range []string{"work", "", "family"} {
		err := repo.Insert(ctx, &models.MoodEntry{
			ID:           uuid.NewString(),
			UserID:       userID,
			Emotion:      "Anxious",
			EmotionLevel: 5 + i,
			Trigger:      trigger,
			Timestamp:    base.AddDate(0, 0, i).Format(time.RFC3339),
		})
		require.NoError(t, err)
	}

	entries, err := repo.List(ctx, userID, 30)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// Newest first.
	assert.Equal(t, "family", entries[0].Trigger)
	assert.Equal(t, "work", entries[2].Trigger)

	triggered, err := repo.ListTriggered(ctx, userID, "", 30)
	require.NoError(t, err)
	require.Len(t, triggered, 2)
	assert.Equal(t, "family", triggered[0].Trigger)

	// The since bound excludes the oldest entry.
	since := base.AddDate(0, 0, 1).Format(time.RFC3339)
	recent, err := repo.ListTriggered(ctx, userID, since, 30)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "family", recent[0].Trigger)

	deleted, err := repo.DeleteByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestGratitudeRepositoryDeleteByID(t *testing.T) {
	db := testDB(t)
	repo := NewGratitudeRepository(db)
	ctx := context.Background()

	userID := uuid.NewString()
	t.Cleanup(func() {
		_, _ = repo.DeleteByUser(ctx, userID)
	})

	entry := &models.GratitudeEntry{
		ID:      uuid.NewString(),
		UserID:  userID,
		Content: "integration test entry",
		Date:    "2025-08-30",
	}
	require.NoError(t, repo.Insert(ctx, entry))

	deleted, err := repo.DeleteByID(ctx, "no-such-id")
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	deleted, err = repo.DeleteByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestUserRepositoryLookups(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	username := "it_" + uuid.NewString()[:8]
	user := &models.User{
		ID:        uuid.NewString(),
		Username:  username,
		Name:      "Integration Test",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	require.NoError(t, repo.Insert(ctx, user))
	t.Cleanup(func() {
		_, _ = db.Users().DeleteOne(ctx, bson.M{"id": user.ID})
	})

	exists, err := repo.UsernameExists(ctx, username)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := repo.FindByUsername(ctx, username)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.FindByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
