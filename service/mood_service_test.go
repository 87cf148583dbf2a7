package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"moodsync-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failingGuidance() *GuidanceService {
	s := NewGuidanceService()
	s.generateFn = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		return "", errors.New("completion service down")
	}
	return s
}

func TestSubmitAlwaysStoresGuidance(t *testing.T) {
	store := &memMoodStore{}
	svc := NewMoodService(
		MoodWithStore(store),
		MoodWithGuidance(failingGuidance()),
	)

	entry, err := svc.Submit(context.Background(), SubmitMoodRequest{
		Emotion:      "Anxious",
		EmotionLevel: 7,
		EnergyLevel:  4,
		FocusLevel:   3,
		Overthinking: "A lot",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.NotEmpty(t, entry.AIGuidance)
	require.Len(t, store.entries, 1)
	assert.Equal(t, entry.AIGuidance, store.entries[0].AIGuidance)
}

func TestSubmitPropagatesStoreFailure(t *testing.T) {
	svc := NewMoodService(
		MoodWithStore(&memMoodStore{failAll: true}),
		MoodWithGuidance(failingGuidance()),
	)

	_, err := svc.Submit(context.Background(), SubmitMoodRequest{Emotion: "Tired"})
	assert.ErrorIs(t, err, errStoreDown)
}

func TestSubmitRoundTripsAllFields(t *testing.T) {
	store := &memMoodStore{}
	fixed := time.Date(2025, 8, 30, 14, 5, 0, 0, time.UTC)
	svc := NewMoodService(
		MoodWithStore(store),
		MoodWithGuidance(failingGuidance()),
		MoodWithClock(func() time.Time { return fixed }),
	)

	req := SubmitMoodRequest{
		UserID:          "user-1",
		Emotion:         "Stressed",
		EmotionLevel:    8,
		EnergyLevel:     2,
		FocusLevel:      1,
		Overthinking:    "Constantly",
		Trigger:         "Deadlines",
		Pattern:         "Sunday evenings",
		UnderlyingCause: "Workload",
		AdditionalNotes: "Tough week",
	}

	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	history, err := svc.History(context.Background(), "user-1", 30)
	require.NoError(t, err)
	require.Len(t, history, 1)

	got := history[0]
	assert.Equal(t, req.Emotion, got.Emotion)
	assert.Equal(t, req.EmotionLevel, got.EmotionLevel)
	assert.Equal(t, req.EnergyLevel, got.EnergyLevel)
	assert.Equal(t, req.FocusLevel, got.FocusLevel)
	assert.Equal(t, req.Overthinking, got.Overthinking)
	assert.Equal(t, req.Trigger, got.Trigger)
	assert.Equal(t, req.Pattern, got.Pattern)
	assert.Equal(t, req.UnderlyingCause, got.UnderlyingCause)
	assert.Equal(t, req.AdditionalNotes, got.AdditionalNotes)
	assert.Equal(t, "2025-08-30T14:05:00Z", got.Timestamp)
}

func TestSubmitResolvesDisplayName(t *testing.T) {
	users := &memUserStore{users: []models.User{
		{ID: "user-1", Username: "dana", Name: "Dana"},
	}}

	var capturedPrompt string
	guidance := NewGuidanceService()
	guidance.generateFn = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		capturedPrompt = userPrompt
		return "ok", nil
	}

	svc := NewMoodService(
		MoodWithStore(&memMoodStore{}),
		MoodWithUserStore(users),
		MoodWithGuidance(guidance),
	)

	_, err := svc.Submit(context.Background(), SubmitMoodRequest{UserID: "user-1", Emotion: "Calm"})
	require.NoError(t, err)
	assert.Contains(t, capturedPrompt, "Address the user as Dana.")

	// Unknown identity falls back to the guest addressing.
	_, err = svc.Submit(context.Background(), SubmitMoodRequest{UserID: "ghost", Emotion: "Calm"})
	require.NoError(t, err)
	assert.Contains(t, capturedPrompt, "Address the user as friend.")
}

func TestTrendsSizesFetchWindow(t *testing.T) {
	store := &memMoodStore{}
	for i := 0; i < 20; i++ {
		store.entries = append(store.entries, models.MoodEntry{
			Timestamp: time.Date(2025, 8, 1+i%28, 10, 0, 0, 0, time.UTC).Format(time.RFC3339),
			Emotion:   "Calm",
		})
	}
	svc := NewMoodService(MoodWithStore(store))

	// days=2 fetches at most 10 records.
	trends, err := svc.Trends(context.Background(), "", 2)
	require.NoError(t, err)
	assert.Len(t, trends, 10)
}

func TestTriggerHeatmapWindowsLast90Days(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	store := &memMoodStore{entries: []models.MoodEntry{
		{Timestamp: now.AddDate(0, 0, -120).Format(time.RFC3339), Trigger: "old", Emotion: "Sad", EmotionLevel: 4},
		{Timestamp: now.AddDate(0, 0, -10).Format(time.RFC3339), Trigger: "recent", Emotion: "Anxious", EmotionLevel: 6},
	}}
	svc := NewMoodService(
		MoodWithStore(store),
		MoodWithClock(func() time.Time { return now }),
	)

	rows, err := svc.TriggerHeatmap(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "recent", rows[0].Trigger)
}
