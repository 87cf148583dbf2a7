package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moodsync-backend/models"

	"github.com/google/uuid"
)

// MoodService handles mood check-ins and the derived insight views.
type MoodService struct {
	moods    MoodStore
	users    UserStore
	guidance *GuidanceService
	now      func() time.Time
}

// MoodServiceOption is a functional option for MoodService
type MoodServiceOption func(*MoodService)

// MoodWithStore sets the mood store
func MoodWithStore(store MoodStore) MoodServiceOption {
	return func(s *MoodService) {
		s.moods = store
	}
}

// MoodWithUserStore sets the user store used to resolve display names
func MoodWithUserStore(store UserStore) MoodServiceOption {
	return func(s *MoodService) {
		s.users = store
	}
}

// MoodWithGuidance sets the guidance service
func MoodWithGuidance(guidance *GuidanceService) MoodServiceOption {
	return func(s *MoodService) {
		s.guidance = guidance
	}
}

// MoodWithClock sets the time source. Tests use this for fixed timestamps.
func MoodWithClock(now func() time.Time) MoodServiceOption {
	return func(s *MoodService) {
		s.now = now
	}
}

// NewMoodService creates a new mood service
func NewMoodService(opts ...MoodServiceOption) *MoodService {
	s := &MoodService{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitMoodRequest carries one mood check-in. UserID is empty for guests.
type SubmitMoodRequest struct {
	UserID          string
	Emotion         string
	EmotionLevel    int
	EnergyLevel     int
	FocusLevel      int
	Overthinking    string
	Trigger         string
	Pattern         string
	UnderlyingCause string
	AdditionalNotes string
}

const (
	trendsFetchFactor = 5
	maxInsightRecords = 500
	maxReportRecords  = 1000
	heatmapWindowDays = 90
)

// Submit generates guidance for the check-in and persists the entry.
// Guidance generation never fails the submission.
func (s *MoodService) Submit(ctx context.Context, req SubmitMoodRequest) (*models.MoodEntry, error) {
	if s.moods == nil {
		return nil, errors.New("mood store not set")
	}

	displayName := s.resolveDisplayName(ctx, req.UserID)

	var guidanceText string
	if s.guidance != nil {
		guidanceText = s.guidance.Generate(ctx, req, displayName)
	} else {
		guidanceText = fallbackGuidance(req.Emotion)
	}

	entry := &models.MoodEntry{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		Emotion:         req.Emotion,
		EmotionLevel:    req.EmotionLevel,
		EnergyLevel:     req.EnergyLevel,
		FocusLevel:      req.FocusLevel,
		Overthinking:    req.Overthinking,
		Trigger:         req.Trigger,
		Pattern:         req.Pattern,
		UnderlyingCause: req.UnderlyingCause,
		AdditionalNotes: req.AdditionalNotes,
		AIGuidance:      guidanceText,
		Timestamp:       s.now().UTC().Format(time.RFC3339),
	}

	if err := s.moods.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to store mood entry: %w", err)
	}
	return entry, nil
}

// History returns the most recent entries, newest first, scoped to the
// user when userID is non-empty.
func (s *MoodService) History(ctx context.Context, userID string, limit int) ([]models.MoodEntry, error) {
	return s.moods.List(ctx, userID, int64(limit))
}

// Trends returns the trend view over roughly the last days of entries.
// days only sizes the fetch window (days x 5 records); it is not a true
// date filter.
func (s *MoodService) Trends(ctx context.Context, userID string, days int) ([]models.MoodTrend, error) {
	entries, err := s.moods.List(ctx, userID, int64(days*trendsFetchFactor))
	if err != nil {
		return nil, err
	}
	return BuildMoodTrends(entries), nil
}

// TriggerInsights aggregates trigger frequency over the most recent
// triggered entries.
func (s *MoodService) TriggerInsights(ctx context.Context, userID string) (*TriggerInsights, error) {
	entries, err := s.moods.ListTriggered(ctx, userID, "", maxInsightRecords)
	if err != nil {
		return nil, err
	}
	return BuildTriggerInsights(entries), nil
}

// TriggerHeatmap returns heatmap rows over triggered entries from the
// last 90 days.
func (s *MoodService) TriggerHeatmap(ctx context.Context, userID string) ([]HeatmapRow, error) {
	since := s.now().UTC().AddDate(0, 0, -heatmapWindowDays).Format(time.RFC3339)
	entries, err := s.moods.ListTriggered(ctx, userID, since, maxInsightRecords)
	if err != nil {
		return nil, err
	}
	return BuildTriggerHeatmap(entries), nil
}

// resolveDisplayName looks up the caller's display name for guidance
// personalization. Lookup failures fall back to the guest addressing.
func (s *MoodService) resolveDisplayName(ctx context.Context, userID string) string {
	if userID == "" || s.users == nil {
		return ""
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return ""
	}
	return user.Name
}
