package service

import (
	"context"
	"fmt"
)

// AccountService handles bulk user-data erasure.
type AccountService struct {
	moods       MoodStore
	gratitude   GratitudeStore
	assessments LifestyleStore
}

// AccountServiceOption is a functional option for AccountService
type AccountServiceOption func(*AccountService)

// AccountWithMoodStore sets the mood store
func AccountWithMoodStore(store MoodStore) AccountServiceOption {
	return func(s *AccountService) {
		s.moods = store
	}
}

// AccountWithGratitudeStore sets the gratitude store
func AccountWithGratitudeStore(store GratitudeStore) AccountServiceOption {
	return func(s *AccountService) {
		s.gratitude = store
	}
}

// AccountWithLifestyleStore sets the lifestyle store
func AccountWithLifestyleStore(store LifestyleStore) AccountServiceOption {
	return func(s *AccountService) {
		s.assessments = store
	}
}

// NewAccountService creates a new account service
func NewAccountService(opts ...AccountServiceOption) *AccountService {
	s := &AccountService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ErasureResult reports how many records each collection dropped.
type ErasureResult struct {
	MoodEntries          int64 `json:"mood_entries"`
	GratitudeEntries     int64 `json:"gratitude_entries"`
	LifestyleAssessments int64 `json:"lifestyle_assessments"`
}

// EraseUserData removes the user's mood, gratitude and lifestyle records.
// The user account record itself is left untouched.
func (s *AccountService) EraseUserData(ctx context.Context, userID string) (*ErasureResult, error) {
	result := &ErasureResult{}

	var err error
	if result.MoodEntries, err = s.moods.DeleteByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to delete mood entries: %w", err)
	}
	if result.GratitudeEntries, err = s.gratitude.DeleteByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to delete gratitude entries: %w", err)
	}
	if result.LifestyleAssessments, err = s.assessments.DeleteByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to delete lifestyle assessments: %w", err)
	}
	return result, nil
}
