package service

import (
	"context"
	"errors"
	"fmt"

	"moodsync-backend/models"

	"github.com/google/uuid"
)

// ErrEntryNotFound is returned when a delete targets an unknown entry id.
var ErrEntryNotFound = errors.New("entry not found")

// GratitudeService handles the gratitude journal.
type GratitudeService struct {
	entries GratitudeStore
}

// GratitudeServiceOption is a functional option for GratitudeService
type GratitudeServiceOption func(*GratitudeService)

// GratitudeWithStore sets the gratitude store
func GratitudeWithStore(store GratitudeStore) GratitudeServiceOption {
	return func(s *GratitudeService) {
		s.entries = store
	}
}

// NewGratitudeService creates a new gratitude service
func NewGratitudeService(opts ...GratitudeServiceOption) *GratitudeService {
	s := &GratitudeService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add persists a new gratitude entry stamped with the caller's identity.
func (s *GratitudeService) Add(ctx context.Context, userID, content, date string) (*models.GratitudeEntry, error) {
	entry := &models.GratitudeEntry{
		ID:      uuid.NewString(),
		UserID:  userID,
		Content: content,
		Date:    date,
	}
	if err := s.entries.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to store gratitude entry: %w", err)
	}
	return entry, nil
}

// List returns the most recent entries, newest first by date, scoped to
// the user when userID is non-empty.
func (s *GratitudeService) List(ctx context.Context, userID string, limit int) ([]models.GratitudeEntry, error) {
	return s.entries.List(ctx, userID, int64(limit))
}

// Delete removes the entry with the given id regardless of owner.
// Returns ErrEntryNotFound when no entry matched.
func (s *GratitudeService) Delete(ctx context.Context, id string) error {
	deleted, err := s.entries.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete gratitude entry: %w", err)
	}
	if deleted == 0 {
		return ErrEntryNotFound
	}
	return nil
}
