package service

import (
	"context"

	"moodsync-backend/models"
)

// Store interfaces consumed by the services. The repository package
// provides the MongoDB implementations; tests substitute in-memory fakes.

// MoodStore persists mood entries.
type MoodStore interface {
	Insert(ctx context.Context, entry *models.MoodEntry) error
	List(ctx context.Context, userID string, limit int64) ([]models.MoodEntry, error)
	ListTriggered(ctx context.Context, userID, since string, limit int64) ([]models.MoodEntry, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

// LifestyleStore persists lifestyle assessments.
type LifestyleStore interface {
	Insert(ctx context.Context, assessment *models.LifestyleAssessment) error
	List(ctx context.Context, userID string, limit int64) ([]models.LifestyleAssessment, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

// GratitudeStore persists gratitude entries.
type GratitudeStore interface {
	Insert(ctx context.Context, entry *models.GratitudeEntry) error
	List(ctx context.Context, userID string, limit int64) ([]models.GratitudeEntry, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

// UserStore persists user accounts.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}
