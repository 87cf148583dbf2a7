package service

import (
	"context"
	"errors"

	"moodsync-backend/models"
	"moodsync-backend/repository"
)

// In-memory store fakes. Lists return newest-first like the MongoDB
// repositories, relying on entries being appended oldest-first.

type memMoodStore struct {
	entries []models.MoodEntry
	failAll bool
}

var errStoreDown = errors.New("store unreachable")

func (m *memMoodStore) Insert(_ context.Context, entry *models.MoodEntry) error {
	if m.failAll {
		return errStoreDown
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memMoodStore) List(_ context.Context, userID string, limit int64) ([]models.MoodEntry, error) {
	if m.failAll {
		return nil, errStoreDown
	}
	out := []models.MoodEntry{}
	for i := len(m.entries) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if userID != "" && m.entries[i].UserID != userID {
			continue
		}
		out = append(out, m.entries[i])
	}
	return out, nil
}

func (m *memMoodStore) ListTriggered(_ context.Context, userID, since string, limit int64) ([]models.MoodEntry, error) {
	if m.failAll {
		return nil, errStoreDown
	}
	out := []models.MoodEntry{}
	for i := len(m.entries) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		e := m.entries[i]
		if e.Trigger == "" {
			continue
		}
		if userID != "" && e.UserID != userID {
			continue
		}
		if since != "" && e.Timestamp < since {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *memMoodStore) DeleteByUser(_ context.Context, userID string) (int64, error) {
	kept := m.entries[:0]
	var deleted int64
	for _, e := range m.entries {
		if e.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	m.entries = kept
	return deleted, nil
}

type memLifestyleStore struct {
	assessments []models.LifestyleAssessment
}

func (m *memLifestyleStore) Insert(_ context.Context, a *models.LifestyleAssessment) error {
	m.assessments = append(m.assessments, *a)
	return nil
}

func (m *memLifestyleStore) List(_ context.Context, userID string, limit int64) ([]models.LifestyleAssessment, error) {
	out := []models.LifestyleAssessment{}
	for i := len(m.assessments) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if userID != "" && m.assessments[i].UserID != userID {
			continue
		}
		out = append(out, m.assessments[i])
	}
	return out, nil
}

func (m *memLifestyleStore) DeleteByUser(_ context.Context, userID string) (int64, error) {
	kept := m.assessments[:0]
	var deleted int64
	for _, a := range m.assessments {
		if a.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, a)
	}
	m.assessments = kept
	return deleted, nil
}

type memGratitudeStore struct {
	entries []models.GratitudeEntry
}

func (m *memGratitudeStore) Insert(_ context.Context, entry *models.GratitudeEntry) error {
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memGratitudeStore) List(_ context.Context, userID string, limit int64) ([]models.GratitudeEntry, error) {
	out := []models.GratitudeEntry{}
	for i := len(m.entries) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if userID != "" && m.entries[i].UserID != userID {
			continue
		}
		out = append(out, m.entries[i])
	}
	return out, nil
}

func (m *memGratitudeStore) DeleteByID(_ context.Context, id string) (int64, error) {
	for i, e := range m.entries {
		if e.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memGratitudeStore) DeleteByUser(_ context.Context, userID string) (int64, error) {
	kept := m.entries[:0]
	var deleted int64
	for _, e := range m.entries {
		if e.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	m.entries = kept
	return deleted, nil
}

type memUserStore struct {
	users []models.User
}

func (m *memUserStore) Insert(_ context.Context, user *models.User) error {
	m.users = append(m.users, *user)
	return nil
}

func (m *memUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserStore) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}
