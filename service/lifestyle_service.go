package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"moodsync-backend/models"

	"github.com/google/uuid"
)

// LifestyleService handles lifestyle self-assessments and the weekly report.
type LifestyleService struct {
	assessments LifestyleStore
}

// LifestyleServiceOption is a functional option for LifestyleService
type LifestyleServiceOption func(*LifestyleService)

// LifestyleWithStore sets the lifestyle store
func LifestyleWithStore(store LifestyleStore) LifestyleServiceOption {
	return func(s *LifestyleService) {
		s.assessments = store
	}
}

// NewLifestyleService creates a new lifestyle service
func NewLifestyleService(opts ...LifestyleServiceOption) *LifestyleService {
	s := &LifestyleService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AssessRequest carries one lifestyle self-assessment.
type AssessRequest struct {
	UserID           string
	SleepQuality     int
	Nutrition        int
	SocialConnection int
	PurposeGrowth    int
	StressManagement int
	Notes            string
	Date             string
}

// Assess computes the average score and persists the assessment. The
// average is stored once and never recomputed.
func (s *LifestyleService) Assess(ctx context.Context, req AssessRequest) (*models.LifestyleAssessment, error) {
	if s.assessments == nil {
		return nil, errors.New("lifestyle store not set")
	}

	sum := req.SleepQuality + req.Nutrition + req.SocialConnection + req.PurposeGrowth + req.StressManagement
	average := math.Round(float64(sum)/5*10) / 10

	assessment := &models.LifestyleAssessment{
		ID:               uuid.NewString(),
		UserID:           req.UserID,
		SleepQuality:     req.SleepQuality,
		Nutrition:        req.Nutrition,
		SocialConnection: req.SocialConnection,
		PurposeGrowth:    req.PurposeGrowth,
		StressManagement: req.StressManagement,
		Notes:            req.Notes,
		Date:             req.Date,
		AverageScore:     average,
	}

	if err := s.assessments.Insert(ctx, assessment); err != nil {
		return nil, fmt.Errorf("failed to store assessment: %w", err)
	}
	return assessment, nil
}

// History returns the most recent assessments, newest first by date.
// It is deliberately not scoped to a user: the client renders it as a
// shared view, so the store is queried across all users.
func (s *LifestyleService) History(ctx context.Context, limit int) ([]models.LifestyleAssessment, error) {
	return s.assessments.List(ctx, "", int64(limit))
}

// WeeklyReport aggregates the most recent assessments for the user into
// weekly buckets with trend and strength classification.
func (s *LifestyleService) WeeklyReport(ctx context.Context, userID string) (*WeeklyReport, error) {
	assessments, err := s.assessments.List(ctx, userID, maxReportRecords)
	if err != nil {
		return nil, err
	}
	return BuildWeeklyReport(assessments), nil
}
