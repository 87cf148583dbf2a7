package service

import (
	"context"
	"testing"

	"moodsync-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessComputesAverageScore(t *testing.T) {
	tests := []struct {
		name   string
		scores [5]int
		want   float64
	}{
		{"all eights", [5]int{8, 8, 8, 8, 8}, 8.0},
		{"mixed extremes", [5]int{1, 10, 1, 10, 1}, 4.6},
		{"all tens", [5]int{10, 10, 10, 10, 10}, 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewLifestyleService(LifestyleWithStore(&memLifestyleStore{}))

			got, err := svc.Assess(context.Background(), AssessRequest{
				SleepQuality:     tt.scores[0],
				Nutrition:        tt.scores[1],
				SocialConnection: tt.scores[2],
				PurposeGrowth:    tt.scores[3],
				StressManagement: tt.scores[4],
				Date:             "2025-08-30",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.AverageScore)
		})
	}
}

func TestAssessRoundTripsFields(t *testing.T) {
	store := &memLifestyleStore{}
	svc := NewLifestyleService(LifestyleWithStore(store))

	req := AssessRequest{
		UserID:           "user-1",
		SleepQuality:     7,
		Nutrition:        5,
		SocialConnection: 8,
		PurposeGrowth:    6,
		StressManagement: 4,
		Notes:            "slept badly twice",
		Date:             "2025-08-30",
	}

	created, err := svc.Assess(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	require.Len(t, store.assessments, 1)
	got := store.assessments[0]
	assert.Equal(t, req.Notes, got.Notes)
	assert.Equal(t, req.Date, got.Date)
	assert.Equal(t, req.SleepQuality, got.SleepQuality)
	assert.Equal(t, req.StressManagement, got.StressManagement)
	assert.Equal(t, 6.0, got.AverageScore)
}

func TestHistoryIsNotScopedToUser(t *testing.T) {
	store := &memLifestyleStore{assessments: []models.LifestyleAssessment{
		{ID: "a", UserID: "user-1", Date: "2025-08-28"},
		{ID: "b", UserID: "user-2", Date: "2025-08-29"},
		{ID: "c", Date: "2025-08-30"},
	}}
	svc := NewLifestyleService(LifestyleWithStore(store))

	got, err := svc.History(context.Background(), 10)

	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestWeeklyReportOverStoredAssessments(t *testing.T) {
	store := &memLifestyleStore{}
	svc := NewLifestyleService(LifestyleWithStore(store))

	_, err := svc.Assess(context.Background(), AssessRequest{
		UserID: "user-1", Date: "2025-01-02",
		SleepQuality: 9, Nutrition: 9, SocialConnection: 9, PurposeGrowth: 9, StressManagement: 9,
	})
	require.NoError(t, err)

	report, err := svc.WeeklyReport(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, "ok", report.Status)
	require.Len(t, report.Weeks, 1)
	assert.Equal(t, 9.0, report.Weeks[0].OverallAverage)

	// A user with no assessments gets the sentinel, not zeros.
	empty, err := svc.WeeklyReport(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Equal(t, "no_data", empty.Status)
}
