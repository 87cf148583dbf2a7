package service

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"moodsync-backend/models"
)

// Pure aggregation over record lists already fetched from storage.
// None of these functions query or mutate anything.

// BuildMoodTrends maps mood entries to trend points, preserving the input
// (newest-first) order. Entries with unparseable timestamps are skipped.
func BuildMoodTrends(entries []models.MoodEntry) []models.MoodTrend {
	trends := make([]models.MoodTrend, 0, len(entries))
	for _, entry := range entries {
		ts, err := time.Parse(time.RFC3339, entry.Timestamp)
		if err != nil {
			continue
		}
		trends = append(trends, models.MoodTrend{
			Date:         ts.Format("2006-01-02 15:04"),
			Emotion:      entry.Emotion,
			EmotionLevel: entry.EmotionLevel,
			EnergyLevel:  entry.EnergyLevel,
			FocusLevel:   entry.FocusLevel,
		})
	}
	return trends
}

// WeeklySummary holds the per-pillar means for one week bucket.
type WeeklySummary struct {
	Week             string  `json:"week"`
	SleepQuality     float64 `json:"sleep_quality"`
	Nutrition        float64 `json:"nutrition"`
	SocialConnection float64 `json:"social_connection"`
	PurposeGrowth    float64 `json:"purpose_growth"`
	StressManagement float64 `json:"stress_management"`
	OverallAverage   float64 `json:"overall_average"`
	Entries          int     `json:"entries"`
}

// WeeklyReport is the periodic rollup over lifestyle assessments.
type WeeklyReport struct {
	Status              string          `json:"status"`
	Message             string          `json:"message,omitempty"`
	Weeks               []WeeklySummary `json:"weeks,omitempty"`
	Trend               string          `json:"trend,omitempty"`
	Strengths           []string        `json:"strengths,omitempty"`
	AreasForImprovement []string        `json:"areas_for_improvement,omitempty"`
}

const maxReportWeeks = 8

var pillarNames = []string{
	"sleep_quality",
	"nutrition",
	"social_connection",
	"purpose_growth",
	"stress_management",
}

// BuildWeeklyReport buckets assessments by calendar week (week 0 starts on
// January 1st), keeps the 8 most recent non-empty buckets newest-first and
// classifies the trend between the two most recent weeks. Assessments with
// malformed dates are silently skipped.
func BuildWeeklyReport(assessments []models.LifestyleAssessment) *WeeklyReport {
	type bucket struct {
		sums    [5]float64
		overall float64
		count   int
	}
	buckets := map[string]*bucket{}

	for _, a := range assessments {
		day, err := time.Parse("2006-01-02", a.Date)
		if err != nil {
			continue
		}
		key := weekKey(day)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.sums[0] += float64(a.SleepQuality)
		b.sums[1] += float64(a.Nutrition)
		b.sums[2] += float64(a.SocialConnection)
		b.sums[3] += float64(a.PurposeGrowth)
		b.sums[4] += float64(a.StressManagement)
		b.count++
	}

	if len(buckets) == 0 {
		return &WeeklyReport{
			Status:  "no_data",
			Message: "No lifestyle assessments yet. Complete your first assessment to see your weekly report.",
		}
	}

	// Week keys are zero-padded, so lexical order is chronological.
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if len(keys) > maxReportWeeks {
		keys = keys[:maxReportWeeks]
	}

	weeks := make([]WeeklySummary, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		n := float64(b.count)
		means := [5]float64{}
		total := 0.0
		for i := range b.sums {
			means[i] = roundScore(b.sums[i] / n)
			total += b.sums[i] / n
		}
		weeks = append(weeks, WeeklySummary{
			Week:             key,
			SleepQuality:     means[0],
			Nutrition:        means[1],
			SocialConnection: means[2],
			PurposeGrowth:    means[3],
			StressManagement: means[4],
			OverallAverage:   roundScore(total / 5),
			Entries:          b.count,
		})
	}

	report := &WeeklyReport{
		Status: "ok",
		Weeks:  weeks,
		Trend:  classifyTrend(weeks),
	}

	latest := weeks[0]
	latestMeans := []float64{
		latest.SleepQuality,
		latest.Nutrition,
		latest.SocialConnection,
		latest.PurposeGrowth,
		latest.StressManagement,
	}
	for i, mean := range latestMeans {
		switch {
		case mean >= 8:
			report.Strengths = append(report.Strengths, humanizePillar(pillarNames[i]))
		case mean <= 5:
			report.AreasForImprovement = append(report.AreasForImprovement, humanizePillar(pillarNames[i]))
		}
	}

	return report
}

// weekKey returns "YYYY-Wnn" where week 0 covers the first seven days of
// the year.
func weekKey(day time.Time) string {
	week := (day.YearDay() - 1) / 7
	return fmt.Sprintf("%d-W%02d", day.Year(), week)
}

// classifyTrend compares the two most recent weekly overall averages.
// A difference of at most 0.5 in either direction counts as stable.
func classifyTrend(weeks []WeeklySummary) string {
	if len(weeks) < 2 {
		return "stable"
	}
	delta := weeks[0].OverallAverage - weeks[1].OverallAverage
	switch {
	case delta > 0.5:
		return "improving"
	case delta < -0.5:
		return "declining"
	default:
		return "stable"
	}
}

// humanizePillar turns "sleep_quality" into "Sleep Quality".
func humanizePillar(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// roundScore rounds to one decimal place.
func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}

// TriggerInsight is the aggregate for one normalized trigger.
type TriggerInsight struct {
	Trigger  string         `json:"trigger"`
	Count    int            `json:"count"`
	Emotions map[string]int `json:"emotions"`
}

// TriggerInsights summarizes trigger frequency across mood entries.
type TriggerInsights struct {
	Triggers     []TriggerInsight `json:"triggers"`
	TotalRecords int              `json:"total_records"`
}

const maxTriggerInsights = 10

// BuildTriggerInsights counts occurrences per normalized (trimmed,
// lowercased) trigger and the emotions seen with each, returning the top
// 10 triggers by count. Ties keep first-seen order.
func BuildTriggerInsights(entries []models.MoodEntry) *TriggerInsights {
	counts := map[string]*TriggerInsight{}
	order := []string{}
	total := 0

	for _, entry := range entries {
		trigger := strings.ToLower(strings.TrimSpace(entry.Trigger))
		if trigger == "" {
			continue
		}
		total++

		insight, ok := counts[trigger]
		if !ok {
			insight = &TriggerInsight{
				Trigger:  trigger,
				Emotions: map[string]int{},
			}
			counts[trigger] = insight
			order = append(order, trigger)
		}
		insight.Count++
		insight.Emotions[entry.Emotion]++
	}

	triggers := make([]TriggerInsight, 0, len(order))
	for _, key := range order {
		triggers = append(triggers, *counts[key])
	}
	sort.SliceStable(triggers, func(i, j int) bool {
		return triggers[i].Count > triggers[j].Count
	})
	if len(triggers) > maxTriggerInsights {
		triggers = triggers[:maxTriggerInsights]
	}

	return &TriggerInsights{
		Triggers:     triggers,
		TotalRecords: total,
	}
}

// HeatmapRow is one date-bucketed trigger observation.
type HeatmapRow struct {
	Date      string `json:"date"`
	Trigger   string `json:"trigger"`
	Emotion   string `json:"emotion"`
	Intensity int    `json:"intensity"`
}

const maxHeatmapTrigger = 50

// BuildTriggerHeatmap emits one row per triggered entry. Intensity falls
// back to 5 when the entry carries no emotion level.
func BuildTriggerHeatmap(entries []models.MoodEntry) []HeatmapRow {
	rows := make([]HeatmapRow, 0, len(entries))
	for _, entry := range entries {
		if entry.Trigger == "" {
			continue
		}
		ts, err := time.Parse(time.RFC3339, entry.Timestamp)
		if err != nil {
			continue
		}

		trigger := strings.ToLower(entry.Trigger)
		if runes := []rune(trigger); len(runes) > maxHeatmapTrigger {
			trigger = string(runes[:maxHeatmapTrigger])
		}

		intensity := entry.EmotionLevel
		if intensity == 0 {
			intensity = 5
		}

		rows = append(rows, HeatmapRow{
			Date:      ts.Format("2006-01-02"),
			Trigger:   trigger,
			Emotion:   entry.Emotion,
			Intensity: intensity,
		})
	}
	return rows
}
