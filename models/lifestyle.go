package models

// LifestyleAssessment represents one self-rating across the five wellness
// pillars. AverageScore is computed once at creation and never recomputed.
// Date is the caller-supplied date string, passed through unvalidated.
type LifestyleAssessment struct {
	ID               string  `bson:"id" json:"id"`
	UserID           string  `bson:"user_id,omitempty" json:"user_id,omitempty"`
	SleepQuality     int     `bson:"sleep_quality" json:"sleep_quality"`
	Nutrition        int     `bson:"nutrition" json:"nutrition"`
	SocialConnection int     `bson:"social_connection" json:"social_connection"`
	PurposeGrowth    int     `bson:"purpose_growth" json:"purpose_growth"`
	StressManagement int     `bson:"stress_management" json:"stress_management"`
	Notes            string  `bson:"notes,omitempty" json:"notes,omitempty"`
	Date             string  `bson:"date" json:"date"`
	AverageScore     float64 `bson:"average_score" json:"average_score"`
}
