package models

// MoodEntry represents one emotional check-in with generated guidance.
// Timestamps are stored as RFC3339 strings so documents stay flat and
// lexicographically sortable.
type MoodEntry struct {
	ID              string `bson:"id" json:"id"`
	UserID          string `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Emotion         string `bson:"emotion" json:"emotion"`
	EmotionLevel    int    `bson:"emotion_level" json:"emotion_level"`
	EnergyLevel     int    `bson:"energy_level" json:"energy_level"`
	FocusLevel      int    `bson:"focus_level" json:"focus_level"`
	Overthinking    string `bson:"overthinking" json:"overthinking"`
	Trigger         string `bson:"trigger,omitempty" json:"trigger,omitempty"`
	Pattern         string `bson:"pattern,omitempty" json:"pattern,omitempty"`
	UnderlyingCause string `bson:"underlying_cause,omitempty" json:"underlying_cause,omitempty"`
	AdditionalNotes string `bson:"additional_notes,omitempty" json:"additional_notes,omitempty"`
	AIGuidance      string `bson:"ai_guidance" json:"ai_guidance"`
	Timestamp       string `bson:"timestamp" json:"timestamp"`
}

// MoodTrend is one point in the trend view of mood history.
type MoodTrend struct {
	Date         string `json:"date"`
	Emotion      string `json:"emotion"`
	EmotionLevel int    `json:"emotion_level"`
	EnergyLevel  int    `json:"energy_level"`
	FocusLevel   int    `json:"focus_level"`
}
