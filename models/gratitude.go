package models

// GratitudeEntry represents one gratitude journal note.
type GratitudeEntry struct {
	ID      string `bson:"id" json:"id"`
	UserID  string `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Content string `bson:"content" json:"content"`
	Date    string `bson:"date" json:"date"`
}
