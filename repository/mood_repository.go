package repository

import (
	"context"

	"moodsync-backend/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MoodRepository handles database operations for mood entries
type MoodRepository struct {
	coll *mongo.Collection
}

// NewMoodRepository creates a new mood repository
func NewMoodRepository(db *DB) *MoodRepository {
	return &MoodRepository{coll: db.MoodEntries()}
}

// Insert stores a new mood entry
func (r *MoodRepository) Insert(ctx context.Context, entry *models.MoodEntry) error {
	_, err := r.coll.InsertOne(ctx, entry)
	return err
}

// List returns the most recent entries, newest first. An empty userID
// means all entries (guest view).
func (r *MoodRepository) List(ctx context.Context, userID string, limit int64) ([]models.MoodEntry, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	opts := options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.MoodEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListTriggered returns entries that carry a non-empty trigger, newest
// first. since is an RFC3339 lower bound on timestamp; empty means no
// date filter. String comparison is safe because timestamps are stored
// as RFC3339 UTC.
func (r *MoodRepository) ListTriggered(ctx context.Context, userID, since string, limit int64) ([]models.MoodEntry, error) {
	filter := bson.M{
		"trigger": bson.M{"$exists": true, "$ne": ""},
	}
	if userID != "" {
		filter["user_id"] = userID
	}
	if since != "" {
		filter["timestamp"] = bson.M{"$gte": since}
	}

	opts := options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.MoodEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteByUser removes all mood entries for a user and returns the count.
func (r *MoodRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
