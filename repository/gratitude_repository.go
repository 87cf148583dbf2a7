package repository

import (
	"context"

	"moodsync-backend/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GratitudeRepository handles database operations for gratitude entries
type GratitudeRepository struct {
	coll *mongo.Collection
}

// NewGratitudeRepository creates a new gratitude repository
func NewGratitudeRepository(db *DB) *GratitudeRepository {
	return &GratitudeRepository{coll: db.GratitudeEntries()}
}

// Insert stores a new gratitude entry
func (r *GratitudeRepository) Insert(ctx context.Context, entry *models.GratitudeEntry) error {
	_, err := r.coll.InsertOne(ctx, entry)
	return err
}

// List returns the most recent entries sorted by date descending.
// An empty userID means all entries.
func (r *GratitudeRepository) List(ctx context.Context, userID string, limit int64) ([]models.GratitudeEntry, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	opts := options.Find().
		SetSort(bson.M{"date": -1}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.GratitudeEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteByID removes the entry with the given id regardless of owner.
// Returns the number of documents removed (0 when the id is unknown).
func (r *GratitudeRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// DeleteByUser removes all gratitude entries for a user and returns the count.
func (r *GratitudeRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
