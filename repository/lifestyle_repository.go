package repository

import (
	"context"

	"moodsync-backend/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// LifestyleRepository handles database operations for lifestyle assessments
type LifestyleRepository struct {
	coll *mongo.Collection
}

// NewLifestyleRepository creates a new lifestyle repository
func NewLifestyleRepository(db *DB) *LifestyleRepository {
	return &LifestyleRepository{coll: db.LifestyleAssessments()}
}

// Insert stores a new lifestyle assessment
func (r *LifestyleRepository) Insert(ctx context.Context, assessment *models.LifestyleAssessment) error {
	_, err := r.coll.InsertOne(ctx, assessment)
	return err
}

// List returns the most recent assessments sorted by date descending.
// An empty userID means all assessments.
func (r *LifestyleRepository) List(ctx context.Context, userID string, limit int64) ([]models.LifestyleAssessment, error) {
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

	assessments := []models.LifestyleAssessment{}
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

// DeleteByUser removes all assessments for a user and returns the count.
func (r *LifestyleRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
