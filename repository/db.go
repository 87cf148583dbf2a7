// Package repository provides MongoDB access for the four journal collections.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// ErrNotFound is returned by lookups that matched no document.
var ErrNotFound = errors.New("record not found")

// DB wraps the MongoDB client and exposes the collections used by the service.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewDB connects to MongoDB, verifies the connection and returns a DB handle.
func NewDB(ctx context.Context, uri, dbName string) (*DB, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &DB{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Ping verifies the server is still reachable. Used by the health endpoint.
func (d *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return d.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from MongoDB.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// MoodEntries returns the mood_entries collection.
func (d *DB) MoodEntries() *mongo.Collection {
	return d.db.Collection("mood_entries")
}

// LifestyleAssessments returns the lifestyle_assessments collection.
func (d *DB) LifestyleAssessments() *mongo.Collection {
	return d.db.Collection("lifestyle_assessments")
}

// GratitudeEntries returns the gratitude_entries collection.
func (d *DB) GratitudeEntries() *mongo.Collection {
	return d.db.Collection("gratitude_entries")
}

// Users returns the users collection.
func (d *DB) Users() *mongo.Collection {
	return d.db.Collection("users")
}
