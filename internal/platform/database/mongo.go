package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"survey-builder/internal/retry"
)

// NewMongo connects to uri and returns the named database once the primary answers.
func NewMongo(ctx context.Context, uri, dbName string, policy retry.Policy) (*mongo.Database, error) {
	if uri == "" {
		return nil, errors.New("MONGO_URI is empty")
	}
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(2 * time.Second)

	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	err = policy.Do(ctx, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		return c.Ping(pingCtx, readpref.Primary())
	})
	if err != nil {
		_ = c.Disconnect(context.Background())
		return nil, err
	}

	return c.Database(dbName), nil
}
