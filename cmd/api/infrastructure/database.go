package infrastructure

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"graphql-user-service/internal/config"
)

// NewDatabase connects to MongoDB and returns the client together with
// the configured database handle. The connection is pinged so that an
// unreachable store fails at startup rather than on the first request.
func NewDatabase(cfg *config.Config, l *zap.Logger) (*mongo.Client, *mongo.Database, error) {
	timeout := time.Duration(cfg.DB.ConnectTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DB.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Best-effort cleanup of the half-open client
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	l.Info("database connected successfully",
		zap.String("database", cfg.DB.Name),
	)

	return client, client.Database(cfg.DB.Name), nil
}

// CloseDatabase disconnects the MongoDB client.
func CloseDatabase(client *mongo.Client) error {
	if client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	return nil
}
