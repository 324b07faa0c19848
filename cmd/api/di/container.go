package di

import (
	"fmt"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"graphql-user-service/cmd/api/infrastructure"
	"graphql-user-service/internal/adapter/db/mongodb"
	graphqladapter "graphql-user-service/internal/adapter/graphql"
	"graphql-user-service/internal/config"
	"graphql-user-service/internal/usecase/user"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Mongo  *mongo.Client
	UserUC user.Usecase
	Schema *graphqlgo.Schema
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize database
	client, db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repository
	repo := mongodb.NewUserRepoMongo(db, l)

	// Initialize use case
	userUC := user.New(repo, l)

	// Parse the GraphQL schema and bind it to the root resolver
	schema, err := graphqladapter.NewSchema(userUC, l)
	if err != nil {
		if cerr := infrastructure.CloseDatabase(client); cerr != nil {
			l.Error("failed to close database after schema error", zap.Error(cerr))
		}
		return nil, fmt.Errorf("failed to parse GraphQL schema: %w", err)
	}

	return &Container{
		Config: cfg,
		Logger: l,
		Mongo:  client,
		UserUC: userUC,
		Schema: schema,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Mongo != nil {
		if err := infrastructure.CloseDatabase(c.Mongo); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}
