package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"graphql-user-service/internal/domain/user"
)

// usersCollection is the collection holding user documents.
const usersCollection = "usersData"

// UserRepoMongo implements the Repository interface on top of a MongoDB collection.
type UserRepoMongo struct {
	coll *mongo.Collection // Collection of user documents
	log  *zap.Logger       // Structured logger for database operations
}

// NewUserRepoMongo creates a new instance of UserRepoMongo.
func NewUserRepoMongo(db *mongo.Database, log *zap.Logger) *UserRepoMongo {
	return &UserRepoMongo{coll: db.Collection(usersCollection), log: log}
}

// userDocument represents the persisted shape of a user record.
type userDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"` // Store-minted identifier
	Name  string             `bson:"name"`          // User's full name
	Email string             `bson:"email"`         // User's email address
}

func (d userDocument) toDomain() user.User {
	return user.User{
		ID:    d.ID.Hex(),
		Name:  d.Name,
		Email: d.Email,
	}
}

// List retrieves every stored user in storage order.
// An empty collection yields an empty slice, never an error.
func (r *UserRepoMongo) List(ctx context.Context) ([]user.User, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		r.log.Error("failed to list users from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.log.Error("failed to decode users from db", zap.Error(err))
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	users := make([]user.User, len(docs))
	for i, d := range docs {
		users[i] = d.toDomain()
	}

	return users, nil
}

// GetByID retrieves a user by their identifier.
// A malformed identifier or a missing record both yield (nil, nil);
// only a store failure is reported as an error.
func (r *UserRepoMongo) GetByID(ctx context.Context, id string) (*user.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.log.Debug("malformed user id treated as not found", zap.String("id", id))
		return nil, nil
	}

	var doc userDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Debug("user not found", zap.String("id", id))
			return nil, nil
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	u := doc.toDomain()
	return &u, nil
}

// Create inserts a new user; the store mints the identifier.
func (r *UserRepoMongo) Create(ctx context.Context, name, email string) (*user.User, error) {
	res, err := r.coll.InsertOne(ctx, bson.M{"name": name, "email": email})
	if err != nil {
		r.log.Error("failed to create user in db", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		r.log.Error("unexpected inserted id type", zap.Any("inserted_id", res.InsertedID))
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	r.log.Info("user created in db", zap.String("id", oid.Hex()))
	return &user.User{ID: oid.Hex(), Name: name, Email: email}, nil
}

// Delete removes the user with the given identifier and reports whether
// exactly one record was removed. A malformed identifier is treated the
// same as a missing record.
func (r *UserRepoMongo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.log.Debug("malformed user id treated as not found", zap.String("id", id))
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.log.Error("failed to delete user in db", zap.Error(err), zap.String("id", id))
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	deleted := res.DeletedCount == 1
	if deleted {
		r.log.Info("user deleted in db", zap.String("id", id))
	}
	return deleted, nil
}
