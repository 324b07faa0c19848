package user

import (
	"context"

	"go.uber.org/zap"

	domain "graphql-user-service/internal/domain/user"
)

// Repository defines the interface for user data access operations.
// It abstracts the data layer so the document store implementation
// can be swapped out (e.g. for an in-memory store in tests).
type Repository interface {
	List(ctx context.Context) ([]domain.User, error)                      // Retrieve all users in storage order
	GetByID(ctx context.Context, id string) (*domain.User, error)         // Retrieve user by ID; nil when absent
	Create(ctx context.Context, name, email string) (*domain.User, error) // Insert a new user, store mints the ID
	Delete(ctx context.Context, id string) (bool, error)                  // Delete user by ID; true iff one record removed
}

// Service implements the user operations as one-to-one pass-throughs
// to the repository. It holds no state beyond its dependencies and
// never caches records across requests.
type Service struct {
	repo Repository  // Repository for data access
	log  *zap.Logger // Logger for structured logging
}

// New creates a new Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log}
}

// ListUsers retrieves all users. An empty store yields an empty slice.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	domainUsers, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = User{
			ID:    du.ID,
			Name:  du.Name,
			Email: du.Email,
		}
	}

	return users, nil
}

// GetUser retrieves a user by ID. A missing or malformed identifier
// yields (nil, nil), never an error.
func (s *Service) GetUser(ctx context.Context, in GetUserRequest) (*User, error) {
	u, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		s.log.Error("failed to get user", zap.String("id", in.ID), zap.Error(err))
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	return &User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}, nil
}

// AddUser creates a new user. Argument presence is enforced by the
// schema type layer before this is reached.
func (s *Service) AddUser(ctx context.Context, in AddUserRequest) (*User, error) {
	s.log.Info("creating user", zap.String("name", in.Name), zap.String("email", in.Email))

	u, err := s.repo.Create(ctx, in.Name, in.Email)
	if err != nil {
		s.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return &User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}, nil
}

// DeleteUser removes a user by ID and reports whether a record was
// removed. Deleting a missing or malformed ID returns false, not an error.
func (s *Service) DeleteUser(ctx context.Context, in DeleteUserRequest) (bool, error) {
	s.log.Info("deleting user", zap.String("id", in.ID))

	deleted, err := s.repo.Delete(ctx, in.ID)
	if err != nil {
		s.log.Error("failed to delete user", zap.String("id", in.ID), zap.Error(err))
		return false, err
	}

	return deleted, nil
}
