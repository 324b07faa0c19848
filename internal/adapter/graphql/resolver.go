package graphql

import (
	"context"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"graphql-user-service/internal/usecase/user"
	apperrors "graphql-user-service/pkg/errors"
)

// Resolver is the root resolver for the GraphQL schema.
// Each field is a one-to-one pass-through to a usecase call; the
// resolver itself holds no state.
type Resolver struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewResolver creates the root resolver bound to the given usecase.
func NewResolver(uc user.Usecase, log *zap.Logger) *Resolver {
	return &Resolver{uc: uc, log: log}
}

// Users resolves Query.users.
func (r *Resolver) Users(ctx context.Context) ([]*UserResolver, error) {
	users, err := r.uc.ListUsers(ctx)
	if err != nil {
		r.log.Error("users query failed", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	out := make([]*UserResolver, len(users))
	for i := range users {
		out[i] = &UserResolver{u: users[i]}
	}
	return out, nil
}

// UserByID resolves Query.userById. A missing or malformed identifier
// resolves to null, never to an error.
func (r *Resolver) UserByID(ctx context.Context, args struct{ ID graphql.ID }) (*UserResolver, error) {
	u, err := r.uc.GetUser(ctx, user.GetUserRequest{ID: string(args.ID)})
	if err != nil {
		r.log.Error("userById query failed", zap.String("id", string(args.ID)), zap.Error(err))
		return nil, apperrors.ErrInternal
	}
	if u == nil {
		return nil, nil
	}
	return &UserResolver{u: *u}, nil
}

// AddUser resolves Mutation.addUser.
func (r *Resolver) AddUser(ctx context.Context, args struct{ Name, Email string }) (*UserResolver, error) {
	u, err := r.uc.AddUser(ctx, user.AddUserRequest{Name: args.Name, Email: args.Email})
	if err != nil {
		r.log.Error("addUser mutation failed", zap.Error(err))
		return nil, apperrors.ErrInternal
	}
	return &UserResolver{u: *u}, nil
}

// DeleteUser resolves Mutation.deleteUser. Deleting a missing or
// malformed identifier resolves to false.
func (r *Resolver) DeleteUser(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	deleted, err := r.uc.DeleteUser(ctx, user.DeleteUserRequest{ID: string(args.ID)})
	if err != nil {
		r.log.Error("deleteUser mutation failed", zap.String("id", string(args.ID)), zap.Error(err))
		return false, apperrors.ErrInternal
	}
	return deleted, nil
}

// UserResolver resolves the fields of the User type.
type UserResolver struct {
	u user.User
}

// ID resolves User.id.
func (r *UserResolver) ID() graphql.ID {
	return graphql.ID(r.u.ID)
}

// Name resolves User.name.
func (r *UserResolver) Name() string {
	return r.u.Name
}

// Email resolves User.email.
func (r *UserResolver) Email() string {
	return r.u.Email
}
