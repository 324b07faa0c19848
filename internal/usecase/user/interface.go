package user

import "context"

// Usecase defines the interface for user operations exposed to the transport layer.
type Usecase interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, in GetUserRequest) (*User, error)
	AddUser(ctx context.Context, in AddUserRequest) (*User, error)
	DeleteUser(ctx context.Context, in DeleteUserRequest) (bool, error)
}
