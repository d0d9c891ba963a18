package users

import "context"

// RepositoryInterface defines the contract for user data access
type RepositoryInterface interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, req CreateUserRequest, passwordHash string) (*User, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
