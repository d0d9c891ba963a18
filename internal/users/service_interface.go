package users

import (
	"context"

	"github.com/clinicdesk/clinic-service/internal/config"
)

// ServiceInterface defines the contract for user business logic operations
type ServiceInterface interface {
	Authenticate(ctx context.Context, username, password string) (*Summary, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	EnsureDefaultAdmin(ctx context.Context, bootstrap config.BootstrapConfig) error
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
