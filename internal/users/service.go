package users

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/clinicdesk/clinic-service/internal/config"
	"github.com/clinicdesk/clinic-service/internal/validation"
)

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// Authenticate verifies a username/password pair against the stored bcrypt
// hash. An unknown username and a wrong password both return
// ErrInvalidCredentials so callers cannot distinguish the two.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Summary, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user.Summary(), nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateUser validates the request, hashes the password and stores the
// account.
func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	v := validation.NewCollector()
	v.Require("username", req.Username)
	v.Require("password", req.Password)
	v.Require("fullName", req.FullName)
	v.Require("role", req.Role)
	v.OneOf("role", req.Role, Roles...)
	if err := v.Err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, req, string(hash))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// EnsureDefaultAdmin creates the bootstrap admin account when it does not
// exist yet. Repeated calls are no-ops.
func (s *Service) EnsureDefaultAdmin(ctx context.Context, bootstrap config.BootstrapConfig) error {
	_, err := s.repo.GetByUsername(ctx, bootstrap.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("failed to check for default admin: %w", err)
	}

	_, err = s.CreateUser(ctx, CreateUserRequest{
		Username: bootstrap.AdminUsername,
		Password: bootstrap.AdminPassword,
		FullName: bootstrap.AdminFullName,
		Email:    bootstrap.AdminEmail,
		Role:     RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	log.Printf("✓ Created default admin user %q", bootstrap.AdminUsername)
	return nil
}
