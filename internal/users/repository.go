package users

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const userColumns = `id, username, password, full_name, email, role, is_active, created_at, updated_at`

func scanUser(row *sql.Row) (*User, error) {
	var u User
	var email sql.NullString

	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Password,
		&u.FullName,
		&email,
		&u.Role,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	if email.Valid {
		u.Email = email.String
	}

	return &u, nil
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1`, userColumns)
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *Repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

// Create inserts a new account. A duplicate username surfaces as the
// database unique-constraint error.
func (r *Repository) Create(ctx context.Context, req CreateUserRequest, passwordHash string) (*User, error) {
	id := uuid.New()
	now := time.Now()

	query := fmt.Sprintf(`
		INSERT INTO users (id, username, password, full_name, email, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, true, $7, $7)
		RETURNING %s
	`, userColumns)

	u, err := scanUser(r.db.QueryRowContext(ctx, query,
		id,
		req.Username,
		passwordHash,
		req.FullName,
		req.Email,
		req.Role,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return u, nil
}
