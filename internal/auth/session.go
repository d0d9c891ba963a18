package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNoSession is returned when a token is unknown or expired.
var ErrNoSession = errors.New("session not found")

// Session is an authenticated server-side session. Username and Role are
// joined in from the owning user row.
type Session struct {
	Token     string
	UserID    string
	Username  string
	Role      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// StoreInterface defines the contract for session persistence
type StoreInterface interface {
	Create(ctx context.Context, userID string) (*Session, error)
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// Store persists sessions in the sessions table. Tokens are opaque UUIDs;
// expiry is fixed at creation time.
type Store struct {
	db  *sql.DB
	ttl time.Duration
}

func NewStore(db *sql.DB, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl}
}

// Ensure Store implements StoreInterface
var _ StoreInterface = (*Store)(nil)

func (s *Store) Create(ctx context.Context, userID string) (*Session, error) {
	token := uuid.New()
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	query := `
		INSERT INTO sessions (token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := s.db.ExecContext(ctx, query, token, userID, now, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}

	return &Session{
		Token:     token.String(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *Store) Get(ctx context.Context, token string) (*Session, error) {
	// Reject garbage before hitting the database; the column is UUID typed.
	if _, err := uuid.Parse(token); err != nil {
		return nil, ErrNoSession
	}

	query := `
		SELECT s.token, s.user_id, s.created_at, s.expires_at, u.username, u.role
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1 AND s.expires_at > now()
	`

	var sess Session
	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&sess.Token,
		&sess.UserID,
		&sess.CreatedAt,
		&sess.ExpiresAt,
		&sess.Username,
		&sess.Role,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	return &sess, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	if _, err := uuid.Parse(token); err != nil {
		return ErrNoSession
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNoSession
	}

	return nil
}

// DeleteExpired removes sessions past their expiry and reports how many
// rows were purged.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}
