package dashboard

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CountActivePatients counts patients that have not been soft-deleted.
func (r *Repository) CountActivePatients(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM patients WHERE is_active = true`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count patients: %w", err)
	}
	return count, nil
}

// CountTodayAppointments counts appointments scheduled for the server's
// current date, regardless of status.
func (r *Repository) CountTodayAppointments(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM appointments WHERE appointment_date = CURRENT_DATE`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count today's appointments: %w", err)
	}
	return count, nil
}

// CountActiveStaff counts active user accounts of any role.
func (r *Repository) CountActiveStaff(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE is_active = true`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count staff: %w", err)
	}
	return count, nil
}
