package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// appointmentColumns selects the appointment row plus the left-joined
// patient and doctor. Soft-deleted patients still join because their rows
// are never removed.
const appointmentColumns = `a.id, a.appointment_id, a.patient_id, a.doctor_id,
	to_char(a.appointment_date, 'YYYY-MM-DD'), a.appointment_time, a.type, a.status,
	a.notes, a.diagnosis, a.prescription, a.created_at, a.updated_at,
	p.id, p.patient_id, p.full_name, to_char(p.date_of_birth, 'YYYY-MM-DD'), p.gender, p.mobile,
	u.id, u.full_name, u.email, u.role`

const appointmentJoins = `
	FROM appointments a
	LEFT JOIN patients p ON p.id = a.patient_id
	LEFT JOIN users u ON u.id = a.doctor_id`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*AppointmentResponse, error) {
	var a AppointmentResponse
	var doctorID sql.NullString
	var notes, diagnosis, prescription sql.NullString

	var patID, patDisplayID, patName, patDOB, patGender, patMobile sql.NullString
	var docID, docName, docEmail, docRole sql.NullString

	err := row.Scan(
		&a.ID,
		&a.AppointmentID,
		&a.PatientID,
		&doctorID,
		&a.AppointmentDate,
		&a.AppointmentTime,
		&a.Type,
		&a.Status,
		&notes,
		&diagnosis,
		&prescription,
		&a.CreatedAt,
		&a.UpdatedAt,
		&patID,
		&patDisplayID,
		&patName,
		&patDOB,
		&patGender,
		&patMobile,
		&docID,
		&docName,
		&docEmail,
		&docRole,
	)
	if err != nil {
		return nil, err
	}

	a.DoctorID = doctorID.String
	a.Notes = notes.String
	a.Diagnosis = diagnosis.String
	a.Prescription = prescription.String

	if patID.Valid {
		a.Patient = &PatientSummary{
			ID:          patID.String,
			PatientID:   patDisplayID.String,
			FullName:    patName.String,
			DateOfBirth: patDOB.String,
			Gender:      patGender.String,
			Mobile:      patMobile.String,
		}
	}
	if docID.Valid {
		a.Doctor = &DoctorSummary{
			ID:       docID.String,
			FullName: docName.String,
			Email:    docEmail.String,
			Role:     docRole.String,
		}
	}

	return &a, nil
}

func buildListWhere(filter ListFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter.Date != "" {
		conditions = append(conditions, fmt.Sprintf(`a.appointment_date = $%d::date`, argIndex))
		args = append(args, filter.Date)
		argIndex++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf(`a.status = $%d`, argIndex))
		args = append(args, filter.Status)
		argIndex++
	}
	if filter.PatientID != "" {
		conditions = append(conditions, fmt.Sprintf(`a.patient_id = $%d`, argIndex))
		args = append(args, filter.PatientID)
		argIndex++
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// List returns one page of appointments newest-date first; same-day
// appointments sort by time of day ascending, which is chronological for
// the zero-padded HH:MM values enforced at creation.
func (r *Repository) List(ctx context.Context, filter ListFilter, limit, offset int) ([]AppointmentResponse, int, error) {
	// A malformed patient id cannot match any row.
	if filter.PatientID != "" {
		if _, err := uuid.Parse(filter.PatientID); err != nil {
			return []AppointmentResponse{}, 0, nil
		}
	}

	whereClause, args := buildListWhere(filter)

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM appointments a %s`, whereClause)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count appointments: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		%s
		%s
		ORDER BY a.appointment_date DESC, a.appointment_time ASC
		LIMIT $%d OFFSET $%d
	`, appointmentColumns, appointmentJoins, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	var appointments []AppointmentResponse
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, *a)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating appointments: %w", err)
	}

	return appointments, total, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*AppointmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrAppointmentNotFound
	}

	query := fmt.Sprintf(`SELECT %s %s WHERE a.id = $1`, appointmentColumns, appointmentJoins)

	a, err := scanAppointment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query appointment: %w", err)
	}

	return a, nil
}

// Create inserts an appointment, assigning the next display ID from the
// appointment_number_seq sequence.
func (r *Repository) Create(ctx context.Context, req CreateAppointmentRequest) (*AppointmentResponse, error) {
	var seq int64
	if err := r.db.QueryRowContext(ctx, `SELECT nextval('appointment_number_seq')`).Scan(&seq); err != nil {
		return nil, fmt.Errorf("failed to allocate appointment number: %w", err)
	}
	appointmentID := fmt.Sprintf("APT%03d", seq)

	id := uuid.New()
	now := time.Now()

	query := `
		INSERT INTO appointments (
			id, appointment_id, patient_id, doctor_id, appointment_date,
			appointment_time, type, status, notes, diagnosis, prescription,
			created_at, updated_at
		)
		VALUES (
			$1, $2, $3, NULLIF($4, '')::uuid, $5,
			$6, $7, $8, NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''),
			$12, $12
		)
		RETURNING id
	`

	var insertedID string
	err := r.db.QueryRowContext(ctx, query,
		id,
		appointmentID,
		req.PatientID,
		req.DoctorID,
		req.AppointmentDate,
		req.AppointmentTime,
		req.Type,
		req.Status,
		req.Notes,
		req.Diagnosis,
		req.Prescription,
		now,
	).Scan(&insertedID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert appointment: %w", err)
	}

	return r.GetByID(ctx, insertedID)
}

// Update applies the non-nil fields of req and refreshes updated_at.
func (r *Repository) Update(ctx context.Context, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrAppointmentNotFound
	}

	var updates []string
	var args []interface{}
	argIndex := 1

	set := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}
	setNullable := func(column string, value string) {
		updates = append(updates, fmt.Sprintf("%s = NULLIF($%d, '')", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if req.PatientID != nil {
		set("patient_id", *req.PatientID)
	}
	if req.DoctorID != nil {
		updates = append(updates, fmt.Sprintf("doctor_id = NULLIF($%d, '')::uuid", argIndex))
		args = append(args, *req.DoctorID)
		argIndex++
	}
	if req.AppointmentDate != nil {
		set("appointment_date", *req.AppointmentDate)
	}
	if req.AppointmentTime != nil {
		set("appointment_time", *req.AppointmentTime)
	}
	if req.Type != nil {
		set("type", *req.Type)
	}
	if req.Status != nil {
		set("status", *req.Status)
	}
	if req.Notes != nil {
		setNullable("notes", *req.Notes)
	}
	if req.Diagnosis != nil {
		setNullable("diagnosis", *req.Diagnosis)
	}
	if req.Prescription != nil {
		setNullable("prescription", *req.Prescription)
	}

	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	set("updated_at", time.Now())
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE appointments
		SET %s
		WHERE id = $%d
		RETURNING id
	`, strings.Join(updates, ", "), argIndex)

	var updatedID string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&updatedID)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

// Delete removes the appointment row entirely, unlike patient deletion.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrAppointmentNotFound
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}
