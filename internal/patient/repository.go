package patient

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

const patientColumns = `id, patient_id, full_name, to_char(date_of_birth, 'YYYY-MM-DD'),
	gender, blood_group, mobile, email, address, medical_history, current_medications,
	allergies, emergency_contact_name, emergency_contact_phone, emergency_contact_relation,
	is_active, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPatient(row rowScanner) (*PatientResponse, error) {
	var p PatientResponse
	var bloodGroup sql.NullString
	var email sql.NullString
	var address sql.NullString
	var medicalHistory sql.NullString
	var currentMedications sql.NullString
	var allergies sql.NullString
	var emergencyContactName sql.NullString
	var emergencyContactPhone sql.NullString
	var emergencyContactRelation sql.NullString

	err := row.Scan(
		&p.ID,
		&p.PatientID,
		&p.FullName,
		&p.DateOfBirth,
		&p.Gender,
		&bloodGroup,
		&p.Mobile,
		&email,
		&address,
		&medicalHistory,
		&currentMedications,
		&allergies,
		&emergencyContactName,
		&emergencyContactPhone,
		&emergencyContactRelation,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.BloodGroup = bloodGroup.String
	p.Email = email.String
	p.Address = address.String
	p.MedicalHistory = medicalHistory.String
	p.CurrentMedications = currentMedications.String
	p.Allergies = allergies.String
	p.EmergencyContactName = emergencyContactName.String
	p.EmergencyContactPhone = emergencyContactPhone.String
	p.EmergencyContactRelation = emergencyContactRelation.String

	return &p, nil
}

// buildListWhere translates a ListFilter into a WHERE clause and its
// arguments. Inactive rows are always excluded from listings.
func buildListWhere(filter ListFilter) (string, []interface{}) {
	conditions := []string{"is_active = true"}
	var args []interface{}
	argIndex := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			`(full_name ILIKE $%d OR mobile ILIKE $%d OR patient_id ILIKE $%d)`,
			argIndex, argIndex, argIndex,
		))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	if filter.Gender != "" {
		conditions = append(conditions, fmt.Sprintf(`gender = $%d`, argIndex))
		args = append(args, filter.Gender)
		argIndex++
	}

	// Age N means the Nth birthday has passed, so the filters translate to
	// date-of-birth bounds relative to today.
	today := time.Now()
	if filter.MinAge != nil {
		cutoff := today.AddDate(-*filter.MinAge, 0, 0).Format("2006-01-02")
		conditions = append(conditions, fmt.Sprintf(`date_of_birth <= $%d`, argIndex))
		args = append(args, cutoff)
		argIndex++
	}
	if filter.MaxAge != nil {
		cutoff := today.AddDate(-(*filter.MaxAge + 1), 0, 0).Format("2006-01-02")
		conditions = append(conditions, fmt.Sprintf(`date_of_birth > $%d`, argIndex))
		args = append(args, cutoff)
		argIndex++
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// List returns one page of active patients matching the filter plus the
// total match count independent of pagination.
func (r *Repository) List(ctx context.Context, filter ListFilter, limit, offset int) ([]PatientResponse, int, error) {
	whereClause, args := buildListWhere(filter)

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM patients %s`, whereClause)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count patients: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM patients
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, patientColumns, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query patients: %w", err)
	}
	defer rows.Close()

	var patients []PatientResponse
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating patients: %w", err)
	}

	return patients, total, nil
}

// GetByID returns the patient row regardless of its active flag, so
// soft-deleted patients stay reachable by id.
func (r *Repository) GetByID(ctx context.Context, id string) (*PatientResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrPatientNotFound
	}

	query := fmt.Sprintf(`SELECT %s FROM patients WHERE id = $1`, patientColumns)

	p, err := scanPatient(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query patient: %w", err)
	}

	return p, nil
}

// Create inserts a patient, assigning the next display ID from the
// patient_number_seq sequence. The sequence makes concurrent creations
// race-free; numbers are zero-padded to at least three digits.
func (r *Repository) Create(ctx context.Context, req CreatePatientRequest) (*PatientResponse, error) {
	var seq int64
	if err := r.db.QueryRowContext(ctx, `SELECT nextval('patient_number_seq')`).Scan(&seq); err != nil {
		return nil, fmt.Errorf("failed to allocate patient number: %w", err)
	}
	patientID := fmt.Sprintf("PAT%03d", seq)

	id := uuid.New()
	now := time.Now()

	query := fmt.Sprintf(`
		INSERT INTO patients (
			id, patient_id, full_name, date_of_birth, gender, blood_group, mobile,
			email, address, medical_history, current_medications, allergies,
			emergency_contact_name, emergency_contact_phone, emergency_contact_relation,
			is_active, created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, NULLIF($6, ''), $7,
			NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''),
			NULLIF($13, ''), NULLIF($14, ''), NULLIF($15, ''),
			true, $16, $16
		)
		RETURNING %s
	`, patientColumns)

	p, err := scanPatient(r.db.QueryRowContext(ctx, query,
		id,
		patientID,
		req.FullName,
		req.DateOfBirth,
		req.Gender,
		req.BloodGroup,
		req.Mobile,
		req.Email,
		req.Address,
		req.MedicalHistory,
		req.CurrentMedications,
		req.Allergies,
		req.EmergencyContactName,
		req.EmergencyContactPhone,
		req.EmergencyContactRelation,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert patient: %w", err)
	}

	return p, nil
}

// Update applies the non-nil fields of req and refreshes updated_at.
func (r *Repository) Update(ctx context.Context, id string, req UpdatePatientRequest) (*PatientResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrPatientNotFound
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

	if req.FullName != nil {
		set("full_name", *req.FullName)
	}
	if req.DateOfBirth != nil {
		set("date_of_birth", *req.DateOfBirth)
	}
	if req.Gender != nil {
		set("gender", *req.Gender)
	}
	if req.BloodGroup != nil {
		setNullable("blood_group", *req.BloodGroup)
	}
	if req.Mobile != nil {
		set("mobile", *req.Mobile)
	}
	if req.Email != nil {
		setNullable("email", *req.Email)
	}
	if req.Address != nil {
		setNullable("address", *req.Address)
	}
	if req.MedicalHistory != nil {
		setNullable("medical_history", *req.MedicalHistory)
	}
	if req.CurrentMedications != nil {
		setNullable("current_medications", *req.CurrentMedications)
	}
	if req.Allergies != nil {
		setNullable("allergies", *req.Allergies)
	}
	if req.EmergencyContactName != nil {
		setNullable("emergency_contact_name", *req.EmergencyContactName)
	}
	if req.EmergencyContactPhone != nil {
		setNullable("emergency_contact_phone", *req.EmergencyContactPhone)
	}
	if req.EmergencyContactRelation != nil {
		setNullable("emergency_contact_relation", *req.EmergencyContactRelation)
	}

	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	set("updated_at", time.Now())
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE patients
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(updates, ", "), argIndex, patientColumns)

	p, err := scanPatient(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	return p, nil
}

// SoftDelete marks the patient inactive. The row is never removed and
// appointments or medical records referencing it are left untouched.
func (r *Repository) SoftDelete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrPatientNotFound
	}

	query := `
		UPDATE patients
		SET is_active = false, updated_at = $1
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrPatientNotFound
	}

	return nil
}
