package medicalrecord

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const recordColumns = `id, patient_id, appointment_id, doctor_id,
	to_char(visit_date, 'YYYY-MM-DD'), chief_complaint, diagnosis,
	treatment, prescription, notes, created_at`

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*MedicalRecordResponse, error) {
	var rec MedicalRecordResponse
	var appointmentID, doctorID sql.NullString
	var chiefComplaint, diagnosis, treatment, prescription, notes sql.NullString

	err := row.Scan(
		&rec.ID,
		&rec.PatientID,
		&appointmentID,
		&doctorID,
		&rec.VisitDate,
		&chiefComplaint,
		&diagnosis,
		&treatment,
		&prescription,
		&notes,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.AppointmentID = appointmentID.String
	rec.DoctorID = doctorID.String
	rec.ChiefComplaint = chiefComplaint.String
	rec.Diagnosis = diagnosis.String
	rec.Treatment = treatment.String
	rec.Prescription = prescription.String
	rec.Notes = notes.String

	return &rec, nil
}

// ListByPatient returns the patient's full visit history, newest visit
// first. An unknown or malformed patient id yields an empty history.
func (r *Repository) ListByPatient(ctx context.Context, patientID string) ([]*MedicalRecordResponse, error) {
	if _, err := uuid.Parse(patientID); err != nil {
		return []*MedicalRecordResponse{}, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM medical_records
		WHERE patient_id = $1
		ORDER BY visit_date DESC, created_at DESC`, recordColumns)

	rows, err := r.db.QueryContext(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query medical records: %w", err)
	}
	defer rows.Close()

	records := []*MedicalRecordResponse{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan medical record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate medical records: %w", err)
	}

	return records, nil
}

func (r *Repository) Create(ctx context.Context, req CreateMedicalRecordRequest) (*MedicalRecordResponse, error) {
	id := uuid.New()

	query := fmt.Sprintf(`
		INSERT INTO medical_records (
			id, patient_id, appointment_id, doctor_id, visit_date,
			chief_complaint, diagnosis, treatment, prescription, notes
		) VALUES (
			$1, $2, NULLIF($3, '')::uuid, NULLIF($4, '')::uuid, $5,
			NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''),
			NULLIF($9, ''), NULLIF($10, '')
		)
		RETURNING %s`, recordColumns)

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query,
		id,
		req.PatientID,
		req.AppointmentID,
		req.DoctorID,
		req.VisitDate,
		req.ChiefComplaint,
		req.Diagnosis,
		req.Treatment,
		req.Prescription,
		req.Notes,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create medical record: %w", err)
	}

	return rec, nil
}
