package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// migrations are idempotent DDL statements executed in order on startup.
// Display-ID sequences exist so patient/appointment numbers are assigned
// atomically instead of from a row count.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		full_name VARCHAR(100) NOT NULL,
		email VARCHAR(100),
		role VARCHAR(20) NOT NULL DEFAULT 'admin'
			CHECK (role IN ('admin', 'doctor', 'nurse', 'receptionist')),
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE SEQUENCE IF NOT EXISTS patient_number_seq`,

	`CREATE TABLE IF NOT EXISTS patients (
		id UUID PRIMARY KEY,
		patient_id VARCHAR(20) NOT NULL UNIQUE,
		full_name VARCHAR(100) NOT NULL,
		date_of_birth DATE NOT NULL,
		gender VARCHAR(10) NOT NULL CHECK (gender IN ('male', 'female', 'other')),
		blood_group VARCHAR(5)
			CHECK (blood_group IN ('A+', 'A-', 'B+', 'B-', 'AB+', 'AB-', 'O+', 'O-')),
		mobile VARCHAR(15) NOT NULL,
		email VARCHAR(100),
		address TEXT,
		medical_history TEXT,
		current_medications TEXT,
		allergies TEXT,
		emergency_contact_name VARCHAR(100),
		emergency_contact_phone VARCHAR(15),
		emergency_contact_relation VARCHAR(50),
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE SEQUENCE IF NOT EXISTS appointment_number_seq`,

	`CREATE TABLE IF NOT EXISTS appointments (
		id UUID PRIMARY KEY,
		appointment_id VARCHAR(20) NOT NULL UNIQUE,
		patient_id UUID NOT NULL REFERENCES patients(id),
		doctor_id UUID REFERENCES users(id),
		appointment_date DATE NOT NULL,
		appointment_time VARCHAR(5) NOT NULL,
		type VARCHAR(20) NOT NULL
			CHECK (type IN ('consultation', 'follow-up', 'checkup', 'emergency', 'vaccination')),
		status VARCHAR(20) NOT NULL DEFAULT 'scheduled'
			CHECK (status IN ('scheduled', 'completed', 'cancelled', 'rescheduled')),
		notes TEXT,
		diagnosis TEXT,
		prescription TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS medical_records (
		id UUID PRIMARY KEY,
		patient_id UUID NOT NULL REFERENCES patients(id),
		appointment_id UUID REFERENCES appointments(id),
		doctor_id UUID REFERENCES users(id),
		visit_date DATE NOT NULL,
		chief_complaint TEXT,
		diagnosis TEXT,
		treatment TEXT,
		prescription TEXT,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		token UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		expires_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS sessions_expires_at_idx ON sessions (expires_at)`,

	`CREATE INDEX IF NOT EXISTS appointments_date_idx ON appointments (appointment_date)`,

	`CREATE INDEX IF NOT EXISTS medical_records_patient_idx ON medical_records (patient_id)`,
}

// Migrate applies the schema to the connected database.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	log.Println("✓ Database schema up to date")
	return nil
}
