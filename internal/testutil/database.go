package testutil

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
)

// SetupTestDB connects to the database named by TEST_DATABASE_URL. Tests
// that need a real database are skipped when the variable is unset, so the
// unit suite stays runnable without infrastructure.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database test")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// CleanupTestDB truncates the clinic tables. Use this for tests that
// cannot run inside a transaction.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	t.Helper()

	_, err := db.Exec(`TRUNCATE TABLE sessions, medical_records, appointments, patients, users CASCADE`)
	if err != nil {
		t.Logf("Warning: Failed to clean up test tables: %v", err)
	}
}
