package appointment

import (
	"context"
	"testing"

	"github.com/clinicdesk/clinic-service/internal/db"
	"github.com/clinicdesk/clinic-service/internal/patient"
	"github.com/clinicdesk/clinic-service/internal/testutil"
)

// TestRepository_ListOrdering verifies the default listing order: newest
// date first, same-day appointments in chronological time order.
func TestRepository_ListOrdering(t *testing.T) {
	database := testutil.SetupTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx, database); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	testutil.CleanupTestDB(t, database)
	t.Cleanup(func() { testutil.CleanupTestDB(t, database) })

	patientRepo := patient.NewRepository(database)
	p, err := patientRepo.Create(ctx, patient.CreatePatientRequest{
		FullName:    "Ordering Patient",
		DateOfBirth: "1988-09-12",
		Gender:      "female",
		Mobile:      "5550203040",
	})
	if err != nil {
		t.Fatalf("Failed to seed patient: %v", err)
	}

	repo := NewRepository(database)

	// Inserted out of order so the clause, not insertion order, decides.
	seed := []CreateAppointmentRequest{
		{PatientID: p.ID, AppointmentDate: "2030-05-20", AppointmentTime: "09:30", Type: "consultation"},
		{PatientID: p.ID, AppointmentDate: "2030-05-21", AppointmentTime: "08:00", Type: "checkup"},
		{PatientID: p.ID, AppointmentDate: "2030-05-20", AppointmentTime: "09:00", Type: "follow-up"},
	}
	for i := range seed {
		if _, err := repo.Create(ctx, seed[i]); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	listed, total, err := repo.List(ctx, ListFilter{}, 10, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("Expected 3 appointments, got %d", total)
	}

	want := []struct{ date, time string }{
		{"2030-05-21", "08:00"},
		{"2030-05-20", "09:00"},
		{"2030-05-20", "09:30"},
	}
	for i, w := range want {
		if listed[i].AppointmentDate != w.date || listed[i].AppointmentTime != w.time {
			t.Errorf("Position %d: expected %s %s, got %s %s",
				i, w.date, w.time, listed[i].AppointmentDate, listed[i].AppointmentTime)
		}
	}
}

// TestRepository_ListFilters verifies date, status and patient filters
// combine as exact matches.
func TestRepository_ListFilters(t *testing.T) {
	database := testutil.SetupTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx, database); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	testutil.CleanupTestDB(t, database)
	t.Cleanup(func() { testutil.CleanupTestDB(t, database) })

	patientRepo := patient.NewRepository(database)
	p, err := patientRepo.Create(ctx, patient.CreatePatientRequest{
		FullName:    "Filter Patient",
		DateOfBirth: "1970-01-30",
		Gender:      "male",
		Mobile:      "5550203041",
	})
	if err != nil {
		t.Fatalf("Failed to seed patient: %v", err)
	}

	repo := NewRepository(database)

	seed := []CreateAppointmentRequest{
		{PatientID: p.ID, AppointmentDate: "2030-06-01", AppointmentTime: "10:00", Type: "consultation", Status: "scheduled"},
		{PatientID: p.ID, AppointmentDate: "2030-06-01", AppointmentTime: "11:00", Type: "checkup", Status: "completed"},
		{PatientID: p.ID, AppointmentDate: "2030-06-02", AppointmentTime: "10:00", Type: "consultation", Status: "scheduled"},
	}
	for i := range seed {
		if _, err := repo.Create(ctx, seed[i]); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	_, total, err := repo.List(ctx, ListFilter{Date: "2030-06-01"}, 10, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 {
		t.Errorf("Expected 2 appointments on 2030-06-01, got %d", total)
	}

	_, total, err = repo.List(ctx, ListFilter{Status: "completed"}, 10, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 {
		t.Errorf("Expected 1 completed appointment, got %d", total)
	}

	_, total, err = repo.List(ctx, ListFilter{Date: "2030-06-01", Status: "scheduled", PatientID: p.ID}, 10, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 {
		t.Errorf("Expected 1 appointment for combined filters, got %d", total)
	}
}
