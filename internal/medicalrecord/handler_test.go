package medicalrecord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// mockService implements ServiceInterface for testing
type mockService struct {
	listByPatientFunc func(ctx context.Context, patientID string) ([]*MedicalRecordResponse, error)
	createFunc        func(ctx context.Context, req CreateMedicalRecordRequest) (*MedicalRecordResponse, error)
}

func (m *mockService) ListByPatient(ctx context.Context, patientID string) ([]*MedicalRecordResponse, error) {
	if m.listByPatientFunc != nil {
		return m.listByPatientFunc(ctx, patientID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockService) Create(ctx context.Context, req CreateMedicalRecordRequest) (*MedicalRecordResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func newTestRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/patients/{patientId}/medical-records", h.ListByPatient).Methods("GET")
	r.HandleFunc("/api/medical-records", h.Create).Methods("POST")
	return r
}

// TestListByPatient_BareArray tests that the history endpoint returns the
// bare array, not a paged envelope.
func TestListByPatient_BareArray(t *testing.T) {
	handler := NewHandler(&mockService{
		listByPatientFunc: func(ctx context.Context, patientID string) ([]*MedicalRecordResponse, error) {
			return []*MedicalRecordResponse{
				{ID: "record-2", PatientID: patientID, VisitDate: "2026-08-20"},
				{ID: "record-1", PatientID: patientID, VisitDate: "2026-01-05"},
			}, nil
		},
	})
	router := newTestRouter(handler)

	req := httptest.NewRequest("GET", "/api/patients/patient-1/medical-records", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp []MedicalRecordResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Expected a JSON array, decode failed: %v. Body: %s", err, rec.Body.String())
	}
	if len(resp) != 2 {
		t.Errorf("Expected 2 records, got %d", len(resp))
	}
	if resp[0].VisitDate != "2026-08-20" {
		t.Errorf("Expected newest record first, got visitDate '%s'", resp[0].VisitDate)
	}
}

// TestListByPatient_EmptyHistoryIsEmptyArray tests the [] encoding
func TestListByPatient_EmptyHistoryIsEmptyArray(t *testing.T) {
	handler := NewHandler(&mockService{
		listByPatientFunc: func(ctx context.Context, patientID string) ([]*MedicalRecordResponse, error) {
			return []*MedicalRecordResponse{}, nil
		},
	})
	router := newTestRouter(handler)

	req := httptest.NewRequest("GET", "/api/patients/patient-1/medical-records", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("Expected empty JSON array, got: %s", body)
	}
}

// TestCreateRecord_Created tests the 201 response
func TestCreateRecord_Created(t *testing.T) {
	handler := NewHandler(&mockService{
		createFunc: func(ctx context.Context, req CreateMedicalRecordRequest) (*MedicalRecordResponse, error) {
			return &MedicalRecordResponse{ID: "record-1", PatientID: req.PatientID, VisitDate: req.VisitDate}, nil
		},
	})
	router := newTestRouter(handler)

	body, _ := json.Marshal(map[string]string{
		"patientId": "patient-1",
		"visitDate": "2026-08-20",
		"diagnosis": "Seasonal allergies",
	})
	req := httptest.NewRequest("POST", "/api/medical-records", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d. Body: %s", rec.Code, rec.Body.String())
	}
}
