package patient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clinicdesk/clinic-service/internal/pagination"
	"github.com/clinicdesk/clinic-service/internal/testutil"
	"github.com/clinicdesk/clinic-service/internal/validation"
)

// mockRepository implements RepositoryInterface for testing
type mockRepository struct {
	listFunc       func(ctx context.Context, filter ListFilter, limit, offset int) ([]PatientResponse, int, error)
	getByIDFunc    func(ctx context.Context, id string) (*PatientResponse, error)
	createFunc     func(ctx context.Context, req CreatePatientRequest) (*PatientResponse, error)
	updateFunc     func(ctx context.Context, id string, req UpdatePatientRequest) (*PatientResponse, error)
	softDeleteFunc func(ctx context.Context, id string) error
}

func (m *mockRepository) List(ctx context.Context, filter ListFilter, limit, offset int) ([]PatientResponse, int, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter, limit, offset)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*PatientResponse, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) Create(ctx context.Context, req CreatePatientRequest) (*PatientResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) Update(ctx context.Context, id string, req UpdatePatientRequest) (*PatientResponse, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) SoftDelete(ctx context.Context, id string) error {
	if m.softDeleteFunc != nil {
		return m.softDeleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func validCreateRequest() CreatePatientRequest {
	return CreatePatientRequest{
		FullName:    "John Doe",
		DateOfBirth: "1980-01-01",
		Gender:      "male",
		BloodGroup:  "O+",
		Mobile:      "5551234567",
	}
}

// TestCreatePatient_Success tests successful patient creation
func TestCreatePatient_Success(t *testing.T) {
	mockRepo := &mockRepository{
		createFunc: func(ctx context.Context, req CreatePatientRequest) (*PatientResponse, error) {
			return &PatientResponse{
				ID:          "11111111-1111-1111-1111-111111111111",
				PatientID:   "PAT001",
				FullName:    req.FullName,
				DateOfBirth: req.DateOfBirth,
				Gender:      req.Gender,
				BloodGroup:  req.BloodGroup,
				Mobile:      req.Mobile,
				IsActive:    true,
				CreatedAt:   time.Now(),
			}, nil
		},
	}
	publisher := testutil.NewMockPublisher()

	service := NewService(mockRepo, publisher, nil)

	p, err := service.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if p.PatientID != "PAT001" {
		t.Errorf("Expected PatientID 'PAT001', got '%s'", p.PatientID)
	}

	publisher.AssertEventPublished(t, "patient.created")
}

// TestCreatePatient_ValidationError tests validation of required fields
func TestCreatePatient_ValidationError(t *testing.T) {
	service := NewService(&mockRepository{}, nil, nil)

	testCases := []struct {
		name  string
		field string
		tweak func(*CreatePatientRequest)
	}{
		{
			name:  "Missing full name",
			field: "fullName",
			tweak: func(r *CreatePatientRequest) { r.FullName = "" },
		},
		{
			name:  "Missing date of birth",
			field: "dateOfBirth",
			tweak: func(r *CreatePatientRequest) { r.DateOfBirth = "" },
		},
		{
			name:  "Malformed date of birth",
			field: "dateOfBirth",
			tweak: func(r *CreatePatientRequest) { r.DateOfBirth = "01/01/1980" },
		},
		{
			name:  "Missing gender",
			field: "gender",
			tweak: func(r *CreatePatientRequest) { r.Gender = "" },
		},
		{
			name:  "Unknown gender",
			field: "gender",
			tweak: func(r *CreatePatientRequest) { r.Gender = "unknown" },
		},
		{
			name:  "Unknown blood group",
			field: "bloodGroup",
			tweak: func(r *CreatePatientRequest) { r.BloodGroup = "Z+" },
		},
		{
			name:  "Missing mobile",
			field: "mobile",
			tweak: func(r *CreatePatientRequest) { r.Mobile = "" },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.tweak(&req)

			_, err := service.Create(context.Background(), req)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}

			fields, ok := validation.FieldErrors(err)
			if !ok {
				t.Fatalf("Expected validation error, got: %v", err)
			}
			if _, present := fields[tc.field]; !present {
				t.Errorf("Expected field error for '%s', got: %v", tc.field, fields)
			}
		})
	}
}

// TestCreatePatient_NoEventOnFailure verifies nothing is published when the
// repository rejects the insert.
func TestCreatePatient_NoEventOnFailure(t *testing.T) {
	mockRepo := &mockRepository{
		createFunc: func(ctx context.Context, req CreatePatientRequest) (*PatientResponse, error) {
			return nil, errors.New("database down")
		},
	}
	publisher := testutil.NewMockPublisher()

	service := NewService(mockRepo, publisher, nil)

	if _, err := service.Create(context.Background(), validCreateRequest()); err == nil {
		t.Fatal("Expected error, got nil")
	}

	publisher.AssertEventNotPublished(t, "patient.created")
}

// TestListPatients_EmptyPage tests that an empty page still returns a
// non-nil slice so the JSON encodes as [].
func TestListPatients_EmptyPage(t *testing.T) {
	mockRepo := &mockRepository{
		listFunc: func(ctx context.Context, filter ListFilter, limit, offset int) ([]PatientResponse, int, error) {
			return nil, 42, nil
		},
	}

	service := NewService(mockRepo, nil, nil)

	result, err := service.List(context.Background(), ListFilter{}, pagination.Params{Page: 5, Limit: 10})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Patients == nil {
		t.Error("Expected non-nil patients slice")
	}
	if result.Total != 42 {
		t.Errorf("Expected total 42, got %d", result.Total)
	}
}

// TestListPatients_OffsetFromPage tests the page to offset translation.
func TestListPatients_OffsetFromPage(t *testing.T) {
	var gotLimit, gotOffset int
	mockRepo := &mockRepository{
		listFunc: func(ctx context.Context, filter ListFilter, limit, offset int) ([]PatientResponse, int, error) {
			gotLimit, gotOffset = limit, offset
			return []PatientResponse{}, 0, nil
		},
	}

	service := NewService(mockRepo, nil, nil)

	_, err := service.List(context.Background(), ListFilter{}, pagination.Params{Page: 3, Limit: 20})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if gotLimit != 20 || gotOffset != 40 {
		t.Errorf("Expected limit 20 offset 40, got limit %d offset %d", gotLimit, gotOffset)
	}
}

// TestUpdatePatient_ValidatesPresentFields tests that only submitted
// fields are validated.
func TestUpdatePatient_ValidatesPresentFields(t *testing.T) {
	mockRepo := &mockRepository{
		updateFunc: func(ctx context.Context, id string, req UpdatePatientRequest) (*PatientResponse, error) {
			return &PatientResponse{ID: id, FullName: "John Doe"}, nil
		},
	}

	service := NewService(mockRepo, testutil.NewMockPublisher(), nil)

	// Absent fields pass.
	mobile := "5559876543"
	if _, err := service.Update(context.Background(), "patient-1", UpdatePatientRequest{Mobile: &mobile}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// A present but invalid field fails.
	gender := "unknown"
	_, err := service.Update(context.Background(), "patient-1", UpdatePatientRequest{Gender: &gender})
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}
	fields, ok := validation.FieldErrors(err)
	if !ok || fields["gender"] == "" {
		t.Errorf("Expected field error for 'gender', got: %v", err)
	}
}

// TestDeletePatient_PublishesEvent tests the soft delete event flow.
func TestDeletePatient_PublishesEvent(t *testing.T) {
	mockRepo := &mockRepository{
		softDeleteFunc: func(ctx context.Context, id string) error {
			return nil
		},
		getByIDFunc: func(ctx context.Context, id string) (*PatientResponse, error) {
			return &PatientResponse{ID: id, PatientID: "PAT007", FullName: "John Doe", IsActive: false}, nil
		},
	}
	publisher := testutil.NewMockPublisher()

	service := NewService(mockRepo, publisher, nil)

	if err := service.Delete(context.Background(), "patient-7"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	publisher.AssertEventPublished(t, "patient.deleted")
}

// TestDeletePatient_NotFound tests that a missing patient surfaces the
// sentinel error.
func TestDeletePatient_NotFound(t *testing.T) {
	mockRepo := &mockRepository{
		softDeleteFunc: func(ctx context.Context, id string) error {
			return ErrPatientNotFound
		},
	}

	service := NewService(mockRepo, nil, nil)

	err := service.Delete(context.Background(), "missing")
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("Expected ErrPatientNotFound, got: %v", err)
	}
}

// mockOperationRecorder counts recorded operations by label
type mockOperationRecorder struct {
	operations []string
}

func (m *mockOperationRecorder) RecordPatientOperation(ctx context.Context, operation string) {
	m.operations = append(m.operations, operation)
}

// TestServiceRecordsOperationMetrics verifies create, update and delete
// each record one operation, and that rejected input records none.
func TestServiceRecordsOperationMetrics(t *testing.T) {
	mockRepo := &mockRepository{
		createFunc: func(ctx context.Context, req CreatePatientRequest) (*PatientResponse, error) {
			return &PatientResponse{ID: "patient-1", PatientID: "PAT001"}, nil
		},
		updateFunc: func(ctx context.Context, id string, req UpdatePatientRequest) (*PatientResponse, error) {
			return &PatientResponse{ID: id}, nil
		},
		softDeleteFunc: func(ctx context.Context, id string) error { return nil },
		getByIDFunc: func(ctx context.Context, id string) (*PatientResponse, error) {
			return &PatientResponse{ID: id}, nil
		},
	}
	recorder := &mockOperationRecorder{}
	service := NewService(mockRepo, nil, recorder)
	ctx := context.Background()

	if _, err := service.Create(ctx, validCreateRequest()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := service.Update(ctx, "patient-1", UpdatePatientRequest{}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := service.Delete(ctx, "patient-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	want := []string{"create", "update", "delete"}
	if len(recorder.operations) != len(want) {
		t.Fatalf("Expected %d recorded operations, got %v", len(want), recorder.operations)
	}
	for i, op := range want {
		if recorder.operations[i] != op {
			t.Errorf("Position %d: expected operation '%s', got '%s'", i, op, recorder.operations[i])
		}
	}

	if _, err := service.Create(ctx, CreatePatientRequest{}); err == nil {
		t.Fatal("Expected validation error for empty request")
	}
	if len(recorder.operations) != len(want) {
		t.Errorf("Expected no operation recorded on validation failure, got %v", recorder.operations)
	}
}
