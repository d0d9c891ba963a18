package patient

import (
	"context"
	"fmt"
	"log"

	"github.com/clinicdesk/clinic-service/internal/messaging"
	"github.com/clinicdesk/clinic-service/internal/pagination"
	"github.com/clinicdesk/clinic-service/internal/validation"
)

// OperationMetricsRecorder counts patient write operations.
type OperationMetricsRecorder interface {
	RecordPatientOperation(ctx context.Context, operation string)
}

type Service struct {
	repo      RepositoryInterface
	publisher messaging.PublisherInterface
	metrics   OperationMetricsRecorder
}

// NewService creates a patient service. publisher and metrics may be nil
// when event publishing or metrics export is disabled.
func NewService(repo RepositoryInterface, publisher messaging.PublisherInterface, metrics OperationMetricsRecorder) *Service {
	return &Service{repo: repo, publisher: publisher, metrics: metrics}
}

func (s *Service) record(ctx context.Context, operation string) {
	if s.metrics != nil {
		s.metrics.RecordPatientOperation(ctx, operation)
	}
}

func (s *Service) List(ctx context.Context, filter ListFilter, params pagination.Params) (*ListResponse, error) {
	params.Validate()

	patients, total, err := s.repo.List(ctx, filter, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	if patients == nil {
		patients = []PatientResponse{}
	}
	return &ListResponse{Patients: patients, Total: total}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*PatientResponse, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreatePatientRequest) (*PatientResponse, error) {
	v := validation.NewCollector()
	v.Require("fullName", req.FullName)
	v.Require("dateOfBirth", req.DateOfBirth)
	v.Date("dateOfBirth", req.DateOfBirth)
	v.Require("gender", req.Gender)
	v.OneOf("gender", req.Gender, Genders...)
	v.OneOf("bloodGroup", req.BloodGroup, BloodGroups...)
	v.Require("mobile", req.Mobile)
	if err := v.Err(); err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	s.record(ctx, "create")
	s.publish(ctx, messaging.EventPatientCreated, p)
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdatePatientRequest) (*PatientResponse, error) {
	v := validation.NewCollector()
	if req.FullName != nil {
		v.Require("fullName", *req.FullName)
	}
	if req.DateOfBirth != nil {
		v.Require("dateOfBirth", *req.DateOfBirth)
		v.Date("dateOfBirth", *req.DateOfBirth)
	}
	if req.Gender != nil {
		v.Require("gender", *req.Gender)
		v.OneOf("gender", *req.Gender, Genders...)
	}
	if req.BloodGroup != nil {
		v.OneOf("bloodGroup", *req.BloodGroup, BloodGroups...)
	}
	if req.Mobile != nil {
		v.Require("mobile", *req.Mobile)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	p, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.record(ctx, "update")
	s.publish(ctx, messaging.EventPatientUpdated, p)
	return p, nil
}

// Delete soft-deletes the patient; the row stays queryable by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.record(ctx, "delete")
	if p, err := s.repo.GetByID(ctx, id); err == nil {
		s.publish(ctx, messaging.EventPatientDeleted, p)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, eventType string, p *PatientResponse) {
	if s.publisher == nil {
		return
	}
	event := messaging.PatientEvent{
		BaseEvent: messaging.NewBaseEvent(eventType),
		Data: messaging.PatientEventData{
			ID:        p.ID,
			PatientID: p.PatientID,
			FullName:  p.FullName,
			IsActive:  p.IsActive,
		},
	}
	if err := s.publisher.Publish(ctx, eventType, event); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
