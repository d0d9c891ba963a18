package appointment

import (
	"context"
	"fmt"
	"log"

	"github.com/clinicdesk/clinic-service/internal/messaging"
	"github.com/clinicdesk/clinic-service/internal/pagination"
	"github.com/clinicdesk/clinic-service/internal/validation"
)

// OperationMetricsRecorder counts appointment write operations.
type OperationMetricsRecorder interface {
	RecordAppointmentOperation(ctx context.Context, operation string)
}

type Service struct {
	repo      RepositoryInterface
	publisher messaging.PublisherInterface
	metrics   OperationMetricsRecorder
}

// NewService creates an appointment service. publisher and metrics may be
// nil when event publishing or metrics export is disabled.
func NewService(repo RepositoryInterface, publisher messaging.PublisherInterface, metrics OperationMetricsRecorder) *Service {
	return &Service{repo: repo, publisher: publisher, metrics: metrics}
}

func (s *Service) record(ctx context.Context, operation string) {
	if s.metrics != nil {
		s.metrics.RecordAppointmentOperation(ctx, operation)
	}
}

func (s *Service) List(ctx context.Context, filter ListFilter, params pagination.Params) (*ListResponse, error) {
	params.Validate()

	appointments, total, err := s.repo.List(ctx, filter, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	if appointments == nil {
		appointments = []AppointmentResponse{}
	}
	return &ListResponse{Appointments: appointments, Total: total}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*AppointmentResponse, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateAppointmentRequest) (*AppointmentResponse, error) {
	if req.Status == "" {
		req.Status = DefaultStatus
	}

	v := validation.NewCollector()
	v.Require("patientId", req.PatientID)
	v.Require("appointmentDate", req.AppointmentDate)
	v.Date("appointmentDate", req.AppointmentDate)
	v.Require("appointmentTime", req.AppointmentTime)
	v.TimeOfDay("appointmentTime", req.AppointmentTime)
	v.Require("type", req.Type)
	v.OneOf("type", req.Type, Types...)
	v.OneOf("status", req.Status, Statuses...)
	if err := v.Err(); err != nil {
		return nil, err
	}

	a, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.record(ctx, "create")
	s.publish(ctx, messaging.EventAppointmentCreated, a)
	return a, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error) {
	v := validation.NewCollector()
	if req.PatientID != nil {
		v.Require("patientId", *req.PatientID)
	}
	if req.AppointmentDate != nil {
		v.Require("appointmentDate", *req.AppointmentDate)
		v.Date("appointmentDate", *req.AppointmentDate)
	}
	if req.AppointmentTime != nil {
		v.Require("appointmentTime", *req.AppointmentTime)
		v.TimeOfDay("appointmentTime", *req.AppointmentTime)
	}
	if req.Type != nil {
		v.Require("type", *req.Type)
		v.OneOf("type", *req.Type, Types...)
	}
	if req.Status != nil {
		v.Require("status", *req.Status)
		v.OneOf("status", *req.Status, Statuses...)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	a, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.record(ctx, "update")
	s.publish(ctx, messaging.EventAppointmentUpdated, a)
	return a, nil
}

// Delete removes the appointment permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ctx, "delete")
	s.publish(ctx, messaging.EventAppointmentDeleted, a)
	return nil
}

func (s *Service) publish(ctx context.Context, eventType string, a *AppointmentResponse) {
	if s.publisher == nil {
		return
	}
	event := messaging.AppointmentEvent{
		BaseEvent: messaging.NewBaseEvent(eventType),
		Data: messaging.AppointmentEventData{
			ID:              a.ID,
			AppointmentID:   a.AppointmentID,
			PatientID:       a.PatientID,
			AppointmentDate: a.AppointmentDate,
			AppointmentTime: a.AppointmentTime,
			Status:          a.Status,
		},
	}
	if err := s.publisher.Publish(ctx, eventType, event); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
