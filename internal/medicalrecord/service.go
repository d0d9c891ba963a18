package medicalrecord

import (
	"context"
	"fmt"
	"log"

	"github.com/clinicdesk/clinic-service/internal/messaging"
	"github.com/clinicdesk/clinic-service/internal/validation"
)

// OperationMetricsRecorder counts medical record write operations.
type OperationMetricsRecorder interface {
	RecordMedicalRecordOperation(ctx context.Context, operation string)
}

type Service struct {
	repo      RepositoryInterface
	publisher messaging.PublisherInterface
	metrics   OperationMetricsRecorder
}

// NewService creates a medical record service. publisher and metrics may
// be nil when event publishing or metrics export is disabled.
func NewService(repo RepositoryInterface, publisher messaging.PublisherInterface, metrics OperationMetricsRecorder) *Service {
	return &Service{repo: repo, publisher: publisher, metrics: metrics}
}

// ListByPatient returns the patient's visit history, newest first.
func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*MedicalRecordResponse, error) {
	records, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}
	if records == nil {
		records = []*MedicalRecordResponse{}
	}
	return records, nil
}

func (s *Service) Create(ctx context.Context, req CreateMedicalRecordRequest) (*MedicalRecordResponse, error) {
	v := validation.NewCollector()
	v.Require("patientId", req.PatientID)
	v.Require("visitDate", req.VisitDate)
	v.Date("visitDate", req.VisitDate)
	if err := v.Err(); err != nil {
		return nil, err
	}

	rec, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create medical record: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordMedicalRecordOperation(ctx, "create")
	}
	s.publish(ctx, rec)
	return rec, nil
}

func (s *Service) publish(ctx context.Context, rec *MedicalRecordResponse) {
	if s.publisher == nil {
		return
	}
	event := messaging.MedicalRecordEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventMedicalRecordCreated),
		Data: messaging.MedicalRecordEventData{
			ID:        rec.ID,
			PatientID: rec.PatientID,
			VisitDate: rec.VisitDate,
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventMedicalRecordCreated, event); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", messaging.EventMedicalRecordCreated, err)
	}
}
