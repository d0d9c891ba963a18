package medicalrecord

import "context"

type ServiceInterface interface {
	ListByPatient(ctx context.Context, patientID string) ([]*MedicalRecordResponse, error)
	Create(ctx context.Context, req CreateMedicalRecordRequest) (*MedicalRecordResponse, error)
}

var _ ServiceInterface = (*Service)(nil)
