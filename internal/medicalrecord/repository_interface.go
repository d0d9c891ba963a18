package medicalrecord

import "context"

type RepositoryInterface interface {
	ListByPatient(ctx context.Context, patientID string) ([]*MedicalRecordResponse, error)
	Create(ctx context.Context, req CreateMedicalRecordRequest) (*MedicalRecordResponse, error)
}

var _ RepositoryInterface = (*Repository)(nil)
