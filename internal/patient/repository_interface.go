package patient

import "context"

// RepositoryInterface defines the contract for patient data access
type RepositoryInterface interface {
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]PatientResponse, int, error)
	GetByID(ctx context.Context, id string) (*PatientResponse, error)
	Create(ctx context.Context, req CreatePatientRequest) (*PatientResponse, error)
	Update(ctx context.Context, id string, req UpdatePatientRequest) (*PatientResponse, error)
	SoftDelete(ctx context.Context, id string) error
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
