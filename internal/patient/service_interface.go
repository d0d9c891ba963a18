package patient

import (
	"context"

	"github.com/clinicdesk/clinic-service/internal/pagination"
)

// ServiceInterface defines the contract for patient business logic operations
type ServiceInterface interface {
	List(ctx context.Context, filter ListFilter, params pagination.Params) (*ListResponse, error)
	Get(ctx context.Context, id string) (*PatientResponse, error)
	Create(ctx context.Context, req CreatePatientRequest) (*PatientResponse, error)
	Update(ctx context.Context, id string, req UpdatePatientRequest) (*PatientResponse, error)
	Delete(ctx context.Context, id string) error
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
