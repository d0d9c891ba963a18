package appointment

import "context"

// RepositoryInterface defines the contract for appointment data access
type RepositoryInterface interface {
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]AppointmentResponse, int, error)
	GetByID(ctx context.Context, id string) (*AppointmentResponse, error)
	Create(ctx context.Context, req CreateAppointmentRequest) (*AppointmentResponse, error)
	Update(ctx context.Context, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error)
	Delete(ctx context.Context, id string) error
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
