package appointment

import (
	"context"

	"github.com/clinicdesk/clinic-service/internal/pagination"
)

// ServiceInterface defines the contract for appointment business logic operations
type ServiceInterface interface {
	List(ctx context.Context, filter ListFilter, params pagination.Params) (*ListResponse, error)
	Get(ctx context.Context, id string) (*AppointmentResponse, error)
	Create(ctx context.Context, req CreateAppointmentRequest) (*AppointmentResponse, error)
	Update(ctx context.Context, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error)
	Delete(ctx context.Context, id string) error
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
