package dashboard

import "context"

type RepositoryInterface interface {
	CountActivePatients(ctx context.Context) (int, error)
	CountTodayAppointments(ctx context.Context) (int, error)
	CountActiveStaff(ctx context.Context) (int, error)
}

var _ RepositoryInterface = (*Repository)(nil)
