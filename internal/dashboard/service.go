package dashboard

import (
	"context"
	"fmt"
)

// monthlyRevenue is a placeholder figure; no billing ledger exists yet to
// compute it from. TODO: derive from billing once invoicing lands.
const monthlyRevenue = 45230

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// Stats gathers the dashboard counters in one pass.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	patients, err := s.repo.CountActivePatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to gather dashboard stats: %w", err)
	}

	appointments, err := s.repo.CountTodayAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to gather dashboard stats: %w", err)
	}

	staff, err := s.repo.CountActiveStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to gather dashboard stats: %w", err)
	}

	return &Stats{
		TotalPatients:     patients,
		TodayAppointments: appointments,
		ActiveStaff:       staff,
		MonthlyRevenue:    monthlyRevenue,
	}, nil
}
