package stats

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/stats/models"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

// Service сервис месячной статистики
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Monthly считает статистику месяца. Границы месяца и "сегодня" берутся по KST.
func (s *Service) Monthly(ctx context.Context, year, month int) (*models.MonthlyStatsResponse, error) {
	stats, _, err := s.compute(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return models.FromDomainStats(stats), nil
}

func (s *Service) compute(ctx context.Context, year, month int) (*domain.MonthlyStats, []*domain.Appointment, error) {
	start, end, err := datekey.MonthBounds(year, month)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appointments, err := s.appointmentRepo.ListInRange(ctx, start, end)
	if err != nil {
		s.logger.Error("Monthly: repository error for %d-%02d: %v", year, month, err)
		return nil, nil, fmt.Errorf("%w: Monthly - repository error: %v", ErrInternal, err)
	}

	today := datekey.TodayAt(s.timeProvider.Now())
	return domain.ComputeMonthlyStats(year, month, appointments, today), appointments, nil
}
