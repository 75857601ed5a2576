package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

// Service сервис календаря записей и выходных дней
type Service struct {
	appointmentRepo AppointmentRepository
	closedDateRepo  ClosedDateRepository
	timeProvider    TimeProvider
	windowDays      int
	logger          Logger
}

// NewService создает новый экземпляр сервиса. windowDays <= 0 означает 30 дней.
func NewService(
	appointmentRepo AppointmentRepository,
	closedDateRepo ClosedDateRepository,
	windowDays int,
	logger Logger,
) *Service {
	if windowDays <= 0 {
		windowDays = domain.DefaultAvailabilityWindowDays
	}
	return &Service{
		appointmentRepo: appointmentRepo,
		closedDateRepo:  closedDateRepo,
		timeProvider:    &RealTimeProvider{},
		windowDays:      windowDays,
		logger:          logger,
	}
}

// ListByDate возвращает записи на день (любой статус) по времени и признак выходного
func (s *Service) ListByDate(ctx context.Context, date datekey.DateKey) (*models.DailyAppointmentsResponse, error) {
	if !date.Valid() {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, date)
	}

	appointments, err := s.appointmentRepo.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: repository error for %s: %v", date, err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	closed, err := s.closedDateRepo.ListInRange(ctx, date, date)
	if err != nil {
		s.logger.Error("ListByDate: closed dates error for %s: %v", date, err)
		return nil, fmt.Errorf("%w: ListByDate - closed dates error: %v", ErrInternal, err)
	}

	return &models.DailyAppointmentsResponse{
		Date:         date.String(),
		Closed:       domain.IsClosedDate(date, domain.BuildClosedDateSet(closed)),
		Appointments: models.FromDomainAppointmentList(appointments),
	}, nil
}

// MonthMarkers возвращает даты месяца с записями и выходные дни месяца
func (s *Service) MonthMarkers(ctx context.Context, year, month int) (*models.MonthMarkersResponse, error) {
	start, end, err := datekey.MonthBounds(year, month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	dates, err := s.appointmentRepo.ListDatesInRange(ctx, start, end)
	if err != nil {
		s.logger.Error("MonthMarkers: repository error for %d-%02d: %v", year, month, err)
		return nil, fmt.Errorf("%w: MonthMarkers - repository error: %v", ErrInternal, err)
	}

	closed, err := s.closedDateRepo.ListInRange(ctx, start, end)
	if err != nil {
		s.logger.Error("MonthMarkers: closed dates error for %d-%02d: %v", year, month, err)
		return nil, fmt.Errorf("%w: MonthMarkers - closed dates error: %v", ErrInternal, err)
	}

	return &models.MonthMarkersResponse{
		Year:             year,
		Month:            month,
		AppointmentDates: models.DateStrings(dates),
		ClosedDates:      models.DateStrings(domain.BuildClosedDateSet(closed).Sorted()),
	}, nil
}

// ListClosedDates возвращает все выходные дни, новые сверху
func (s *Service) ListClosedDates(ctx context.Context) (*models.ClosedDateListResponse, error) {
	records, err := s.closedDateRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListClosedDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListClosedDates - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainClosedDates(records), nil
}

// NextAvailableDate ищет первый открытый день начиная с from (пусто: сегодня)
func (s *Service) NextAvailableDate(ctx context.Context, from datekey.DateKey) (*models.NextAvailableDateResponse, error) {
	if from.IsZero() {
		from = datekey.TodayAt(s.timeProvider.Now())
	}
	if !from.Valid() {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, from)
	}

	closed, err := s.closedDateRepo.ListInRange(ctx, from, from.AddDays(s.windowDays-1))
	if err != nil {
		s.logger.Error("NextAvailableDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: NextAvailableDate - repository error: %v", ErrInternal, err)
	}

	date, err := domain.NextAvailableDate(from, domain.BuildClosedDateSet(closed), s.windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNoAvailableDate) {
			s.logger.Warn("NextAvailableDate: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrNoAvailableDate, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return &models.NextAvailableDateResponse{
		From:  from.String(),
		Date:  date.String(),
		Label: date.Human(),
	}, nil
}
