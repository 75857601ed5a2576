package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-SalonService/internal/service/customers/models"
)

const maxNameLength = 50

// Service сервис для работы с клиентами
type Service struct {
	customerRepo    CustomerRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(
	customerRepo CustomerRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *Service {
	return &Service{
		customerRepo:    customerRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// List возвращает клиентов, отсортированных по имени. query ищет по имени, телефону и заметке.
func (s *Service) List(ctx context.Context, query string) (*models.CustomerListResponse, error) {
	customers, err := s.customerRepo.List(ctx, query)
	if err != nil {
		s.logger.Error("List: repository error for query=%q: %v", query, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomerList(customers), nil
}

// Get возвращает клиента с историей записей
func (s *Service) Get(ctx context.Context, id int64) (*models.CustomerDetailResponse, error) {
	s.logger.Info("Get: fetching customer id=%d", id)

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Get: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Get: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	history, err := s.appointmentRepo.ListByCustomer(ctx, id)
	if err != nil {
		s.logger.Error("Get: failed to load history for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - history error: %v", ErrInternal, err)
	}

	return &models.CustomerDetailResponse{
		CustomerResponse: *models.FromDomainCustomer(customer),
		History:          models.FromDomainVisits(history),
	}, nil
}

// Create создает клиента. Телефон приводится к виду 010-1234-5678.
func (s *Service) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, maxNameLength)
	}

	phone, err := domain.NormalizePhone(req.Phone)
	if err != nil {
		s.logger.Warn("Create: invalid phone %q", req.Phone)
		return nil, fmt.Errorf("%w: %w", ErrInvalidPhone, err)
	}

	memo, err := normalizeMemo(req.Memo)
	if err != nil {
		return nil, err
	}

	created, err := s.customerRepo.Create(ctx, &domain.Customer{
		Name:  name,
		Phone: phone,
		Memo:  memo,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created customer id=%d", created.ID)
	return models.FromDomainCustomer(created), nil
}

// UpdateMemo заменяет заметку клиента
func (s *Service) UpdateMemo(ctx context.Context, id int64, req *models.UpdateMemoRequest) (*models.CustomerResponse, error) {
	memo, err := normalizeMemo(req.Memo)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.UpdateMemo(ctx, id, memo); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("UpdateMemo: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("UpdateMemo: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateMemo - repository error: %v", ErrInternal, err)
	}

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateMemo: failed to reload customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateMemo - reload error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomer(customer), nil
}

func normalizeMemo(memo *string) (*string, error) {
	if memo == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*memo)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxMemoLength {
		return nil, fmt.Errorf("%w: memo must be at most %d characters", ErrInvalidInput, domain.MaxMemoLength)
	}
	return &trimmed, nil
}
