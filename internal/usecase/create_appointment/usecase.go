package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	closedDateRepo  ClosedDateRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	closedDateRepo ClosedDateRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		closedDateRepo:  closedDateRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute создает запись.
// Проверка выходного дня и вставка идут в одной сериализуемой транзакции,
// чтобы день не закрыли между ними. Записи в историю (completed) не проверяются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%d, date=%s, time=%s, status=%s",
		req.CustomerID, req.Date, req.Time, req.Status)

	// 1. Валидация входных данных
	if err := normalizeRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	var (
		created  *domain.Appointment
		customer *domain.Customer
	)

	// 2. Проверки и вставка в транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		c, err := uc.customerRepo.GetByID(txCtx, req.CustomerID)
		if err != nil {
			if errors.Is(err, customerRepo.ErrCustomerNotFound) {
				uc.logger.Warn("CreateAppointment: customer id=%d not found", req.CustomerID)
				return ErrCustomerNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get customer id=%d: %v", req.CustomerID, err)
			return fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
		}
		customer = c

		if req.Status == domain.StatusConfirmed {
			closed, err := uc.closedDateRepo.IsClosed(txCtx, req.Date)
			if err != nil {
				uc.logger.Error("CreateAppointment: failed to check closed date %s: %v", req.Date, err)
				return fmt.Errorf("%w: failed to check closed date: %v", ErrInternal, err)
			}
			if closed {
				uc.logger.Warn("CreateAppointment: %s is closed", req.Date)
				return fmt.Errorf("%w: %s", ErrDateClosed, req.Date.Human())
			}
		}

		appt := &domain.Appointment{
			CustomerID: req.CustomerID,
			Date:       req.Date,
			Time:       req.Time,
			Service:    req.Service,
			Duration:   req.Duration,
			Memo:       req.Memo,
			Status:     req.Status,
		}

		created, err = uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", created.ID)

	return &Response{
		ID:           created.ID,
		CustomerID:   created.CustomerID,
		CustomerName: customer.Name,
		Date:         created.Date,
		Time:         created.Time,
		Service:      created.Service,
		Duration:     created.Duration,
		Memo:         created.Memo,
		Status:       created.Status,
		CreatedAt:    created.CreatedAt,
	}, nil
}
