package customers

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	List(ctx context.Context, query string) ([]*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	UpdateMemo(ctx context.Context, id int64, memo *string) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
