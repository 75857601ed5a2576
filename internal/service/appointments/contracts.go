package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListByDate(ctx context.Context, date datekey.DateKey) ([]*domain.Appointment, error)
	ListDatesInRange(ctx context.Context, start, end datekey.DateKey) ([]datekey.DateKey, error)
}

// ClosedDateRepository интерфейс репозитория выходных дней
type ClosedDateRepository interface {
	List(ctx context.Context) ([]*domain.ClosedDateRecord, error)
	ListInRange(ctx context.Context, start, end datekey.DateKey) ([]*domain.ClosedDateRecord, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
