package closed_days

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/closedday"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListByDate(ctx context.Context, date datekey.DateKey) ([]*domain.Appointment, error)
	CountConfirmedInDates(ctx context.Context, dates []datekey.DateKey) (int, error)
}

// ClosedDateRepository интерфейс репозитория выходных дней
type ClosedDateRepository interface {
	List(ctx context.Context) ([]*domain.ClosedDateRecord, error)
	CountInRange(ctx context.Context, start, end datekey.DateKey) (int, error)
}

// Procedures интерфейс атомарных серверных процедур
type Procedures interface {
	ApplySingle(ctx context.Context, date datekey.DateKey, cancelIDs []int64, note *string) (*closedday.Result, error)
	ApplyBatch(ctx context.Context, params closedday.BatchParams) (*closedday.Result, error)
	RemoveRange(ctx context.Context, start, end datekey.DateKey) (*closedday.Result, error)
}

// InflightGuard не дает запустить вторую фиксацию по тому же ключу
type InflightGuard interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// Confirmer явное подтверждение оператора перед пакетным закрытием или удалением
type Confirmer interface {
	Confirm(ctx context.Context, prompt Prompt) (bool, error)
}

// ConfirmerFunc адаптер функции к Confirmer
type ConfirmerFunc func(ctx context.Context, prompt Prompt) (bool, error)

// Confirm вызывает f
func (f ConfirmerFunc) Confirm(ctx context.Context, prompt Prompt) (bool, error) {
	return f(ctx, prompt)
}

// Metrics счетчики операций с выходными днями
type Metrics interface {
	RecordClosedDayOperation(operation, outcome string)
	AddCancelledAppointments(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
