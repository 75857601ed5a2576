package list_closed_days

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

type ScheduleService interface {
	ListClosedDates(ctx context.Context) (*models.ClosedDateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
