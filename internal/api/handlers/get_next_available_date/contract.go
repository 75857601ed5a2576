package get_next_available_date

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

type ScheduleService interface {
	NextAvailableDate(ctx context.Context, from datekey.DateKey) (*models.NextAvailableDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
