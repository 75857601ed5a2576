package get_month_appointment_dates

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

type AppointmentService interface {
	MonthMarkers(ctx context.Context, year, month int) (*models.MonthMarkersResponse, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
