package get_monthly_stats

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/service/stats/models"
)

type StatsService interface {
	Monthly(ctx context.Context, year, month int) (*models.MonthlyStatsResponse, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
