package get_closed_day_conflicts

import (
	"context"

	closedDays "github.com/m04kA/SMC-SalonService/internal/usecase/closed_days"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

type ConflictsUseCase interface {
	ReviewConflicts(ctx context.Context, date datekey.DateKey) (*closedDays.ConflictReview, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
