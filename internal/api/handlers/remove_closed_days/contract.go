package remove_closed_days

import (
	"context"

	closedDays "github.com/m04kA/SMC-SalonService/internal/usecase/closed_days"
)

type RemoveRangeUseCase interface {
	RemoveRange(ctx context.Context, req *closedDays.RemoveRangeRequest, confirmer closedDays.Confirmer) (*closedDays.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
