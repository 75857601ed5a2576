package apply_closed_days_batch

import (
	"context"

	closedDays "github.com/m04kA/SMC-SalonService/internal/usecase/closed_days"
)

type ApplyBatchUseCase interface {
	ApplyBatch(ctx context.Context, req *closedDays.ApplyBatchRequest, confirmer closedDays.Confirmer) (*closedDays.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
