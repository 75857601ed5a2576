package apply_closed_day

import (
	"context"

	closedDays "github.com/m04kA/SMC-SalonService/internal/usecase/closed_days"
)

type ApplySingleUseCase interface {
	ApplySingle(ctx context.Context, req *closedDays.ApplySingleRequest) (*closedDays.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
