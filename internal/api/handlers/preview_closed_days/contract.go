package preview_closed_days

import (
	"context"

	closedDays "github.com/m04kA/SMC-SalonService/internal/usecase/closed_days"
)

type PreviewUseCase interface {
	Preview(ctx context.Context, req *closedDays.PreviewRequest) (*closedDays.PreviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
