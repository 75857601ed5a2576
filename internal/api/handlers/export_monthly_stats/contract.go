package export_monthly_stats

import (
	"context"
	"io"
	"time"
)

type StatsExporter interface {
	ExportMonthly(ctx context.Context, year, month int, w io.Writer) error
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
