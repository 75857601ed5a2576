package export_monthly_stats

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/stats"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	msgInvalidMonth = "연도와 월이 올바르지 않습니다"
)

type Handler struct {
	exporter StatsExporter
	clock    TimeProvider
	logger   Logger
}

func NewHandler(exporter StatsExporter, clock TimeProvider, logger Logger) *Handler {
	return &Handler{
		exporter: exporter,
		clock:    clock,
		logger:   logger,
	}
}

// Handle GET /api/v1/stats/monthly/export?year=&month=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, month, err := handlers.ParseYearMonth(r, h.clock.Now())
	if err != nil {
		h.logger.Warn("GET /stats/monthly/export - %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	// Файл собирается целиком до заголовков, иначе ошибку нельзя вернуть как JSON
	var buf bytes.Buffer
	if err := h.exporter.ExportMonthly(r.Context(), year, month, &buf); err != nil {
		if errors.Is(err, stats.ErrInvalidInput) {
			h.logger.Warn("GET /stats/monthly/export - Invalid month: %d-%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		h.logger.Error("GET /stats/monthly/export - Failed: %d-%02d, error=%v", year, month, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, stats.FileName(year, month)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /stats/monthly/export - Failed to write response: %v", err)
	}
}
