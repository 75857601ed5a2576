package get_monthly_stats

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/stats"
)

const msgInvalidMonth = "연도와 월이 올바르지 않습니다"

type Handler struct {
	service StatsService
	clock   TimeProvider
	logger  Logger
}

func NewHandler(service StatsService, clock TimeProvider, logger Logger) *Handler {
	return &Handler{
		service: service,
		clock:   clock,
		logger:  logger,
	}
}

// Handle GET /api/v1/stats/monthly?year=&month=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, month, err := handlers.ParseYearMonth(r, h.clock.Now())
	if err != nil {
		h.logger.Warn("GET /stats/monthly - %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.service.Monthly(r.Context(), year, month)
	if err != nil {
		if errors.Is(err, stats.ErrInvalidInput) {
			h.logger.Warn("GET /stats/monthly - Invalid month: %d-%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		h.logger.Error("GET /stats/monthly - Failed: %d-%02d, error=%v", year, month, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
