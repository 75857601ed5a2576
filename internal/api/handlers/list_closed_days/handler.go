package list_closed_days

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/closed-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListClosedDates(r.Context())
	if err != nil {
		h.logger.Error("GET /closed-days - Failed to list closed dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /closed-days - Closed dates listed: count=%d", len(result.ClosedDates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
