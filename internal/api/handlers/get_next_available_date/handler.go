package get_next_available_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

const (
	msgInvalidDate     = "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)"
	msgNoAvailableDate = "예약 가능한 날짜가 없습니다"
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

// Handle GET /api/v1/schedule/next-available?from=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from := datekey.DateKey(r.URL.Query().Get("from"))

	result, err := h.service.NextAvailableDate(r.Context(), from)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /schedule/next-available - Invalid date: from=%s", from)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, appointments.ErrNoAvailableDate):
			h.logger.Warn("GET /schedule/next-available - No available date: from=%s", from)
			handlers.RespondNotFound(w, msgNoAvailableDate)

		default:
			h.logger.Error("GET /schedule/next-available - Failed: from=%s, error=%v", from, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
