package get_daily_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

const msgInvalidDate = "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := datekey.DateKey(r.URL.Query().Get("date"))

	result, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /appointments - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /appointments - Failed to list appointments: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Listed: date=%s, count=%d, closed=%t",
		date, len(result.Appointments), result.Closed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
