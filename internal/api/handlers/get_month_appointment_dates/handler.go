package get_month_appointment_dates

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
)

const msgInvalidMonth = "연도와 월이 올바르지 않습니다"

type Handler struct {
	service AppointmentService
	clock   TimeProvider
	logger  Logger
}

func NewHandler(service AppointmentService, clock TimeProvider, logger Logger) *Handler {
	return &Handler{
		service: service,
		clock:   clock,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/calendar?year=&month=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, month, err := handlers.ParseYearMonth(r, h.clock.Now())
	if err != nil {
		h.logger.Warn("GET /appointments/calendar - %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.service.MonthMarkers(r.Context(), year, month)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /appointments/calendar - Invalid month: %d-%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		h.logger.Error("GET /appointments/calendar - Failed: %d-%02d, error=%v", year, month, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
