package remove_closed_days

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	closedDays "github.com/m04kA/SMC-SalonService/internal/usecase/closed_days"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

const route = "DELETE /closed-days"

const msgInvalidConfirmed = "confirmed 값은 true 또는 false 이어야 합니다"

type Handler struct {
	useCase RemoveRangeUseCase
	logger  Logger
}

func NewHandler(useCase RemoveRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/closed-days?start=&end=&confirmed=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	confirmed := false
	if raw := query.Get("confirmed"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("%s - Invalid confirmed flag: %q", route, raw)
			handlers.RespondBadRequest(w, msgInvalidConfirmed)
			return
		}
		confirmed = v
	}

	req := &closedDays.RemoveRangeRequest{
		Start:      datekey.DateKey(query.Get("start")),
		End:        datekey.DateKey(query.Get("end")),
		RequestKey: r.Header.Get("Idempotency-Key"),
	}
	confirmer := closedDays.ConfirmerFunc(func(_ context.Context, _ closedDays.Prompt) (bool, error) {
		return confirmed, nil
	})

	result, err := h.useCase.RemoveRange(r.Context(), req, confirmer)
	if err != nil {
		handlers.RespondClosedDayError(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Closed days removed: start=%s, end=%s, removed=%d",
		route, req.Start, req.End, result.RemovedDays)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromResult(result))
}
