package apply_closed_days_batch

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	closedDays "github.com/m04kA/SMC-SalonService/internal/usecase/closed_days"
)

const route = "POST /closed-days/batch"

const msgInvalidRequestBody = "요청 형식이 올바르지 않습니다"

type Handler struct {
	useCase ApplyBatchUseCase
	logger  Logger
}

func NewHandler(useCase ApplyBatchUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/closed-days/batch
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ApplyBatchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	// Ответ на вопрос приходит в том же запросе
	confirmer := closedDays.ConfirmerFunc(func(_ context.Context, _ closedDays.Prompt) (bool, error) {
		return req.Confirmed, nil
	})

	result, err := h.useCase.ApplyBatch(r.Context(), req.ToUseCaseRequest(), confirmer)
	if err != nil {
		handlers.RespondClosedDayError(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Batch applied: mode=%s, start=%s, end=%s, applied=%d, cancelled=%d",
		route, req.Mode, req.Start, req.End, result.AppliedDays, result.CancelledCount)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromResult(result))
}
