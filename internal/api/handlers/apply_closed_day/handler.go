package apply_closed_day

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

const route = "POST /closed-days"

const msgInvalidRequestBody = "요청 형식이 올바르지 않습니다"

type Handler struct {
	useCase ApplySingleUseCase
	logger  Logger
}

func NewHandler(useCase ApplySingleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/closed-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ApplyClosedDayRequest
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

	result, err := h.useCase.ApplySingle(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		handlers.RespondClosedDayError(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Closed day applied: date=%s, cancelled=%d", route, req.Date, result.CancelledCount)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromResult(result))
}
