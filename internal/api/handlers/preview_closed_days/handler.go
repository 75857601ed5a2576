package preview_closed_days

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

const route = "POST /closed-days/preview"

const msgInvalidRequestBody = "요청 형식이 올바르지 않습니다"

type Handler struct {
	useCase PreviewUseCase
	logger  Logger
}

func NewHandler(useCase PreviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/closed-days/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
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

	result, err := h.useCase.Preview(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		handlers.RespondClosedDayError(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Preview computed: mode=%s, days=%d, impact=%d",
		route, req.Mode, len(result.TargetDates), result.ImpactCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
