package get_closed_day_conflicts

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

const route = "GET /closed-days/{date}/conflicts"

type Handler struct {
	useCase ConflictsUseCase
	logger  Logger
}

func NewHandler(useCase ConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/closed-days/{date}/conflicts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := datekey.DateKey(mux.Vars(r)["date"])

	result, err := h.useCase.ReviewConflicts(r.Context(), date)
	if err != nil {
		handlers.RespondClosedDayError(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Conflicts reviewed: date=%s, appointments=%d, cancellable=%d",
		route, date, len(result.Appointments), len(result.CancellableIDs))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
