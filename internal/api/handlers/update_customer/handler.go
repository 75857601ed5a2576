package update_customer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/customers"
	"github.com/m04kA/SMC-SalonService/internal/service/customers/models"
)

const (
	msgInvalidCustomerID  = "고객 ID가 올바르지 않습니다"
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다"
	msgInvalidMemo        = "메모가 너무 깁니다"
	msgNotFound           = "고객을 찾을 수 없습니다"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/customers/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, err := handlers.ParseID(mux.Vars(r)["customerId"])
	if err != nil {
		h.logger.Warn("PATCH /customers/{id} - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	var req models.UpdateMemoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /customers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateMemo(r.Context(), customerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("PATCH /customers/{id} - Invalid memo: customer_id=%d", customerID)
			handlers.RespondBadRequest(w, msgInvalidMemo)

		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("PATCH /customers/{id} - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /customers/{id} - Failed to update memo: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /customers/{id} - Memo updated: customer_id=%d", customerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
