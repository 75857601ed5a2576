package get_closed_day_conflicts

import (
	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	apptModels "github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
	closedDays "github.com/m04kA/SMC-SalonService/internal/usecase/closed_days"
)

// ConflictsResponse записи на дату и ID, выбранные для отмены по умолчанию
type ConflictsResponse struct {
	Date           string                           `json:"date"`
	Label          string                           `json:"label"`
	Appointments   []apptModels.AppointmentResponse `json:"appointments"`
	CancellableIDs []int64                          `json:"cancellableIds"`
	States         []string                         `json:"states"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *closedDays.ConflictReview) *ConflictsResponse {
	return &ConflictsResponse{
		Date:           resp.Date.String(),
		Label:          resp.Date.Human(),
		Appointments:   apptModels.FromDomainAppointmentList(resp.Appointments),
		CancellableIDs: resp.CancellableIDs,
		States:         handlers.StateStrings(resp.States),
	}
}
