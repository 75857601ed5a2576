package preview_closed_days

import (
	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	apptModels "github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
	closedDays "github.com/m04kA/SMC-SalonService/internal/usecase/closed_days"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

// PreviewRequest HTTP request model
type PreviewRequest struct {
	Mode    string `json:"mode" validate:"required,oneof=single range weekly"`
	Start   string `json:"start"` // "2025-03-10"
	End     string `json:"end,omitempty"`
	Weekday *int   `json:"weekday,omitempty" validate:"omitempty,min=0,max=6"`
}

// PreviewResponse HTTP response model
type PreviewResponse struct {
	Mode        string   `json:"mode"`
	TargetDates []string `json:"targetDates"`
	ImpactCount int      `json:"impactCount"`
	States      []string `json:"states"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PreviewRequest) ToUseCaseRequest() *closedDays.PreviewRequest {
	return &closedDays.PreviewRequest{
		Mode:    domain.ClosedDayMode(r.Mode),
		Start:   datekey.DateKey(r.Start),
		End:     datekey.DateKey(r.End),
		Weekday: r.Weekday,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *closedDays.PreviewResponse) *PreviewResponse {
	return &PreviewResponse{
		Mode:        string(resp.Mode),
		TargetDates: apptModels.DateStrings(resp.TargetDates),
		ImpactCount: resp.ImpactCount,
		States:      handlers.StateStrings(resp.States),
	}
}
