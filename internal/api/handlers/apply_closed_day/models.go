package apply_closed_day

import (
	closedDays "github.com/m04kA/SMC-SalonService/internal/usecase/closed_days"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

// ApplyClosedDayRequest HTTP request model
type ApplyClosedDayRequest struct {
	Date       string  `json:"date"` // "2025-03-10"
	CancelIDs  []int64 `json:"cancelIds,omitempty"`
	Note       *string `json:"note,omitempty"`
	RequestKey string  `json:"requestKey,omitempty" validate:"max=128"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ApplyClosedDayRequest) ToUseCaseRequest() *closedDays.ApplySingleRequest {
	return &closedDays.ApplySingleRequest{
		Date:       datekey.DateKey(r.Date),
		CancelIDs:  r.CancelIDs,
		Note:       r.Note,
		RequestKey: r.RequestKey,
	}
}
