package apply_closed_days_batch

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	closedDays "github.com/m04kA/SMC-SalonService/internal/usecase/closed_days"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

// ApplyBatchRequest HTTP request model.
// Confirmed=false возвращает 409 с вопросом; повтор с true фиксирует изменения.
type ApplyBatchRequest struct {
	Mode       string  `json:"mode" validate:"required,oneof=range weekly"`
	Start      string  `json:"start" validate:"required,datetime=2006-01-02"`
	End        string  `json:"end" validate:"required,datetime=2006-01-02"`
	Weekday    *int    `json:"weekday,omitempty" validate:"omitempty,min=0,max=6"`
	Note       *string `json:"note,omitempty"`
	Confirmed  bool    `json:"confirmed"`
	RequestKey string  `json:"requestKey,omitempty" validate:"max=128"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ApplyBatchRequest) ToUseCaseRequest() *closedDays.ApplyBatchRequest {
	return &closedDays.ApplyBatchRequest{
		Mode:       domain.ClosedDayMode(r.Mode),
		Start:      datekey.DateKey(r.Start),
		End:        datekey.DateKey(r.End),
		Weekday:    r.Weekday,
		Note:       r.Note,
		RequestKey: r.RequestKey,
	}
}
