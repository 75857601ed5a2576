package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerID int64   `json:"customerId" validate:"required,gt=0"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string  `json:"time" validate:"required"` // "14:30"
	Service    string  `json:"service" validate:"required"`
	Duration   string  `json:"duration,omitempty"`
	Memo       *string `json:"memo,omitempty"`
	Status     string  `json:"status,omitempty" validate:"omitempty,oneof=confirmed completed"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID           int64   `json:"id"`
	CustomerID   int64   `json:"customerId"`
	CustomerName string  `json:"customerName"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Service      string  `json:"service"`
	Duration     string  `json:"duration"`
	Memo         *string `json:"memo,omitempty"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := datekey.Parse(r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerID: r.CustomerID,
		Date:       date,
		Time:       startTime,
		Service:    r.Service,
		Duration:   r.Duration,
		Memo:       r.Memo,
		Status:     domain.AppointmentStatus(r.Status),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           resp.ID,
		CustomerID:   resp.CustomerID,
		CustomerName: resp.CustomerName,
		Date:         resp.Date.String(),
		Time:         resp.Time.String(),
		Service:      resp.Service,
		Duration:     resp.Duration,
		Memo:         resp.Memo,
		Status:       string(resp.Status),
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
