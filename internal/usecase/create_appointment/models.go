package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerID int64
	Date       datekey.DateKey
	Time       types.TimeString
	Service    string
	Duration   string // пусто: domain.DefaultDuration
	Memo       *string
	Status     domain.AppointmentStatus // пусто: confirmed; completed для записи в историю
}

// Response созданная запись
type Response struct {
	ID           int64
	CustomerID   int64
	CustomerName string
	Date         datekey.DateKey
	Time         types.TimeString
	Service      string
	Duration     string
	Memo         *string
	Status       domain.AppointmentStatus
	CreatedAt    time.Time
}
