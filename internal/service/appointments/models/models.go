package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

// AppointmentResponse запись на день вместе с именем клиента
type AppointmentResponse struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customerId"`
	CustomerName *string   `json:"customerName,omitempty"`
	Date         string    `json:"date"` // "2025-03-10"
	Time         string    `json:"time"` // "14:30"
	Service      string    `json:"service"`
	Duration     string    `json:"duration"`
	Memo         *string   `json:"memo,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DailyAppointmentsResponse записи на день, по времени
type DailyAppointmentsResponse struct {
	Date         string                `json:"date"`
	Closed       bool                  `json:"closed"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// MonthMarkersResponse метки календаря на месяц
type MonthMarkersResponse struct {
	Year             int      `json:"year"`
	Month            int      `json:"month"`
	AppointmentDates []string `json:"appointmentDates"`
	ClosedDates      []string `json:"closedDates"`
}

// ClosedDateResponse выходной день
type ClosedDateResponse struct {
	ID         int64     `json:"id"`
	ClosedDate string    `json:"closedDate"`
	Label      string    `json:"label"` // "2025년 1월 3일"
	Note       *string   `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ClosedDateListResponse выходные дни, новые сверху
type ClosedDateListResponse struct {
	ClosedDates []ClosedDateResponse `json:"closedDates"`
}

// NextAvailableDateResponse первый открытый день
type NextAvailableDateResponse struct {
	From  string `json:"from"`
	Date  string `json:"date"`
	Label string `json:"label"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}
	return &AppointmentResponse{
		ID:           a.ID,
		CustomerID:   a.CustomerID,
		CustomerName: a.CustomerName,
		Date:         a.Date.String(),
		Time:         a.Time.String(),
		Service:      a.Service,
		Duration:     a.Duration,
		Memo:         a.Memo,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		if dto := FromDomainAppointment(a); dto != nil {
			out = append(out, *dto)
		}
	}
	return out
}

// FromDomainClosedDates конвертирует выходные дни
func FromDomainClosedDates(records []*domain.ClosedDateRecord) *ClosedDateListResponse {
	resp := &ClosedDateListResponse{ClosedDates: make([]ClosedDateResponse, 0, len(records))}
	for _, r := range records {
		if r == nil {
			continue
		}
		resp.ClosedDates = append(resp.ClosedDates, ClosedDateResponse{
			ID:         r.ID,
			ClosedDate: r.ClosedDate.String(),
			Label:      r.ClosedDate.Human(),
			Note:       r.Note,
			CreatedAt:  r.CreatedAt,
		})
	}
	return resp
}

// DateStrings конвертирует даты в строки
func DateStrings(dates []datekey.DateKey) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.String())
	}
	return out
}
