package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модели

// CreateCustomerRequest запрос на создание клиента
type CreateCustomerRequest struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Memo  *string `json:"memo,omitempty"`
}

// UpdateMemoRequest запрос на изменение заметки (null или пустая строка очищает её)
type UpdateMemoRequest struct {
	Memo *string `json:"memo"`
}

// Response модели

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Memo      *string   `json:"memo,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CustomerListResponse ответ со списком клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Total     int                `json:"total"`
}

// VisitResponse запись из истории клиента
type VisitResponse struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"` // "2025-03-10"
	Time     string  `json:"time"` // "14:30"
	Service  string  `json:"service"`
	Duration string  `json:"duration"`
	Memo     *string `json:"memo,omitempty"`
	Status   string  `json:"status"`
}

// CustomerDetailResponse клиент вместе с историей записей, новые сверху
type CustomerDetailResponse struct {
	CustomerResponse
	History []VisitResponse `json:"history"`
}

// Методы конвертации

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Memo:      c.Memo,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainCustomerList конвертирует список domain моделей в DTO
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{
		Customers: make([]CustomerResponse, 0, len(customers)),
	}
	for _, c := range customers {
		if dto := FromDomainCustomer(c); dto != nil {
			resp.Customers = append(resp.Customers, *dto)
		}
	}
	resp.Total = len(resp.Customers)
	return resp
}

// FromDomainVisits конвертирует историю записей
func FromDomainVisits(appointments []*domain.Appointment) []VisitResponse {
	visits := make([]VisitResponse, 0, len(appointments))
	for _, a := range appointments {
		if a == nil {
			continue
		}
		visits = append(visits, VisitResponse{
			ID:       a.ID,
			Date:     a.Date.String(),
			Time:     a.Time.String(),
			Service:  a.Service,
			Duration: a.Duration,
			Memo:     a.Memo,
			Status:   string(a.Status),
		})
	}
	return visits
}
