package models

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// ServiceShareResponse место услуги в рейтинге
type ServiceShareResponse struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// RecentVisitResponse выполненная запись
type RecentVisitResponse struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Service      string `json:"service"`
}

// MonthlyStatsResponse сводка за месяц
type MonthlyStatsResponse struct {
	Year              int                    `json:"year"`
	Month             int                    `json:"month"`
	TodayCount        int                    `json:"todayCount"`
	MonthlyCustomers  int                    `json:"monthlyCustomers"`
	TotalAppointments int                    `json:"totalAppointments"`
	CompletionRate    int                    `json:"completionRate"`
	CancellationRate  int                    `json:"cancellationRate"`
	ServiceRanking    []ServiceShareResponse `json:"serviceRanking"`
	RecentVisits      []RecentVisitResponse  `json:"recentVisits"`
}

// FromDomainStats конвертирует domain модель в DTO
func FromDomainStats(s *domain.MonthlyStats) *MonthlyStatsResponse {
	if s == nil {
		return nil
	}

	resp := &MonthlyStatsResponse{
		Year:              s.Year,
		Month:             s.Month,
		TodayCount:        s.TodayCount,
		MonthlyCustomers:  s.MonthlyCustomers,
		TotalAppointments: s.TotalAppointments,
		CompletionRate:    s.CompletionRate,
		CancellationRate:  s.CancellationRate,
		ServiceRanking:    make([]ServiceShareResponse, 0, len(s.ServiceRanking)),
		RecentVisits:      make([]RecentVisitResponse, 0, len(s.RecentVisits)),
	}

	for _, share := range s.ServiceRanking {
		resp.ServiceRanking = append(resp.ServiceRanking, ServiceShareResponse(share))
	}

	for _, a := range s.RecentVisits {
		resp.RecentVisits = append(resp.RecentVisits, RecentVisitResponse{
			ID:           a.ID,
			CustomerName: ptr.Value(a.CustomerName),
			Date:         a.Date.String(),
			Time:         a.Time.String(),
			Service:      a.Service,
		})
	}

	return resp
}
