package domain

import (
	"math"
	"sort"

	"github.com/m04kA/SMC-SalonService/pkg/datekey"
)

// ServiceShare сколько раз услуга встречается среди записей месяца
type ServiceShare struct {
	Name       string
	Count      int
	Percentage int
}

// MonthlyStats сводка по записям за месяц
type MonthlyStats struct {
	Year              int
	Month             int
	TodayCount        int
	MonthlyCustomers  int
	TotalAppointments int
	CompletionRate    int
	CancellationRate  int
	ServiceRanking    []ServiceShare
	RecentVisits      []*Appointment
}

// ComputeMonthlyStats агрегирует записи одного месяца.
// Проценты округляются до целого; пустая услуга учитывается как "기타".
func ComputeMonthlyStats(year, month int, appointments []*Appointment, today datekey.DateKey) *MonthlyStats {
	stats := &MonthlyStats{
		Year:              year,
		Month:             month,
		TotalAppointments: len(appointments),
		ServiceRanking:    make([]ServiceShare, 0),
		RecentVisits:      make([]*Appointment, 0),
	}

	customers := make(map[int64]struct{})
	serviceCounts := make(map[string]int)
	completed, cancelled := 0, 0
	visits := make([]*Appointment, 0)

	for _, a := range appointments {
		if a.Date == today {
			stats.TodayCount++
		}
		customers[a.CustomerID] = struct{}{}

		switch a.Status {
		case StatusCompleted:
			completed++
			if a.CustomerName != nil {
				visits = append(visits, a)
			}
		case StatusCancelled:
			cancelled++
		}

		name := a.Service
		if name == "" {
			name = UnknownServiceName
		}
		serviceCounts[name]++
	}

	stats.MonthlyCustomers = len(customers)
	stats.CompletionRate = percent(completed, len(appointments))
	stats.CancellationRate = percent(cancelled, len(appointments))

	for name, count := range serviceCounts {
		stats.ServiceRanking = append(stats.ServiceRanking, ServiceShare{
			Name:       name,
			Count:      count,
			Percentage: percent(count, len(appointments)),
		})
	}
	// по убыванию количества, при равенстве по имени для стабильного порядка
	sort.Slice(stats.ServiceRanking, func(i, j int) bool {
		if stats.ServiceRanking[i].Count != stats.ServiceRanking[j].Count {
			return stats.ServiceRanking[i].Count > stats.ServiceRanking[j].Count
		}
		return stats.ServiceRanking[i].Name < stats.ServiceRanking[j].Name
	})

	sort.SliceStable(visits, func(i, j int) bool {
		return visits[i].Date.After(visits[j].Date)
	})
	if len(visits) > RecentVisitsLimit {
		visits = visits[:RecentVisitsLimit]
	}
	stats.RecentVisits = visits

	return stats
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
