package service

import (
	"context"
	"fmt"
	"time"

	"github.com/atelierhq/atelier/internal/core/repository"
)

const trendMonths = 6

type MonthRevenue struct {
	Month   string  `json:"month"` // YYYY-MM
	Revenue float64 `json:"revenue"`
}

type Overview struct {
	ClientCount      int            `json:"clientCount"`
	ServicesThisWeek int            `json:"servicesThisWeek"`
	RevenueToday     float64        `json:"revenueToday"`
	RevenueThisMonth float64        `json:"revenueThisMonth"`
	RevenueTrend     []MonthRevenue `json:"revenueTrend"`
}

// DashboardService computes the admin overview from the client and service
// collections. Aggregation happens in memory; collections are single-operator
// scale.
type DashboardService struct {
	clientRepo  repository.ClientRepository
	serviceRepo repository.ServiceRepository
	now         func() time.Time
}

func NewDashboardService(clientRepo repository.ClientRepository, serviceRepo repository.ServiceRepository) *DashboardService {
	return &DashboardService{
		clientRepo:  clientRepo,
		serviceRepo: serviceRepo,
		now:         time.Now,
	}
}

func (s *DashboardService) Overview(ctx context.Context) (*Overview, error) {
	clients, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}

	services, err := s.serviceRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := startOfWeek(today)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	overview := &Overview{
		ClientCount:  len(clients),
		RevenueTrend: make([]MonthRevenue, trendMonths),
	}

	trendIndex := map[string]int{}
	for i := 0; i < trendMonths; i++ {
		m := monthStart.AddDate(0, i-trendMonths+1, 0)
		key := m.Format("2006-01")
		overview.RevenueTrend[i] = MonthRevenue{Month: key}
		trendIndex[key] = i
	}

	for _, svc := range services {
		date := svc.Date.In(now.Location())

		if !date.Before(today) && date.Before(today.AddDate(0, 0, 1)) {
			overview.RevenueToday += svc.Price
		}
		if !date.Before(weekStart) && date.Before(weekStart.AddDate(0, 0, 7)) {
			overview.ServicesThisWeek++
		}
		if !date.Before(monthStart) && date.Before(monthStart.AddDate(0, 1, 0)) {
			overview.RevenueThisMonth += svc.Price
		}
		if i, ok := trendIndex[date.Format("2006-01")]; ok {
			overview.RevenueTrend[i].Revenue += svc.Price
		}
	}

	return overview, nil
}

// startOfWeek returns the Monday of the week containing day.
func startOfWeek(day time.Time) time.Time {
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, 1-weekday)
}
