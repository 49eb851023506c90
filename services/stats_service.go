package services

import (
	"time"

	"github.com/roshanx0/restaurant-ordering-saas/repository"
)

type StatsService struct {
	RestRepo  *repository.RestaurantRepository
	RegRepo   *repository.RegistrationRepository
	OrderRepo *repository.OrderRepository
}

func NewStatsService(
	restRepo *repository.RestaurantRepository,
	regRepo *repository.RegistrationRepository,
	orderRepo *repository.OrderRepository,
) *StatsService {
	return &StatsService{RestRepo: restRepo, RegRepo: regRepo, OrderRepo: orderRepo}
}

// PlatformStats backs the admin dashboard header.
type PlatformStats struct {
	ActiveRestaurants int64   `json:"activeRestaurants"`
	PendingRequests   int64   `json:"pendingRequests"`
	TotalOrders       int64   `json:"totalOrders"`
	TodayRevenue      float64 `json:"todayRevenue"`
}

func (s *StatsService) Platform() (*PlatformStats, error) {
	var (
		stats PlatformStats
		err   error
	)
	if stats.ActiveRestaurants, err = s.RestRepo.CountActive(); err != nil {
		return nil, err
	}
	if stats.PendingRequests, err = s.RegRepo.CountPending(); err != nil {
		return nil, err
	}
	if stats.TotalOrders, err = s.OrderRepo.CountAll(); err != nil {
		return nil, err
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if stats.TodayRevenue, err = s.OrderRepo.RevenueSince(today); err != nil {
		return nil, err
	}
	return &stats, nil
}
