package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kitchen-service/internal/cache"
	"kitchen-service/internal/domain"
	"kitchen-service/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Period selects the dashboard window.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodDaily, nil
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return p, nil
	}
	return "", &domain.ValidationError{Field: "period", Message: fmt.Sprintf("invalid period %q", s)}
}

// window returns the start of the period and the trend bucket size.
func (p Period) window(now time.Time) (time.Time, time.Duration, int) {
	switch p {
	case PeriodWeekly:
		start := now.Truncate(24*time.Hour).AddDate(0, 0, -6)
		return start, 24 * time.Hour, 7
	case PeriodMonthly:
		start := now.Truncate(24*time.Hour).AddDate(0, 0, -29)
		return start, 24 * time.Hour, 30
	default:
		return now.Truncate(time.Hour).Add(-23 * time.Hour), time.Hour, 24
	}
}

type TrendPoint struct {
	Start   time.Time       `json:"start"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DashboardStats is a read-only summary; it plays no part in stock invariants.
type DashboardStats struct {
	Period             Period          `json:"period"`
	From               time.Time       `json:"from"`
	To                 time.Time       `json:"to"`
	OrdersByStatus     map[string]int  `json:"ordersByStatus"`
	OrdersInPeriod     int             `json:"ordersInPeriod"`
	RevenueInPeriod    decimal.Decimal `json:"revenueInPeriod"`
	Trend              []TrendPoint    `json:"trend"`
	LowStockItems      int             `json:"lowStockItems"`
	FinishedGoodsUnits decimal.Decimal `json:"finishedGoodsUnits"`
	GeneratedAt        time.Time       `json:"generatedAt"`
}

type DashboardService struct {
	orders    repository.OrderRepository
	inventory repository.InventoryRepository
	goods     repository.FinishedGoodsRepository
	cache     cache.Cache
	cacheTTL  time.Duration
	logger    *zap.Logger
	now       Clock
}

func NewDashboardService(
	orders repository.OrderRepository,
	inventory repository.InventoryRepository,
	goods repository.FinishedGoodsRepository,
	c cache.Cache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		orders:    orders,
		inventory: inventory,
		goods:     goods,
		cache:     c,
		cacheTTL:  cacheTTL,
		logger:    logger,
		now:       utcNow,
	}
}

func dashboardKey(p Period) string {
	return cache.DashboardPrefix + "stats:" + string(p)
}

// Stats returns the cached summary for the period, computing it on a miss.
// Revenue counts every order that is not Cancelled.
func (s *DashboardService) Stats(ctx context.Context, period Period) (*DashboardStats, error) {
	key := dashboardKey(period)
	if s.cache != nil {
		var cached DashboardStats
		err := cache.GetJSON(ctx, s.cache, key, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("Dashboard cache read failed", zap.Error(err))
		}
	}

	stats, err := s.compute(ctx, period)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := cache.SetJSON(ctx, s.cache, key, stats, s.cacheTTL); err != nil {
			s.logger.Warn("Dashboard cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}

func (s *DashboardService) compute(ctx context.Context, period Period) (*DashboardStats, error) {
	now := s.now()
	from, bucket, buckets := period.window(now)

	all, err := s.orders.List(ctx, repository.OrderFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	stats := &DashboardStats{
		Period:             period,
		From:               from,
		To:                 now,
		OrdersByStatus:     make(map[string]int, len(domain.AllStatuses)),
		RevenueInPeriod:    decimal.Zero,
		Trend:              make([]TrendPoint, buckets),
		FinishedGoodsUnits: decimal.Zero,
		GeneratedAt:        now,
	}
	for _, status := range domain.AllStatuses {
		stats.OrdersByStatus[status.String()] = 0
	}
	for i := range stats.Trend {
		stats.Trend[i] = TrendPoint{Start: from.Add(time.Duration(i) * bucket), Revenue: decimal.Zero}
	}

	for _, order := range all {
		stats.OrdersByStatus[order.Status.String()]++
		if order.OrderDate.Before(from) || order.OrderDate.After(now) {
			continue
		}
		stats.OrdersInPeriod++
		i := int(order.OrderDate.Sub(from) / bucket)
		if i >= buckets {
			i = buckets - 1
		}
		stats.Trend[i].Orders++
		if order.Status != domain.StatusCancelled {
			stats.RevenueInPeriod = stats.RevenueInPeriod.Add(order.ItemsTotal)
			stats.Trend[i].Revenue = stats.Trend[i].Revenue.Add(order.ItemsTotal)
		}
	}

	lowStock, err := s.inventory.List(ctx, repository.InventoryFilter{LowStockOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}
	stats.LowStockItems = len(lowStock)

	goods, err := s.goods.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list finished goods: %w", err)
	}
	for _, fg := range goods {
		stats.FinishedGoodsUnits = stats.FinishedGoodsUnits.Add(fg.CurrentStock)
	}

	s.logger.Debug("Dashboard stats computed",
		zap.String("period", string(period)),
		zap.Int("orders", stats.OrdersInPeriod),
	)
	return stats, nil
}
