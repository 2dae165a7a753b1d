package service

import (
	"coffeehouse-pos/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	TopToday(limit int) ([]domain.ItemSales, error)
	TopAllTime(limit int) ([]domain.ItemSales, error)
	RevenueByDate(date string) (*domain.RevenueReport, error)
	CategorySales() (map[string]int64, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
