package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"coffeehouse-pos/admin-svc/internal/domain"
	"coffeehouse-pos/admin-svc/internal/eventbus"
)

var ErrBadDate = errors.New("date must be YYYY-MM-DD")

type ReportService struct {
	repo OrderRepository
	bus  EventPublisher
}

func NewReportService(repo OrderRepository, bus EventPublisher) *ReportService {
	return &ReportService{repo: repo, bus: bus}
}

// dayWindow maps a YYYY-MM-DD string to the local-time half-open interval
// [00:00 that day, 00:00 next day).
func dayWindow(date string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, ErrBadDate
	}
	return start, start.AddDate(0, 0, 1), nil
}

func (s *ReportService) Daily(date string) (*domain.DailyReport, error) {
	start, end, err := dayWindow(date)
	if err != nil {
		return nil, err
	}

	orders, err := s.repo.ListOrdersBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders for %s: %w", date, err)
	}

	report := &domain.DailyReport{Date: date, Orders: orders}
	for _, o := range orders {
		report.OrderCount++
		report.TotalSales += o.Total
	}
	return report, nil
}

// ClearDaily deletes every order created on the given local date and returns
// how many rows went. Other pages learn about the purge via GENERIC_UPDATE.
func (s *ReportService) ClearDaily(ctx context.Context, date string) (int64, error) {
	start, end, err := dayWindow(date)
	if err != nil {
		return 0, err
	}

	deleted, err := s.repo.DeleteOrdersBetween(start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to clear orders for %s: %w", date, err)
	}
	if deleted > 0 {
		if err := s.bus.Publish(ctx, eventbus.EventGenericUpdate, nil); err != nil {
			log.Printf("reports: GENERIC_UPDATE broadcast failed after clearing %s: %v", date, err)
		}
	}
	return deleted, nil
}
