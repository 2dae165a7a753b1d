package service

import (
	"context"
	"time"

	"coffeehouse-pos/admin-svc/internal/domain"
	"coffeehouse-pos/admin-svc/internal/eventbus"
)

type MenuServiceInterface interface {
	List() ([]domain.MenuItem, error)
	Add(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, item domain.MenuItem) error
	Delete(ctx context.Context, id int64) error
}

type OrderServiceInterface interface {
	List() ([]domain.Order, error)
	Get(id int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
	Receipt(id int64) (*domain.Receipt, error)
	QRCode(id int64) ([]byte, error)
}

type ReportServiceInterface interface {
	Daily(date string) (*domain.DailyReport, error)
	ClearDaily(ctx context.Context, date string) (int64, error)
}

type DashboardInterface interface {
	Snapshot() ([]domain.Order, time.Time)
	Alerts() []domain.Alert
}

type MenuRepository interface {
	ListMenu() ([]domain.MenuItem, error)
	InsertMenuItem(item *domain.MenuItem) error
	UpdateMenuItem(item domain.MenuItem) (bool, error)
	DeleteMenuItem(id int64) (bool, error)
}

type OrderRepository interface {
	ListOrders() ([]domain.Order, error)
	GetOrder(id int64) (*domain.Order, error)
	UpdateOrderStatus(id int64, status string) (bool, error)
	ListOrdersBetween(start, end time.Time) ([]domain.Order, error)
	DeleteOrdersBetween(start, end time.Time) (int64, error)
	GetQRCode(orderID int64) ([]byte, error)
	SaveQRCode(orderID int64, png []byte) error
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data any) error
}

type BusSubscriber interface {
	Subscribe(ctx context.Context) (<-chan eventbus.Event, func())
}

var (
	_ MenuServiceInterface   = (*MenuService)(nil)
	_ OrderServiceInterface  = (*OrderService)(nil)
	_ ReportServiceInterface = (*ReportService)(nil)
	_ DashboardInterface     = (*Dashboard)(nil)
)
