package service

import (
	"context"

	"coffeehouse-pos/kiosk-svc/internal/domain"
	"coffeehouse-pos/kiosk-svc/internal/eventbus"
)

type KioskServiceInterface interface {
	Menu() ([]domain.MenuItem, error)
	Register(ctx context.Context, customer *domain.Customer) error
	Login(ctx context.Context, phone, password string) (*domain.Customer, error)
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
}

type TrackerInterface interface {
	Track(ctx context.Context, sessionID string, orderID int64) (*domain.Order, error)
	Status(ctx context.Context, sessionID string) (*domain.Order, []domain.Notification, error)
	MarkRead(sessionID string)
	StopTracking(ctx context.Context, sessionID string) error
}

type MenuRepository interface {
	ListMenu() ([]domain.MenuItem, error)
	GetMenuItem(id int64) (*domain.MenuItem, error)
}

type CustomerRepository interface {
	PhoneExists(phone string) (bool, error)
	InsertCustomer(c *domain.Customer) error
	FindCustomer(phone, password string) (*domain.Customer, error)
}

type OrderRepository interface {
	InsertOrder(order *domain.Order) error
	GetOrder(id int64) (*domain.Order, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data any) error
}

type BusSubscriber interface {
	Subscribe(ctx context.Context) (<-chan eventbus.Event, func())
}

type OrderFeed interface {
	PublishOrderPlaced(ctx context.Context, msg domain.OrderPlacedMessage) error
}

type SessionStore interface {
	SaveTracking(ctx context.Context, sessionID string, orderID int64) error
	LoadTracking(ctx context.Context, sessionID string) (int64, bool, error)
	ClearTracking(ctx context.Context, sessionID string) error
}

var (
	_ KioskServiceInterface = (*KioskService)(nil)
	_ TrackerInterface      = (*Tracker)(nil)
)
