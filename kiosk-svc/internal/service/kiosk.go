package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"coffeehouse-pos/kiosk-svc/internal/domain"
	"coffeehouse-pos/kiosk-svc/internal/eventbus"
)

var (
	ErrDuplicatePhone     = errors.New("phone number is already registered")
	ErrInvalidCredentials = errors.New("phone or password does not match")
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyOrder         = errors.New("order needs at least one item")
	ErrUnknownMenuItem    = errors.New("menu item does not exist")
)

type CartLine struct {
	MenuItemID   int64             `json:"menu_item_id"`
	Quantity     int               `json:"quantity"`
	Instructions string            `json:"instructions"`
	CartID       string            `json:"cart_id"`
	Options      map[string]string `json:"options"`
}

type PlaceOrderRequest struct {
	CustomerName string     `json:"customer_name"`
	CustomerID   string     `json:"customer_id"`
	TableNumber  string     `json:"table_number"`
	Items        []CartLine `json:"items"`
}

type KioskService struct {
	menu      MenuRepository
	customers CustomerRepository
	orders    OrderRepository
	bus       EventPublisher
	feed      OrderFeed
}

func NewKioskService(menu MenuRepository, customers CustomerRepository, orders OrderRepository, bus EventPublisher, feed OrderFeed) *KioskService {
	return &KioskService{menu: menu, customers: customers, orders: orders, bus: bus, feed: feed}
}

func (s *KioskService) Menu() ([]domain.MenuItem, error) {
	return s.menu.ListMenu()
}

// Register assigns a fresh prefixed id and persists the customer. Phone
// uniqueness is checked here, at registration time only; a concurrent
// registration race falls through to the customers.phone unique index.
func (s *KioskService) Register(ctx context.Context, customer *domain.Customer) error {
	if customer.Name == "" || customer.Phone == "" {
		return errors.New("name and phone are required")
	}

	taken, err := s.customers.PhoneExists(customer.Phone)
	if err != nil {
		return fmt.Errorf("failed to check phone: %w", err)
	}
	if taken {
		return ErrDuplicatePhone
	}

	customer.ID = fmt.Sprintf("CUST-%d", time.Now().UnixMilli())
	if err := s.customers.InsertCustomer(customer); err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

func (s *KioskService) Login(ctx context.Context, phone, password string) (*domain.Customer, error) {
	customer, err := s.customers.FindCustomer(phone, password)
	if err != nil {
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}
	if customer == nil {
		return nil, ErrInvalidCredentials
	}
	return customer, nil
}

// PlaceOrder prices the cart against the current menu, persists the order
// with item copies, then broadcasts NEW_ORDER and feeds the sales topic.
// The order id is derived from the submission time; rapid concurrent
// submissions can collide (see DESIGN.md).
func (s *KioskService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*domain.Order, error) {
	if req.CustomerName == "" {
		return nil, errors.New("customer name is required")
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	now := time.Now()
	order := &domain.Order{
		ID:           now.UnixMilli(),
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		TableNumber:  req.TableNumber,
		Status:       domain.StatusPending,
		CreatedAt:    now,
	}

	for _, line := range req.Items {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("invalid quantity for menu item %d", line.MenuItemID)
		}
		item, err := s.menu.GetMenuItem(line.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("failed to load menu item: %w", err)
		}
		if item == nil {
			return nil, ErrUnknownMenuItem
		}
		price, err := domain.AdjustedUnitPrice(item.Price, line.Options)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, domain.CartItem{
			MenuItemID:   item.ID,
			Name:         item.Name,
			Category:     item.Category,
			Price:        price,
			Quantity:     line.Quantity,
			Instructions: line.Instructions,
			Options:      line.Options,
		})
		order.Total += price * int64(line.Quantity)
	}

	if err := s.orders.InsertOrder(order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	// Write happens before publish; both fan-outs are best-effort.
	if err := s.bus.Publish(ctx, eventbus.EventNewOrder, order); err != nil {
		log.Printf("kiosk: NEW_ORDER broadcast failed for order %d: %v", order.ID, err)
	}
	if s.feed != nil {
		msg := domain.OrderPlacedMessage{
			Type:      "order.placed",
			OrderID:   order.ID,
			Total:     order.Total,
			Timestamp: order.CreatedAt,
		}
		for _, item := range order.Items {
			msg.Items = append(msg.Items, domain.OrderItemMessage{
				MenuItemID: item.MenuItemID,
				Name:       item.Name,
				Quantity:   item.Quantity,
				Price:      item.Price,
			})
		}
		if err := s.feed.PublishOrderPlaced(ctx, msg); err != nil {
			log.Printf("kiosk: order feed publish failed for order %d: %v", order.ID, err)
		}
	}

	return order, nil
}

func (s *KioskService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orders.GetOrder(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
