package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"coffeehouse-pos/admin-svc/internal/domain"
	"coffeehouse-pos/admin-svc/internal/eventbus"

	"github.com/skip2/go-qrcode"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("unknown order status")
)

type OrderService struct {
	repo         OrderRepository
	bus          EventPublisher
	shopName     string
	trackBaseURL string
}

func NewOrderService(repo OrderRepository, bus EventPublisher, shopName, trackBaseURL string) *OrderService {
	return &OrderService{repo: repo, bus: bus, shopName: shopName, trackBaseURL: trackBaseURL}
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.repo.ListOrders()
}

func (s *OrderService) Get(id int64) (*domain.Order, error) {
	order, err := s.repo.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus mutates only the status column and broadcasts STATUS_UPDATE.
// Any of the five statuses is accepted in any order; workflow sanity is the
// dashboard's concern. An unknown order id is a no-op: no change, no event,
// and updated=false so the UI can tell.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	if !domain.ValidStatus(status) {
		return false, ErrInvalidStatus
	}

	updated, err := s.repo.UpdateOrderStatus(id, status)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}
	if !updated {
		log.Printf("orders: status update for unknown order %d ignored", id)
		return false, nil
	}

	if err := s.bus.Publish(ctx, eventbus.EventStatusUpdate, eventbus.StatusUpdate{OrderID: id, Status: status}); err != nil {
		log.Printf("orders: STATUS_UPDATE broadcast failed for order %d: %v", id, err)
	}
	return true, nil
}

func (s *OrderService) Receipt(id int64) (*domain.Receipt, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return &domain.Receipt{
		ShopName:    s.shopName,
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		Customer:    order.CustomerName,
		Items:       order.Items,
		Total:       order.Total,
		Currency:    "MMK",
		IssuedAt:    order.CreatedAt,
		QRCodeURL:   fmt.Sprintf("/api/orders/%d/qrcode", order.ID),
	}, nil
}

// QRCode returns the cached PNG, generating and storing it on first use.
func (s *OrderService) QRCode(id int64) ([]byte, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	png, err := s.repo.GetQRCode(order.ID)
	if err != nil {
		return nil, err
	}
	if len(png) > 0 {
		return png, nil
	}

	target := fmt.Sprintf("%s/track?order_id=%d", s.trackBaseURL, order.ID)
	png, err = qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	if err := s.repo.SaveQRCode(order.ID, png); err != nil {
		log.Printf("orders: failed to cache QR code for order %d: %v", order.ID, err)
	}
	return png, nil
}
