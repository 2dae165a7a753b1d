package tests

import (
	"bytes"
	"context"
	"testing"
	"time"

	"coffeehouse-pos/admin-svc/internal/domain"
	"coffeehouse-pos/admin-svc/internal/eventbus"
	"coffeehouse-pos/admin-svc/internal/mocks"
	"coffeehouse-pos/admin-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name            string
		orderID         int64
		status          string
		prepareMocks    func(repo *mocks.OrderRepository, bus *mocks.EventPublisher)
		expectedUpdated bool
		expectedError   error
	}{
		{
			name:    "success_broadcasts_once",
			orderID: 100,
			status:  domain.StatusReady,
			prepareMocks: func(repo *mocks.OrderRepository, bus *mocks.EventPublisher) {
				repo.On("UpdateOrderStatus", int64(100), domain.StatusReady).Return(true, nil).Once()
				bus.On("Publish", mock.Anything, eventbus.EventStatusUpdate,
					eventbus.StatusUpdate{OrderID: 100, Status: domain.StatusReady}).Return(nil).Once()
			},
			expectedUpdated: true,
		},
		{
			name:    "backwards_transition_is_allowed",
			orderID: 100,
			status:  domain.StatusPending,
			prepareMocks: func(repo *mocks.OrderRepository, bus *mocks.EventPublisher) {
				repo.On("UpdateOrderStatus", int64(100), domain.StatusPending).Return(true, nil).Once()
				bus.On("Publish", mock.Anything, eventbus.EventStatusUpdate,
					eventbus.StatusUpdate{OrderID: 100, Status: domain.StatusPending}).Return(nil).Once()
			},
			expectedUpdated: true,
		},
		{
			name:    "unknown_order_is_silent",
			orderID: 404,
			status:  domain.StatusReady,
			prepareMocks: func(repo *mocks.OrderRepository, bus *mocks.EventPublisher) {
				repo.On("UpdateOrderStatus", int64(404), domain.StatusReady).Return(false, nil).Once()
			},
		},
		{
			name:          "invalid_status",
			orderID:       100,
			status:        "vaporized",
			prepareMocks:  func(repo *mocks.OrderRepository, bus *mocks.EventPublisher) {},
			expectedError: service.ErrInvalidStatus,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			bus := mocks.NewEventPublisher(t)
			testCase.prepareMocks(repo, bus)

			svc := service.NewOrderService(repo, bus, "Golden Bean", "http://localhost:8081")
			updated, err := svc.UpdateStatus(ctx, testCase.orderID, testCase.status)

			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expectedUpdated, updated)
			if !testCase.expectedUpdated {
				bus.AssertNotCalled(t, "Publish")
			}
		})
	}
}

func TestOrderService_Receipt(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	bus := mocks.NewEventPublisher(t)

	created := time.Date(2026, 9, 1, 10, 30, 0, 0, time.Local)
	order := &domain.Order{
		ID:           100,
		CustomerName: "Aye Chan",
		TableNumber:  "T4",
		Total:        11000,
		Status:       domain.StatusCompleted,
		CreatedAt:    created,
		Items: []domain.OrderItem{
			{MenuItemID: 1, Name: "Croissant", Price: 3500, Quantity: 2},
			{MenuItemID: 2, Name: "Cappuccino", Price: 4000, Quantity: 1},
		},
	}
	repo.On("GetOrder", int64(100)).Return(order, nil).Once()

	svc := service.NewOrderService(repo, bus, "Golden Bean", "http://localhost:8081")
	receipt, err := svc.Receipt(100)

	assert.NoError(t, err)
	assert.Equal(t, "Golden Bean", receipt.ShopName)
	assert.Equal(t, "MMK", receipt.Currency)
	assert.Equal(t, int64(11000), receipt.Total)
	assert.Equal(t, created, receipt.IssuedAt)
	assert.Len(t, receipt.Items, 2)
}

func TestOrderService_Receipt_NotFound(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	repo.On("GetOrder", int64(404)).Return(nil, nil).Once()

	svc := service.NewOrderService(repo, mocks.NewEventPublisher(t), "Golden Bean", "http://localhost:8081")
	_, err := svc.Receipt(404)
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
}

func TestOrderService_QRCode(t *testing.T) {
	order := &domain.Order{ID: 100, Status: domain.StatusPending}

	t.Run("generates_and_caches", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		repo.On("GetOrder", int64(100)).Return(order, nil).Once()
		repo.On("GetQRCode", int64(100)).Return(nil, nil).Once()
		repo.On("SaveQRCode", int64(100), mock.Anything).Return(nil).Once()

		svc := service.NewOrderService(repo, mocks.NewEventPublisher(t), "Golden Bean", "http://localhost:8081")
		png, err := svc.QRCode(100)

		assert.NoError(t, err)
		assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
	})

	t.Run("serves_cached_png", func(t *testing.T) {
		cached := []byte("\x89PNGcached")
		repo := mocks.NewOrderRepository(t)
		repo.On("GetOrder", int64(100)).Return(order, nil).Once()
		repo.On("GetQRCode", int64(100)).Return(cached, nil).Once()

		svc := service.NewOrderService(repo, mocks.NewEventPublisher(t), "Golden Bean", "http://localhost:8081")
		png, err := svc.QRCode(100)

		assert.NoError(t, err)
		assert.Equal(t, cached, png)
		repo.AssertNotCalled(t, "SaveQRCode")
	})
}
