package tests

import (
	"errors"
	"testing"

	"coffeehouse-pos/agg-svc/internal/domain"
	"coffeehouse-pos/agg-svc/internal/mocks"
	"coffeehouse-pos/agg-svc/internal/service"
)

func TestConsumer_ProcessOrder(t *testing.T) {
	tests := []struct {
		name           string
		inputMessage   domain.OrderPlacedMessage
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name: "success",
			inputMessage: domain.OrderPlacedMessage{
				Type:    "order.placed",
				OrderID: 100,
				Total:   11000,
				Items: []domain.OrderItemMessage{
					{MenuItemID: 1, Name: "Croissant", Quantity: 2, Price: 3500},
					{MenuItemID: 2, Name: "Cappuccino", Quantity: 1, Price: 4000},
				},
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordItemSales", int64(1), 2).Return(nil)
				mockStore.On("RecordItemSales", int64(2), 1).Return(nil)
				mockStore.On("RecordRevenue", int64(11000)).Return(nil)
			},
		},
		{
			name: "RecordItemSales error stops processing",
			inputMessage: domain.OrderPlacedMessage{
				Type:    "order.placed",
				OrderID: 100,
				Total:   3500,
				Items: []domain.OrderItemMessage{
					{MenuItemID: 1, Name: "Croissant", Quantity: 1, Price: 3500},
				},
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordItemSales", int64(1), 1).Return(errors.New("db connection failed"))
			},
		},
		{
			name: "RecordRevenue error",
			inputMessage: domain.OrderPlacedMessage{
				Type:    "order.placed",
				OrderID: 100,
				Total:   3500,
				Items: []domain.OrderItemMessage{
					{MenuItemID: 1, Name: "Croissant", Quantity: 1, Price: 3500},
				},
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordItemSales", int64(1), 1).Return(nil)
				mockStore.On("RecordRevenue", int64(3500)).Return(errors.New("redis error"))
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{
				Store: mockStore,
			}

			consumer.ProcessOrder(testCase.inputMessage)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestConsumer_InvalidMessageType(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	consumer := &service.Consumer{
		Store: mockStore,
	}

	message := domain.OrderPlacedMessage{
		Type:    "unknown_type",
		OrderID: 100,
		Total:   3500,
		Items: []domain.OrderItemMessage{
			{MenuItemID: 1, Name: "Croissant", Quantity: 1, Price: 3500},
		},
	}

	consumer.ProcessOrder(message)
	mockStore.AssertNotCalled(t, "RecordItemSales")
	mockStore.AssertNotCalled(t, "RecordRevenue")
}
