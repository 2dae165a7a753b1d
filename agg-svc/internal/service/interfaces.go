package service

import (
	"context"

	"coffeehouse-pos/agg-svc/internal/domain"
	"coffeehouse-pos/agg-svc/internal/storage"
)

type StoreInterface interface {
	RecordItemSales(menuItemID int64, quantity int) error
	RecordRevenue(total int64) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(msg domain.OrderPlacedMessage)
}

var _ StoreInterface = (*storage.Store)(nil)
