package domain

import "time"

// OrderPlacedMessage is emitted to Kafka for the sales aggregation service.
// agg-svc keeps its own copy of this shape.
type OrderPlacedMessage struct {
	Type      string             `json:"type"`
	OrderID   int64              `json:"order_id"`
	Total     int64              `json:"total"`
	Items     []OrderItemMessage `json:"items"`
	Timestamp time.Time          `json:"timestamp"`
}

type OrderItemMessage struct {
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`
}
