package domain

import "time"

// OrderPlacedMessage mirrors the shape kiosk-svc writes to the "orders"
// topic. Each service keeps its own copy of the contract.
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
