package domain

import "time"

// Order lifecycle. Any of the five values is a legal stored status; the
// kitchen UI is responsible for sensible forward ordering.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Terminal says whether the customer surface treats the status as final
// (the kiosk offers "start a new order" only from these).
func Terminal(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type MenuItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       int64     `json:"price"` // whole MMK
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Password  string    `json:"password,omitempty"` // stored as-is; see DESIGN.md
	CreatedAt time.Time `json:"created_at"`
}

// CartItem is a by-value copy of a menu item at order time plus the order
// line details. Price is the unit price with variation deltas applied, so
// later menu edits never change what was charged.
type CartItem struct {
	MenuItemID   int64             `json:"menu_item_id"`
	Name         string            `json:"name"`
	Category     string            `json:"category"`
	Price        int64             `json:"price"`
	Quantity     int               `json:"quantity"`
	Instructions string            `json:"instructions,omitempty"`
	CartID       string            `json:"cart_id,omitempty"` // client-side dedupe only, not persisted
	Options      map[string]string `json:"options,omitempty"`
}

type Order struct {
	ID           int64      `json:"id"`
	CustomerID   string     `json:"customer_id,omitempty"`
	CustomerName string     `json:"customer_name"`
	TableNumber  string     `json:"table_number"`
	Items        []CartItem `json:"items"`
	Total        int64      `json:"total"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Notification lives only in the kiosk session's memory; a reload loses it.
// Only the tracked order id itself is persisted.
type Notification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	Type      string    `json:"type"` // info | success | warning
	Urgent    bool      `json:"urgent,omitempty"`
}
