package domain

import "time"

const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Statuses in kitchen workflow order. The detail panel may select any of
// them directly, including backward moves; the store accepts all five.
var Statuses = []string{StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled}

func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

var Categories = []string{"coffee", "tea", "frappe", "snack", "dessert"}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// MaxImageBytes caps the embedded base64 image text on a menu item.
const MaxImageBytes = 256 * 1024

type MenuItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       int64     `json:"price"` // whole MMK
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderItem rows are copies taken at order time; menu edits never reach
// them, so historical orders keep the prices they were sold at.
type OrderItem struct {
	MenuItemID   int64             `json:"menu_item_id"`
	Name         string            `json:"name"`
	Category     string            `json:"category"`
	Price        int64             `json:"price"`
	Quantity     int               `json:"quantity"`
	Instructions string            `json:"instructions,omitempty"`
	Options      map[string]string `json:"options,omitempty"`
}

type Order struct {
	ID           int64       `json:"id"`
	CustomerID   string      `json:"customer_id,omitempty"`
	CustomerName string      `json:"customer_name"`
	TableNumber  string      `json:"table_number"`
	Items        []OrderItem `json:"items"`
	Total        int64       `json:"total"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Alert is a dashboard-side record of a new-order chime.
type Alert struct {
	OrderID   int64     `json:"order_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type DailyReport struct {
	Date       string  `json:"date"`
	OrderCount int     `json:"order_count"`
	TotalSales int64   `json:"total_sales"`
	Orders     []Order `json:"orders"`
}

type Receipt struct {
	ShopName    string      `json:"shop_name"`
	OrderID     int64       `json:"order_id"`
	TableNumber string      `json:"table_number"`
	Customer    string      `json:"customer"`
	Items       []OrderItem `json:"items"`
	Total       int64       `json:"total"`
	Currency    string      `json:"currency"`
	IssuedAt    time.Time   `json:"issued_at"`
	QRCodeURL   string      `json:"qr_code_url"`
}
