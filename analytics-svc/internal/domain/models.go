package domain

type ItemSales struct {
	MenuItemID int64   `json:"menu_item_id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Score      float64 `json:"score"`
}

type RevenueReport struct {
	Date       string `json:"date"`
	Revenue    int64  `json:"revenue"`
	OrderCount int    `json:"order_count"`
}
