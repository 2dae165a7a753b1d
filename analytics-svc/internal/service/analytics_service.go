package service

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"coffeehouse-pos/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// AnalyticsService answers popularity and revenue queries. Redis counters
// maintained by agg-svc are the fast path; when a key is missing or empty the
// same number is derived from order history in Postgres.
type AnalyticsService struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewAnalyticsService(db *sql.DB, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func (s *AnalyticsService) TopToday(limit int) ([]domain.ItemSales, error) {
	today := time.Now().Format("2006-01-02")
	key := fmt.Sprintf("analytics:daily:%s:items", today)

	result, err := s.rdb.ZRevRangeWithScores(s.ctx, key, 0, int64(limit-1)).Result()
	if err != nil || len(result) == 0 {
		return s.topTodayFromDB(limit)
	}
	return s.resolveMembers(result), nil
}

func (s *AnalyticsService) topTodayFromDB(limit int) ([]domain.ItemSales, error) {
	rows, err := s.db.Query(`
		SELECT m.id, m.name, m.category, SUM(oi.quantity) as score
		FROM menu_items m
		JOIN order_items oi ON m.id = oi.menu_item_id
		JOIN orders o ON oi.order_id = o.id
		WHERE o.created_at::date = CURRENT_DATE
		GROUP BY m.id, m.name, m.category
		ORDER BY score DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ItemSales
	for rows.Next() {
		var it domain.ItemSales
		if err := rows.Scan(&it.MenuItemID, &it.Name, &it.Category, &it.Score); err != nil {
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

func (s *AnalyticsService) TopAllTime(limit int) ([]domain.ItemSales, error) {
	result, err := s.rdb.ZRevRangeWithScores(s.ctx, "analytics:alltime:items", 0, int64(limit-1)).Result()
	if err != nil || len(result) == 0 {
		return s.topAllTimeFromDB(limit)
	}
	return s.resolveMembers(result), nil
}

func (s *AnalyticsService) topAllTimeFromDB(limit int) ([]domain.ItemSales, error) {
	rows, err := s.db.Query(`
		SELECT id, name, category, times_ordered as score
		FROM menu_items
		WHERE times_ordered > 0
		ORDER BY times_ordered DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return []domain.ItemSales{}, nil
	}
	defer rows.Close()

	var items []domain.ItemSales
	for rows.Next() {
		var it domain.ItemSales
		rows.Scan(&it.MenuItemID, &it.Name, &it.Category, &it.Score)
		items = append(items, it)
	}
	return items, nil
}

// resolveMembers joins sorted-set members back to menu item rows. Items
// deleted from the menu since their sales were counted are skipped.
func (s *AnalyticsService) resolveMembers(members []redis.Z) []domain.ItemSales {
	var items []domain.ItemSales
	for _, member := range members {
		id, _ := strconv.ParseInt(member.Member.(string), 10, 64)
		var name, category string
		if err := s.db.QueryRow("SELECT name, category FROM menu_items WHERE id = $1", id).Scan(&name, &category); err != nil {
			continue
		}
		items = append(items, domain.ItemSales{
			MenuItemID: id,
			Name:       name,
			Category:   category,
			Score:      member.Score,
		})
	}
	return items
}

func (s *AnalyticsService) RevenueByDate(date string) (*domain.RevenueReport, error) {
	report := &domain.RevenueReport{Date: date}

	key := fmt.Sprintf("analytics:daily:%s:revenue", date)
	if revenue, err := s.rdb.Get(s.ctx, key).Int64(); err == nil {
		report.Revenue = revenue
	} else {
		if err := s.db.QueryRow(`
			SELECT COALESCE(SUM(total), 0)
			FROM orders
			WHERE created_at::date = $1::date
		`, date).Scan(&report.Revenue); err != nil {
			return nil, err
		}
	}

	if err := s.db.QueryRow(`
		SELECT COUNT(*)
		FROM orders
		WHERE created_at::date = $1::date
	`, date).Scan(&report.OrderCount); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *AnalyticsService) CategorySales() (map[string]int64, error) {
	sales := make(map[string]int64)
	for _, c := range []string{"coffee", "tea", "frappe", "snack", "dessert"} {
		sales[c] = 0
	}

	rows, err := s.db.Query(`
		SELECT category, SUM(quantity) as sold
		FROM order_items
		GROUP BY category
	`)
	if err != nil {
		return sales, nil
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var sold int64
		rows.Scan(&category, &sold)
		sales[category] = sold
	}
	return sales, nil
}
