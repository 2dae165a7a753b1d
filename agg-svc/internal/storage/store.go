package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

// RecordItemSales bumps the lifetime order counter on the menu item row and
// its popularity scores in Redis: a daily sorted set kept for a week plus an
// all-time leaderboard.
func (s *Store) RecordItemSales(menuItemID int64, quantity int) error {
	_, err := s.db.Exec(`
		UPDATE menu_items
		SET times_ordered = times_ordered + $2
		WHERE id = $1
	`, menuItemID, quantity)
	if err != nil {
		return err
	}

	member := strconv.FormatInt(menuItemID, 10)
	today := time.Now().Format("2006-01-02")

	dailyKey := fmt.Sprintf("analytics:daily:%s:items", today)
	s.rdb.ZIncrBy(s.ctx, dailyKey, float64(quantity), member)
	s.rdb.Expire(s.ctx, dailyKey, 7*24*time.Hour)

	s.rdb.ZIncrBy(s.ctx, "analytics:alltime:items", float64(quantity), member)
	return nil
}

// RecordRevenue adds an order's total to today's revenue counter.
func (s *Store) RecordRevenue(total int64) error {
	today := time.Now().Format("2006-01-02")
	key := fmt.Sprintf("analytics:daily:%s:revenue", today)
	if err := s.rdb.IncrBy(s.ctx, key, total).Err(); err != nil {
		return err
	}
	s.rdb.Expire(s.ctx, key, 7*24*time.Hour)
	return nil
}
