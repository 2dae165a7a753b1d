package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"coffeehouse-pos/admin-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema creates the menu and order tables. Idempotent; both services
// declare the shared order tables so startup order does not matter.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menu_items (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			price BIGINT NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			times_ordered BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id BIGINT PRIMARY KEY,
			customer_id TEXT NOT NULL DEFAULT '',
			customer_name TEXT NOT NULL,
			table_number TEXT NOT NULL DEFAULT '',
			total BIGINT NOT NULL,
			status TEXT NOT NULL,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id BIGINT NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			price BIGINT NOT NULL,
			quantity INT NOT NULL,
			instructions TEXT NOT NULL DEFAULT '',
			options TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS orders_created_at_idx ON orders (created_at)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// starterMenu is inserted the first time the shop runs with an empty menu.
var starterMenu = []domain.MenuItem{
	{Name: "Espresso", Category: "coffee", Price: 3000, Description: "Double shot"},
	{Name: "Latte", Category: "coffee", Price: 5000},
	{Name: "Cappuccino", Category: "coffee", Price: 4500},
	{Name: "Myanmar Milk Tea", Category: "tea", Price: 2500, Description: "Strong and sweet"},
	{Name: "Green Tea", Category: "tea", Price: 2000},
	{Name: "Mocha Frappe", Category: "frappe", Price: 5500},
	{Name: "Croissant", Category: "snack", Price: 3500},
	{Name: "Cheesecake", Category: "dessert", Price: 6000},
}

// SeedMenuIfEmpty populates the starter menu once. Safe on every startup.
func (r *PostgresRepository) SeedMenuIfEmpty() error {
	var count int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM menu_items").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	base := time.Now().UnixMilli()
	for i, item := range starterMenu {
		if _, err := r.DB.Exec(`
			INSERT INTO menu_items (id, name, category, price, image, description)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			base+int64(i), item.Name, item.Category, item.Price, item.Image, item.Description); err != nil {
			return fmt.Errorf("seed menu: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) ListMenu() ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, category, price, COALESCE(image, ''), COALESCE(description, ''), created_at
		FROM menu_items
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.Image, &item.Description, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) InsertMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (id, name, category, price, image, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		item.ID, item.Name, item.Category, item.Price, item.Image, item.Description).
		Scan(&item.CreatedAt)
}

// UpdateMenuItem replaces the stored item. Unknown ids are a no-op; the
// returned bool says whether a row changed.
func (r *PostgresRepository) UpdateMenuItem(item domain.MenuItem) (bool, error) {
	result, err := r.DB.Exec(`
		UPDATE menu_items
		SET name = $1, category = $2, price = $3, image = $4, description = $5
		WHERE id = $6`,
		item.Name, item.Category, item.Price, item.Image, item.Description, item.ID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func (r *PostgresRepository) DeleteMenuItem(id int64) (bool, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, customer_id, customer_name, table_number, total, status, created_at
		FROM orders
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.CustomerName, &order.TableNumber,
			&order.Total, &order.Status, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.orderItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) GetOrder(id int64) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, customer_id, customer_name, table_number, total, status, created_at
		FROM orders WHERE id = $1`, id).
		Scan(&order.ID, &order.CustomerID, &order.CustomerName, &order.TableNumber,
			&order.Total, &order.Status, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	items, err := r.orderItems(id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *PostgresRepository) orderItems(orderID int64) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT menu_item_id, name, category, price, quantity, instructions, options
		FROM order_items WHERE order_id = $1
		ORDER BY id ASC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		var options string
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Category, &item.Price,
			&item.Quantity, &item.Instructions, &options); err != nil {
			continue
		}
		if options != "" {
			_ = json.Unmarshal([]byte(options), &item.Options)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateOrderStatus touches only the status column. Unknown ids change
// nothing and report false.
func (r *PostgresRepository) UpdateOrderStatus(id int64, status string) (bool, error) {
	result, err := r.DB.Exec("UPDATE orders SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func (r *PostgresRepository) ListOrdersBetween(start, end time.Time) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, customer_id, customer_name, table_number, total, status, created_at
		FROM orders
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.CustomerName, &order.TableNumber,
			&order.Total, &order.Status, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.orderItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) DeleteOrdersBetween(start, end time.Time) (int64, error) {
	result, err := r.DB.Exec(`
		DELETE FROM orders WHERE created_at >= $1 AND created_at < $2`, start, end)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) GetQRCode(orderID int64) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return qr, nil
}

func (r *PostgresRepository) SaveQRCode(orderID int64, png []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", png, orderID)
	return err
}
