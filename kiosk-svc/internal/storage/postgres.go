package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"coffeehouse-pos/kiosk-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema creates the tables the kiosk writes to. Idempotent; safe to
// run on every startup. The menu belongs to admin-svc, which seeds it.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT NOT NULL UNIQUE,
			address TEXT NOT NULL DEFAULT '',
			password TEXT NOT NULL DEFAULT '',
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
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
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

func (r *PostgresRepository) GetMenuItem(id int64) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(`
		SELECT id, name, category, price, COALESCE(image, ''), COALESCE(description, ''), created_at
		FROM menu_items WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.Image, &item.Description, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) PhoneExists(phone string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM customers WHERE phone = $1)", phone).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) InsertCustomer(c *domain.Customer) error {
	return r.DB.QueryRow(`
		INSERT INTO customers (id, name, phone, address, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		c.ID, c.Name, c.Phone, c.Address, c.Password).Scan(&c.CreatedAt)
}

// FindCustomer matches phone and password exactly. A miss returns (nil, nil)
// so callers can tell "no such customer" from a transport failure.
func (r *PostgresRepository) FindCustomer(phone, password string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.DB.QueryRow(`
		SELECT id, name, phone, address, password, created_at
		FROM customers WHERE phone = $1 AND password = $2`, phone, password).
		Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Password, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) InsertOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO orders (id, customer_id, customer_name, table_number, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		order.ID, order.CustomerID, order.CustomerName, order.TableNumber,
		order.Total, order.Status, order.CreatedAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		options := ""
		if len(item.Options) > 0 {
			raw, err := json.Marshal(item.Options)
			if err != nil {
				return err
			}
			options = string(raw)
		}
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, menu_item_id, name, category, price, quantity, instructions, options)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			order.ID, item.MenuItemID, item.Name, item.Category, item.Price,
			item.Quantity, item.Instructions, options); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetOrder returns (nil, nil) when the id is unknown.
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

	rows, err := r.DB.Query(`
		SELECT menu_item_id, name, category, price, quantity, instructions, options
		FROM order_items WHERE order_id = $1
		ORDER BY id ASC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = []domain.CartItem{}
	for rows.Next() {
		var item domain.CartItem
		var options string
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Category, &item.Price,
			&item.Quantity, &item.Instructions, &options); err != nil {
			continue
		}
		if options != "" {
			_ = json.Unmarshal([]byte(options), &item.Options)
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}
