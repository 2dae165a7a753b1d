package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"coffeehouse-pos/admin-svc/internal/domain"
	"coffeehouse-pos/admin-svc/internal/eventbus"
)

// Dashboard keeps an in-memory copy of the order list current through two
// paths: NEW_ORDER and STATUS_UPDATE broadcasts trigger an immediate reload,
// and a ticker reloads on PollInterval as a backstop for missed events
// (subscriptions are at-most-once). Each reload replaces the snapshot
// wholesale rather than patching it.
type Dashboard struct {
	repo OrderRepository
	bus  BusSubscriber

	// PollInterval is the backstop reload period; AlertDebounce is the
	// minimum gap between new-order chimes. Both are set before Run.
	PollInterval  time.Duration
	AlertDebounce time.Duration

	mu         sync.RWMutex
	orders     []domain.Order
	refreshed  time.Time
	alerts     []domain.Alert
	lastChime  time.Time
	maxAlerts  int
}

func NewDashboard(repo OrderRepository, bus BusSubscriber) *Dashboard {
	return &Dashboard{
		repo:          repo,
		bus:           bus,
		PollInterval:  10 * time.Second,
		AlertDebounce: 2 * time.Second,
		maxAlerts:     50,
	}
}

// Run blocks until ctx is cancelled. Start it in its own goroutine.
func (d *Dashboard) Run(ctx context.Context) {
	if err := d.reload(); err != nil {
		log.Printf("dashboard: initial load failed: %v", err)
	}

	events, cancel := d.bus.Subscribe(ctx)
	defer cancel()

	ticker := time.NewTicker(d.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			d.handleEvent(ev)
		case <-ticker.C:
			if err := d.reload(); err != nil {
				log.Printf("dashboard: poll reload failed: %v", err)
			}
		}
	}
}

func (d *Dashboard) handleEvent(ev eventbus.Event) {
	switch ev.Type {
	case eventbus.EventNewOrder:
		if err := d.reload(); err != nil {
			log.Printf("dashboard: reload on NEW_ORDER failed: %v", err)
			return
		}
		d.maybeAlert(ev.Data)
	case eventbus.EventStatusUpdate, eventbus.EventGenericUpdate:
		if err := d.reload(); err != nil {
			log.Printf("dashboard: reload on %s failed: %v", ev.Type, err)
		}
	}
}

func (d *Dashboard) reload() error {
	orders, err := d.repo.ListOrders()
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}
	d.mu.Lock()
	d.orders = orders
	d.refreshed = time.Now()
	d.mu.Unlock()
	return nil
}

// maybeAlert records a chime for a new order unless one fired within
// AlertDebounce; a rush of orders produces a single alert.
func (d *Dashboard) maybeAlert(data json.RawMessage) {
	var payload struct {
		OrderID int64 `json:"order_id"`
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &payload); err != nil {
			log.Printf("dashboard: bad NEW_ORDER payload: %v", err)
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	if !d.lastChime.IsZero() && now.Sub(d.lastChime) < d.AlertDebounce {
		return
	}
	d.lastChime = now
	d.alerts = append(d.alerts, domain.Alert{
		OrderID:   payload.OrderID,
		Message:   "New order received",
		Timestamp: now,
	})
	if len(d.alerts) > d.maxAlerts {
		d.alerts = d.alerts[len(d.alerts)-d.maxAlerts:]
	}
}

func (d *Dashboard) Snapshot() ([]domain.Order, time.Time) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	orders := make([]domain.Order, len(d.orders))
	copy(orders, d.orders)
	return orders, d.refreshed
}

func (d *Dashboard) Alerts() []domain.Alert {
	d.mu.RLock()
	defer d.mu.RUnlock()
	alerts := make([]domain.Alert, len(d.alerts))
	copy(alerts, d.alerts)
	return alerts
}
