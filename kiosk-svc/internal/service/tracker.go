package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"coffeehouse-pos/kiosk-svc/internal/domain"
	"coffeehouse-pos/kiosk-svc/internal/eventbus"
)

// Tracker gives each kiosk session an eventually-consistent view of its
// order. STATUS_UPDATE broadcasts trigger a re-fetch of the order, and every
// Status call re-fetches too, so a missed broadcast only delays a
// notification until the kiosk next polls. The previous status is kept per
// session because the notification rules compare transitions, not states.
type Tracker struct {
	orders OrderRepository
	store  SessionStore
	bus    BusSubscriber

	mu       sync.Mutex
	sessions map[string]*trackedSession
	nextID   int64
}

type trackedSession struct {
	orderID       int64
	lastStatus    string
	notifications []domain.Notification
}

func NewTracker(orders OrderRepository, store SessionStore, bus BusSubscriber) *Tracker {
	return &Tracker{
		orders:   orders,
		store:    store,
		bus:      bus,
		sessions: make(map[string]*trackedSession),
	}
}

// Track registers a session as watching an order. The association is
// persisted so tracking survives a kiosk restart; notifications do not.
func (t *Tracker) Track(ctx context.Context, sessionID string, orderID int64) (*domain.Order, error) {
	order, err := t.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if err := t.store.SaveTracking(ctx, sessionID, orderID); err != nil {
		log.Printf("tracker: failed to persist tracking for session %s: %v", sessionID, err)
	}

	t.mu.Lock()
	sess := &trackedSession{orderID: orderID, lastStatus: order.Status}
	t.sessions[sessionID] = sess
	t.pushNotification(sess, "Order placed", "We received your order. Sit tight!", "success", false)
	t.mu.Unlock()

	return order, nil
}

// Status is the pull half of the reconciler: it always fetches the fresh
// order and applies the same transition rules as the push path.
func (t *Tracker) Status(ctx context.Context, sessionID string) (*domain.Order, []domain.Notification, error) {
	t.mu.Lock()
	sess, ok := t.sessions[sessionID]
	t.mu.Unlock()

	if !ok {
		orderID, found, err := t.store.LoadTracking(ctx, sessionID)
		if err != nil {
			return nil, nil, err
		}
		if !found {
			return nil, nil, ErrOrderNotFound
		}
		order, err := t.orders.GetOrder(orderID)
		if err != nil {
			return nil, nil, err
		}
		if order == nil {
			return nil, nil, ErrOrderNotFound
		}
		t.mu.Lock()
		sess = &trackedSession{orderID: orderID, lastStatus: order.Status}
		t.sessions[sessionID] = sess
		notifications := append([]domain.Notification(nil), sess.notifications...)
		t.mu.Unlock()
		return order, notifications, nil
	}

	order, err := t.refresh(sessionID, sess.orderID)
	if err != nil {
		return nil, nil, err
	}

	t.mu.Lock()
	notifications := append([]domain.Notification(nil), sess.notifications...)
	t.mu.Unlock()
	return order, notifications, nil
}

func (t *Tracker) MarkRead(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if sess, ok := t.sessions[sessionID]; ok {
		for i := range sess.notifications {
			sess.notifications[i].Read = true
		}
	}
}

func (t *Tracker) StopTracking(ctx context.Context, sessionID string) error {
	t.mu.Lock()
	delete(t.sessions, sessionID)
	t.mu.Unlock()
	return t.store.ClearTracking(ctx, sessionID)
}

// Run consumes the event bus until ctx is done. Only STATUS_UPDATE events
// for tracked orders trigger work; everything else is ignored.
func (t *Tracker) Run(ctx context.Context) {
	events, stop := t.bus.Subscribe(ctx)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Type != eventbus.EventStatusUpdate {
				continue
			}
			var update eventbus.StatusUpdate
			if err := json.Unmarshal(ev.Data, &update); err != nil {
				log.Printf("tracker: malformed STATUS_UPDATE payload: %v", err)
				continue
			}
			t.mu.Lock()
			var matched []string
			for sessionID, sess := range t.sessions {
				if sess.orderID == update.OrderID {
					matched = append(matched, sessionID)
				}
			}
			t.mu.Unlock()
			for _, sessionID := range matched {
				if _, err := t.refresh(sessionID, update.OrderID); err != nil {
					log.Printf("tracker: refresh failed for order %d: %v", update.OrderID, err)
				}
			}
		}
	}
}

// refresh fetches the order and turns a status transition into a
// notification. The fetch is authoritative; the event only told us to look.
func (t *Tracker) refresh(sessionID string, orderID int64) (*domain.Order, error) {
	order, err := t.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	sess, ok := t.sessions[sessionID]
	if !ok || sess.lastStatus == order.Status {
		return order, nil
	}

	previous := sess.lastStatus
	sess.lastStatus = order.Status

	switch order.Status {
	case domain.StatusPreparing:
		t.pushNotification(sess, "Order update", "Your order is being prepared.", "info", false)
	case domain.StatusReady:
		if previous != domain.StatusReady {
			t.pushNotification(sess, "Order ready!", "Your order is ready for pickup at the counter.", "success", true)
		}
	case domain.StatusCompleted:
		t.pushNotification(sess, "Order completed", "Thanks for visiting. Enjoy!", "info", false)
	case domain.StatusCancelled:
		t.pushNotification(sess, "Order cancelled", "Your order was cancelled. Please ask our staff.", "warning", false)
	}
	return order, nil
}

// pushNotification appends under t.mu.
func (t *Tracker) pushNotification(sess *trackedSession, title, message, kind string, urgent bool) {
	t.nextID++
	sess.notifications = append(sess.notifications, domain.Notification{
		ID:        t.nextID,
		Title:     title,
		Message:   message,
		Timestamp: time.Now(),
		Type:      kind,
		Urgent:    urgent,
	})
}
