// Package eventbus is the admin side of the shared pos:events channel.
// Same contract as the kiosk's: best-effort Redis pub/sub fan-out,
// at-most-once per connected subscriber, nothing stored, nothing replayed.
// The dashboard's periodic reload is what makes missed events harmless.
package eventbus

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

const Channel = "pos:events"

const (
	EventNewOrder      = "NEW_ORDER"
	EventStatusUpdate  = "STATUS_UPDATE"
	EventMenuUpdate    = "MENU_UPDATE"
	EventGenericUpdate = "GENERIC_UPDATE"
)

type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type StatusUpdate struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

type Bus struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Bus {
	return &Bus{rdb: rdb}
}

// Publish broadcasts after the triggering store write has committed; there
// is no ordering promise beyond that.
func (b *Bus) Publish(ctx context.Context, eventType string, data any) error {
	ev := Event{Type: eventType}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}
		ev.Data = raw
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, Channel, payload).Err()
}

func (b *Bus) Subscribe(ctx context.Context) (<-chan Event, func()) {
	pubsub := b.rdb.Subscribe(ctx, Channel)
	out := make(chan Event, 16)

	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("eventbus: dropping malformed event: %v", err)
				continue
			}
			select {
			case out <- ev:
			default:
				log.Printf("eventbus: subscriber lagging, dropped %s", ev.Type)
			}
		}
	}()

	return out, func() { _ = pubsub.Close() }
}
