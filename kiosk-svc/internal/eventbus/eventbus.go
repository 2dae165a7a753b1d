// Package eventbus carries change notifications between the kiosk and admin
// services over a single Redis pub/sub channel.
//
// Delivery is best-effort and at-most-once per connected subscriber: Redis
// pub/sub keeps nothing, retries nothing, and a subscriber that is not
// connected at publish time never sees the event. The store write always
// happens before the publish, but no ordering beyond that is guaranteed.
// Consumers must therefore pair a subscription with periodic re-reads of the
// store; the bus is a latency optimization, the poll is the correctness
// backstop.
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

// StatusUpdate is the payload of a STATUS_UPDATE event. NEW_ORDER carries a
// full order; MENU_UPDATE and GENERIC_UPDATE carry no payload, consumers
// re-fetch what they need.
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

// Subscribe returns a channel of decoded events and a stop function that
// tears the subscription down. Events that arrive while the consumer lags
// behind the buffer are dropped, in keeping with the at-most-once contract.
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
