package service

import (
	"context"
	"encoding/json"
	"log"

	"coffeehouse-pos/agg-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.OrderPlacedMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if msg.Type == "order.placed" {
			c.ProcessOrder(msg)
		}
	}
}

func (c *Consumer) ProcessOrder(msg domain.OrderPlacedMessage) {
	if msg.Type != "order.placed" {
		return
	}
	log.Printf("Processing order: OrderID=%d, Items=%d, Total=%d",
		msg.OrderID, len(msg.Items), msg.Total)

	for _, item := range msg.Items {
		if err := c.Store.RecordItemSales(item.MenuItemID, item.Quantity); err != nil {
			log.Printf("Error recording sales for item %d: %v", item.MenuItemID, err)
			return
		}
	}

	if err := c.Store.RecordRevenue(msg.Total); err != nil {
		log.Printf("Error recording revenue: %v", err)
		return
	}

	log.Printf("Successfully processed order %d", msg.OrderID)
}
