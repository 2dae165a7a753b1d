package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"coffeehouse-pos/kiosk-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaFeed struct {
	Writer *kafka.Writer
}

func NewKafkaFeed(writer *kafka.Writer) *KafkaFeed {
	return &KafkaFeed{Writer: writer}
}

func (f *KafkaFeed) PublishOrderPlaced(ctx context.Context, msg domain.OrderPlacedMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return f.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(msg.OrderID, 10)),
		Value: payload,
	})
}
