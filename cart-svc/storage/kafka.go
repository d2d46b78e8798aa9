package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"restaurant-ordering/cart-svc/domain"
)

type KafkaCartEvents struct {
	Writer *kafka.Writer
}

func NewKafkaCartEvents(writer *kafka.Writer) *KafkaCartEvents {
	return &KafkaCartEvents{Writer: writer}
}

func (p *KafkaCartEvents) PublishCartEvent(ctx context.Context, event domain.CartEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SessionID),
		Value: payload,
	})
}
