package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"garment-orders/internal/models"
)

// Lifecycle event types carried on the order topic.
const (
	EventOrderCreated = "order_created"
	EventOrderPaid    = "order_paid"
	EventOrderTaken   = "order_taken"
	EventNotesUpdated = "order_notes_updated"
)

type Producer struct {
	Writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers: brokers,
		Topic:   topic,
	})
	return &Producer{Writer: writer}
}

func (p *Producer) publish(eventType string, order models.Order) error {
	event := models.OrderEvent{
		EventID: uuid.NewString(),
		Type:    eventType,
		At:      time.Now().UTC(),
		Order:   order,
	}
	msgBytes, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(context.Background(),
		kafka.Message{
			Key:   []byte(order.ID),
			Value: msgBytes,
		},
	)
}

// PublishOrderCreated streams the submission event to Kafka.
func (p *Producer) PublishOrderCreated(order models.Order) error {
	return p.publish(EventOrderCreated, order)
}

// PublishOrderPaid streams the payment event to Kafka.
func (p *Producer) PublishOrderPaid(order models.Order) error {
	return p.publish(EventOrderPaid, order)
}

// PublishOrderTaken streams the pickup event to Kafka.
func (p *Producer) PublishOrderTaken(order models.Order) error {
	return p.publish(EventOrderTaken, order)
}

// PublishNotesUpdated streams the notes change to Kafka.
func (p *Producer) PublishNotesUpdated(order models.Order) error {
	return p.publish(EventNotesUpdated, order)
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}

// Noop satisfies the publisher interface when event streaming is disabled.
type Noop struct{}

func (Noop) PublishOrderCreated(models.Order) error { return nil }
func (Noop) PublishOrderPaid(models.Order) error    { return nil }
func (Noop) PublishOrderTaken(models.Order) error   { return nil }
func (Noop) PublishNotesUpdated(models.Order) error { return nil }
