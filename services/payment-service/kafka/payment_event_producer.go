package kafka

import (
	"context"
	"encoding/json"

	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/common/logger"
	"github.com/Lrojas898/ecommerce-microservice-backend-app/services/payment-service/models"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventPublisher is what the controller depends on; the kafka writer is one
// implementation, tests bring their own.
type EventPublisher interface {
	SendPaymentEvent(ctx context.Context, event models.PaymentEvent) error
}

type PaymentEventProducer struct {
	writer *kafka.Writer
	topic  string
}

func NewPaymentEventProducer(brokers []string, topic string) *PaymentEventProducer {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &PaymentEventProducer{writer: w, topic: topic}
}

func (p *PaymentEventProducer) SendPaymentEvent(ctx context.Context, event models.PaymentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Error(ctx, "failed to send payment event", err,
			zap.String("topic", p.topic), zap.String("payment_id", event.PaymentID))
		return err
	}

	logger.Info(ctx, "payment event sent",
		zap.String("type", event.Type), zap.String("payment_id", event.PaymentID))
	return nil
}

func (p *PaymentEventProducer) Close() {
	_ = p.writer.Close()
}
