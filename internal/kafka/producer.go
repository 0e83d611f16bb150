package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// ComplaintEventProducer publishes complaint events (interface so tests can
// substitute a recorder).
type ComplaintEventProducer interface {
	ProduceComplaintEvent(ctx context.Context, event string, payload map[string]interface{})
}

// Producer writes complaint events to a Kafka topic, best-effort. With no
// brokers or no topic configured every method is a no-op.
type Producer struct {
	writer *kafka.Writer
	log    zerolog.Logger
}

func NewProducer(brokers []string, topic string, log zerolog.Logger) *Producer {
	if len(brokers) == 0 || topic == "" {
		return &Producer{log: log}
	}
	return &Producer{
		log: log,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// ProduceComplaintEvent publishes one event. Failures are logged, never returned.
func (p *Producer) ProduceComplaintEvent(ctx context.Context, event string, payload map[string]interface{}) {
	if p.writer == nil {
		return
	}
	msg := map[string]interface{}{"event": event}
	for k, v := range payload {
		msg[k] = v
	}
	body, err := json.Marshal(msg)
	if err != nil {
		p.log.Error().Err(err).Str("event", event).Msg("kafka: marshal complaint event")
		return
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Value: body}); err != nil {
		p.log.Error().Err(err).Str("event", event).Msg("kafka: write complaint event")
	}
}

func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
