package kafka_client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/spacesedan/sentiboard/internal/models"
)

// deliveryProducer is the part of *kafka.Producer the publisher uses.
type deliveryProducer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Flush(timeoutMs int) int
	Close()
}

// PredictionProducer publishes prediction events, keyed by event id.
type PredictionProducer struct {
	producer   deliveryProducer
	topic      string
	retryDelay time.Duration
}

func NewPredictionProducer(cfg KafkaConfig) (*PredictionProducer, error) {
	slog.Info("[KafkaClient] Initializing Kafka Producer...",
		slog.String("broker", cfg.Broker),
		slog.String("topic", cfg.topic()))

	p, err := kafka.NewProducer(cfg.producerConfig())
	if err != nil {
		return nil, fmt.Errorf("[KafkaClient] Failed to create producer: %w", err)
	}

	slog.Info("[KafkaClient] Kafka Producer initialized successfully")
	return newPredictionProducer(p, cfg.topic()), nil
}

func newPredictionProducer(p deliveryProducer, topic string) *PredictionProducer {
	return &PredictionProducer{producer: p, topic: topic, retryDelay: RETRY_DELAY}
}

func (p *PredictionProducer) Close() {
	slog.Info("[KafkaClient] Flushing Kafka producer before shutdown...")
	if remaining := p.producer.Flush(FLUSH_TIMEOUT_MS); remaining > 0 {
		slog.Warn("[KafkaClient] Not all messages were delivered before shutdown",
			slog.Int("remaining", remaining))
	}
	p.producer.Close()
	slog.Info("[KafkaClient] Kafka producer shut down")
}

// Record publishes event and waits for the broker's delivery report. Retries
// stop as soon as ctx is done.
func (p *PredictionProducer) Record(ctx context.Context, event models.PredictionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("[KafkaClient] failed to marshal prediction event: %w", err)
	}

	topic := p.topic
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.ID),
		Value:          payload,
	}

	var lastErr error
	for attempt := 0; attempt < MAX_RETRIES; attempt++ {
		if lastErr = p.produce(ctx, msg); lastErr == nil {
			slog.Info("[KafkaClient] Published prediction event",
				slog.String("topic", topic),
				slog.String("event_id", event.ID))
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		slog.Warn("[KafkaClient] Failed to produce message, retrying...",
			slog.Int("attempt", attempt+1),
			slog.String("error", lastErr.Error()))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.retryDelay):
		}
	}

	return fmt.Errorf("[KafkaClient] failed to publish after %d attempts: %w", MAX_RETRIES, lastErr)
}

func (p *PredictionProducer) produce(ctx context.Context, msg *kafka.Message) error {
	delivery := make(chan kafka.Event, 1)
	if err := p.producer.Produce(msg, delivery); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case ev := <-delivery:
		m, ok := ev.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery event %v", ev)
		}
		return m.TopicPartition.Error
	}
}
