// Package kafka publishes fortune-issued events for downstream consumers
// (notification bots, analytics). Publishing is optional and best-effort; the
// HTTP request does not fail when the broker is down.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/dev-fortune-service/internal/config"
	"github.com/couchcryptid/dev-fortune-service/internal/domain"
)

// Publisher produces fortune-issued events to a Kafka topic.
// It implements service.EventPublisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured fortune topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaFortuneTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// PublishIssued serializes and publishes one issuance event. The message key
// is the deterministic fortune ID, so replays and duplicate publishes
// deduplicate downstream.
func (p *Publisher) PublishIssued(ctx context.Context, userID string, fortune domain.FortuneRecord, issuedAt time.Time) error {
	msg, err := serializeToMessage(userID, fortune, issuedAt)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// issuedEvent is the wire shape of one fortune issuance.
type issuedEvent struct {
	FortuneID string               `json:"fortune_id"`
	UserID    string               `json:"user_id"`
	IssuedAt  time.Time            `json:"issued_at"`
	Fortune   domain.FortuneRecord `json:"fortune"`
}

// serializeToMessage marshals an issuance into a Kafka message.
func serializeToMessage(userID string, fortune domain.FortuneRecord, issuedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(issuedEvent{
		FortuneID: fortune.ID,
		UserID:    userID,
		IssuedAt:  issuedAt,
		Fortune:   fortune,
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize fortune event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(fortune.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "user_id", Value: []byte(userID)},
			{Key: "issued_at", Value: []byte(issuedAt.Format(time.RFC3339))},
		},
	}, nil
}
