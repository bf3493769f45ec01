//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/couchcryptid/dev-fortune-service/internal/adapter/kafka"
	"github.com/couchcryptid/dev-fortune-service/internal/config"
	"github.com/couchcryptid/dev-fortune-service/internal/domain"
)

const testFortuneTopic = "test-fortunes-issued"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka runs a single-node Kafka container and returns its broker address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0",
		tckafka.WithClusterID("test-cluster"))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err, "resolve broker addresses")
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err, "dial broker")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err, "resolve controller")

	ctrlConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err, "dial controller")
	defer ctrlConn.Close()

	require.NoError(t, ctrlConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// TestPublisherRoundTrip publishes a fortune-issued event through the real
// producer and verifies the message a consumer receives.
func TestPublisherRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testFortuneTopic)

	cfg := &config.Config{
		KafkaBrokers:      []string{broker},
		KafkaFortuneTopic: testFortuneTopic,
	}

	publisher := kafka.NewPublisher(cfg, discardLogger())
	t.Cleanup(func() { _ = publisher.Close() })

	issuedAt := time.Date(2024, time.April, 26, 14, 0, 0, 0, time.UTC)
	fortune := domain.FortuneRecord{
		ID:            "fortune-17ee472314f8afe2",
		ZodiacSign:    "cancer",
		Element:       "water",
		ExpectedBugs:  5,
		LuckyLanguage: "Python",
		CommitAdvice:  "Code reviews will be particularly insightful",
	}

	require.NoError(t, publisher.PublishIssued(ctx, "abc123", fortune, issuedAt))

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testFortuneTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
	defer readCancel()
	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read from fortune topic")

	assert.Equal(t, []byte("fortune-17ee472314f8afe2"), msg.Key)

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "abc123", headers["user_id"])
	assert.Equal(t, issuedAt.Format(time.RFC3339), headers["issued_at"])

	var event struct {
		FortuneID string               `json:"fortune_id"`
		UserID    string               `json:"user_id"`
		IssuedAt  time.Time            `json:"issued_at"`
		Fortune   domain.FortuneRecord `json:"fortune"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &event), "unmarshal fortune event")

	assert.Equal(t, "fortune-17ee472314f8afe2", event.FortuneID)
	assert.Equal(t, "abc123", event.UserID)
	assert.True(t, issuedAt.Equal(event.IssuedAt))
	assert.Equal(t, fortune, event.Fortune)
}
