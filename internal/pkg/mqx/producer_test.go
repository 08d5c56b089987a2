package mqx

import (
	"context"
	"testing"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	RunID string `json:"runId"`
}

func TestNewGeneralProducer(t *testing.T) {
	t.Parallel()

	_, err := NewGeneralProducer[testEvent](nil, "dispatch_test_events")
	assert.Error(t, err)
}

// broker 不可达时 librdkafka 要到 message.timeout.ms 才回投递报告，Produce 必须按自己的超时返回
func TestGeneralProducer_ProduceBrokerUnreachable(t *testing.T) {
	t.Parallel()

	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":  "127.0.0.1:1",
		"message.timeout.ms": 60000,
	})
	require.NoError(t, err)
	defer func() {
		_ = producer.Purge(kafka.PurgeQueue | kafka.PurgeInFlight)
		producer.Close()
	}()

	p, err := NewGeneralProducer[testEvent](producer, "dispatch_test_events")
	require.NoError(t, err)
	p.WithTimeout(100 * time.Millisecond).WithKey(func(evt testEvent) string { return evt.RunID })

	start := time.Now()
	err = p.Produce(context.Background(), testEvent{RunID: "run-1"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestGeneralProducer_WithTimeout(t *testing.T) {
	t.Parallel()

	p := &GeneralProducer[testEvent]{timeout: DefaultProduceTimeout}
	p.WithTimeout(0)
	assert.Equal(t, DefaultProduceTimeout, p.timeout)
	p.WithTimeout(time.Second)
	assert.Equal(t, time.Second, p.timeout)
}
