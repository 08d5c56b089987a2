package progress

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"notice-dispatch/internal/domain"
)

func TestMQProducer_Produce(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, EventName, 1))
	consumer, err := q.Consumer(EventName, "progress-test")
	require.NoError(t, err)

	producer, err := NewMQProducer(q)
	require.NoError(t, err)

	sink := NewSink(producer, 12, "12-1717232400")
	sink.OnBatch(ctx, domain.BatchResult{
		BatchIndex:   1,
		StartIndex:   50,
		EndIndex:     99,
		Status:       domain.BatchStatusPartial,
		SuccessCount: 49,
		FailCount:    1,
		ErrorMessage: "수신거부",
	})

	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "12-1717232400", string(msg.Key))

	var evt BatchProgressEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, BatchProgressEvent{
		TenantID:     12,
		RunID:        "12-1717232400",
		BatchIndex:   1,
		StartIndex:   50,
		EndIndex:     99,
		Status:       domain.BatchStatusPartial,
		SuccessCount: 49,
		FailCount:    1,
		ErrorMessage: "수신거부",
	}, evt)
}
