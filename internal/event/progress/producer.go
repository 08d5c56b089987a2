package progress

import (
	"context"
	"encoding/json"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/ecodeclub/mq-api"
	"notice-dispatch/internal/pkg/mqx"
)

// NewBatchProgressEventProducer 按 RunID 分区，同一次派发的进度事件保持顺序
func NewBatchProgressEventProducer(producer *kafka.Producer, timeout time.Duration) (BatchProgressEventProducer, error) {
	p, err := mqx.NewGeneralProducer[BatchProgressEvent](producer, EventName)
	if err != nil {
		return nil, err
	}
	return p.WithTimeout(timeout).WithKey(func(evt BatchProgressEvent) string {
		return evt.RunID
	}), nil
}

var _ BatchProgressEventProducer = (*MQProducer)(nil)

// MQProducer 基于 mq-api 的实现，e2e 测试里配合内存 MQ 读取进度
type MQProducer struct {
	producer mq.Producer
}

func NewMQProducer(q mq.MQ) (*MQProducer, error) {
	p, err := q.Producer(EventName)
	if err != nil {
		return nil, err
	}
	return &MQProducer{producer: p}, nil
}

func (p *MQProducer) Produce(ctx context.Context, evt BatchProgressEvent) error {
	val, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	_, err = p.producer.Produce(ctx, &mq.Message{Key: []byte(evt.RunID), Value: val})
	return err
}
