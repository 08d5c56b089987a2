package mqx

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// DefaultProduceTimeout 等待投递结果的上限。librdkafka 默认 message.timeout.ms 是 300s，
// broker 不可达时不能让调用方跟着等这么久
const DefaultProduceTimeout = 3 * time.Second

// GeneralProducer 把任意事件序列化成 JSON 投递到固定 topic
type GeneralProducer[T any] struct {
	producer *kafka.Producer
	topic    string
	timeout  time.Duration
	key      func(evt T) string
}

func NewGeneralProducer[T any](producer *kafka.Producer, topic string) (*GeneralProducer[T], error) {
	if producer == nil {
		return nil, fmt.Errorf("topic %s: kafka producer 不能为空", topic)
	}
	return &GeneralProducer[T]{producer: producer, topic: topic, timeout: DefaultProduceTimeout}, nil
}

// WithTimeout d <= 0 时保持原值
func (p *GeneralProducer[T]) WithTimeout(d time.Duration) *GeneralProducer[T] {
	if d > 0 {
		p.timeout = d
	}
	return p
}

// WithKey 同一个 key 的事件落在同一个分区，保证顺序
func (p *GeneralProducer[T]) WithKey(key func(evt T) string) *GeneralProducer[T] {
	p.key = key
	return p
}

// Produce 同步等待投递结果，超时或 ctx 结束时放弃等待。放弃等待不撤回消息，librdkafka 仍会在后台重试
func (p *GeneralProducer[T]) Produce(ctx context.Context, evt T) error {
	val, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &p.topic,
			Partition: kafka.PartitionAny,
		},
		Value: val,
	}
	if p.key != nil {
		msg.Key = []byte(p.key(evt))
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	deliveryChan := make(chan kafka.Event, 1)
	if err = p.producer.Produce(msg, deliveryChan); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("topic %s: 等待投递结果: %w", p.topic, ctx.Err())
	case e := <-deliveryChan:
		m, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("topic %s: 未知的投递事件 %v", p.topic, e)
		}
		return m.TopicPartition.Error
	}
}
