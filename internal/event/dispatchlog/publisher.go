package dispatchlog

import (
	"context"
	"strconv"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/pkg/mqx"
)

// NewDispatchCompletedEventProducer timeout 是等待投递结果的上限，<= 0 时用 mqx.DefaultProduceTimeout
func NewDispatchCompletedEventProducer(producer *kafka.Producer, timeout time.Duration) (DispatchCompletedEventProducer, error) {
	p, err := mqx.NewGeneralProducer[DispatchCompletedEvent](producer, eventName)
	if err != nil {
		return nil, err
	}
	return p.WithTimeout(timeout).WithKey(func(evt DispatchCompletedEvent) string {
		return strconv.FormatInt(evt.TenantID, 10)
	}), nil
}

// Publisher 把审计记录转成完成事件
type Publisher struct {
	producer DispatchCompletedEventProducer
}

func NewPublisher(producer DispatchCompletedEventProducer) *Publisher {
	return &Publisher{producer: producer}
}

func (p *Publisher) Publish(ctx context.Context, record domain.DispatchLogRecord) error {
	return p.producer.Produce(ctx, DispatchCompletedEvent{
		LogID:             record.ID,
		TenantID:          record.TenantID,
		InitiatorID:       record.InitiatorID,
		TemplateCode:      record.TemplateCode,
		RecipientCount:    record.RecipientCount,
		KakaoSuccessCount: record.KakaoSuccessCount,
		SMSSuccessCount:   record.SMSSuccessCount,
		FailCount:         record.FailCount,
		EstimatedCost:     record.EstimatedCost,
		IsDefaultChannel:  record.IsDefaultChannel,
		CreatedAt:         record.CreatedAt.UnixMilli(),
	})
}
