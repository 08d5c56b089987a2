package dispatchlog

import (
	"context"
)

const (
	eventName = "dispatch_completed_events"
)

// DispatchCompletedEvent 审计记录落库后发出，供对账和计费汇总使用。不带收件人清单
type DispatchCompletedEvent struct {
	LogID             int64  `json:"logId"`
	TenantID          int64  `json:"tenantId"`
	InitiatorID       int64  `json:"initiatorId"`
	TemplateCode      string `json:"templateCode,omitempty"`
	RecipientCount    int    `json:"recipientCount"`
	KakaoSuccessCount int    `json:"kakaoSuccessCount"`
	SMSSuccessCount   int    `json:"smsSuccessCount"`
	FailCount         int    `json:"failCount"`
	EstimatedCost     int64  `json:"estimatedCost"`
	IsDefaultChannel  bool   `json:"isDefaultChannel"`
	CreatedAt         int64  `json:"createdAt"` // 毫秒
}

//go:generate mockgen -source=./types.go -package=evtmocks -destination=../mocks/dispatch_completed.mock.go DispatchCompletedEventProducer
type DispatchCompletedEventProducer interface {
	Produce(ctx context.Context, evt DispatchCompletedEvent) error
}
