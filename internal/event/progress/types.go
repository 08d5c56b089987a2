package progress

import (
	"context"

	"notice-dispatch/internal/domain"
)

const (
	EventName = "dispatch_progress_events"
)

// BatchProgressEvent 每发完一个批次推一条，前端按 RunID 聚合展示进度
type BatchProgressEvent struct {
	TenantID     int64              `json:"tenantId"`
	RunID        string             `json:"runId"`
	BatchIndex   int                `json:"batchIndex"`
	StartIndex   int                `json:"startIndex"`
	EndIndex     int                `json:"endIndex"`
	Status       domain.BatchStatus `json:"status"`
	SuccessCount int                `json:"successCount"`
	FailCount    int                `json:"failCount"`
	ErrorMessage string             `json:"errorMessage,omitempty"`
}

//go:generate mockgen -source=./types.go -package=evtmocks -destination=../mocks/batch_progress.mock.go BatchProgressEventProducer
type BatchProgressEventProducer interface {
	Produce(ctx context.Context, evt BatchProgressEvent) error
}
