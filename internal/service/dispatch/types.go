package dispatch

import (
	"context"
	"time"

	"notice-dispatch/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/dispatch.mock.go -package=dispatchmocks Service ProgressSink CompletedPublisher

// Service 派发入口，两个触发方式共用同一个核心流程
type Service interface {
	// Dispatch 公告触发的알림톡 派发，整个收件人列表在服务端分批
	Dispatch(ctx context.Context, req domain.DispatchRequest, sink ProgressSink) (domain.DispatchSummary, error)
	// DispatchBatch 管理后台按批调用的文本短信，分批和节奏由调用方负责
	DispatchBatch(ctx context.Context, req domain.DispatchRequest) (domain.BatchSendResponse, error)
	// ListLogs 审计记录，按 id 倒序
	ListLogs(ctx context.Context, tenantID int64, offset, limit int) ([]domain.DispatchLogRecord, error)
	// GetLog 一条完整的审计记录，含收件人清单和供应商回包。只能查本租户的
	GetLog(ctx context.Context, tenantID, id int64) (domain.DispatchLogRecord, error)
}

// ProgressSink 每完成一个批次回调一次
type ProgressSink interface {
	OnBatch(ctx context.Context, res domain.BatchResult)
}

// CompletedPublisher 审计记录落库后通知下游，失败不影响派发结果
type CompletedPublisher interface {
	Publish(ctx context.Context, record domain.DispatchLogRecord) error
}

type Config struct {
	BatchSize   int           `yaml:"batchSize"`
	PacingDelay time.Duration `yaml:"pacingDelay"`
	// Concurrency 批次内同时发送的收件人数，1 为严格顺序
	Concurrency int `yaml:"concurrency"`
}

const (
	DefaultBatchSize   = 50
	DefaultPacingDelay = time.Second
	DefaultConcurrency = 1
)

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.PacingDelay <= 0 {
		c.PacingDelay = DefaultPacingDelay
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	return c
}
