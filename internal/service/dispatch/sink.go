package dispatch

import (
	"context"

	"notice-dispatch/internal/domain"
)

// SinkFunc 把函数适配成 ProgressSink
type SinkFunc func(ctx context.Context, res domain.BatchResult)

func (f SinkFunc) OnBatch(ctx context.Context, res domain.BatchResult) {
	f(ctx, res)
}

type nopSink struct{}

func (nopSink) OnBatch(context.Context, domain.BatchResult) {}

// NopSink 不关心进度的调用方使用
var NopSink ProgressSink = nopSink{}
