package progress

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"notice-dispatch/internal/domain"
)

// Sink 绑定到一次派发的进度回调
type Sink struct {
	producer BatchProgressEventProducer
	tenantID int64
	runID    string
	logger   *elog.Component
}

func NewSink(producer BatchProgressEventProducer, tenantID int64, runID string) *Sink {
	return &Sink{
		producer: producer,
		tenantID: tenantID,
		runID:    runID,
		logger:   elog.DefaultLogger,
	}
}

// OnBatch 进度事件丢了不影响派发，只记日志
func (s *Sink) OnBatch(ctx context.Context, res domain.BatchResult) {
	err := s.producer.Produce(ctx, BatchProgressEvent{
		TenantID:     s.tenantID,
		RunID:        s.runID,
		BatchIndex:   res.BatchIndex,
		StartIndex:   res.StartIndex,
		EndIndex:     res.EndIndex,
		Status:       res.Status,
		SuccessCount: res.SuccessCount,
		FailCount:    res.FailCount,
		ErrorMessage: res.ErrorMessage,
	})
	if err != nil {
		s.logger.Warn("发送派发进度事件失败",
			elog.String("runID", s.runID),
			elog.Int("batchIndex", res.BatchIndex),
			elog.FieldErr(err))
	}
}
