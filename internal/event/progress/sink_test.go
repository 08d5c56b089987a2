package progress_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"notice-dispatch/internal/domain"
	evtmocks "notice-dispatch/internal/event/mocks"
	"notice-dispatch/internal/event/progress"
)

func TestSink_OnBatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		produceErr error
	}{
		{name: "投递成功"},
		{name: "投递失败只记日志", produceErr: errors.New("broker down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			producer := evtmocks.NewMockBatchProgressEventProducer(ctrl)
			producer.EXPECT().Produce(gomock.Any(), progress.BatchProgressEvent{
				TenantID:     12,
				RunID:        "run-1",
				BatchIndex:   2,
				StartIndex:   100,
				EndIndex:     119,
				Status:       domain.BatchStatusFailed,
				FailCount:    20,
				ErrorMessage: "context canceled",
			}).Return(tt.produceErr)

			progress.NewSink(producer, 12, "run-1").OnBatch(context.Background(), domain.BatchResult{
				BatchIndex:   2,
				StartIndex:   100,
				EndIndex:     119,
				Status:       domain.BatchStatusFailed,
				FailCount:    20,
				ErrorMessage: "context canceled",
			})
		})
	}
}
