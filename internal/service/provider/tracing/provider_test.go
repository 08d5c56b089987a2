package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/service/provider"
	providermocks "notice-dispatch/internal/service/provider/mocks"
)

func TestProvider_Send(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := domain.ProviderResult{ResultCode: "-99", FailCount: 1, Message: "수신거부"}
	inner := providermocks.NewMockProvider(ctrl)
	inner.EXPECT().Send(gomock.Any(), gomock.Any()).Return(want)

	got := NewProvider(inner, "aligo").Send(context.Background(), provider.SendReq{Channel: domain.DispatchChannelText})
	assert.Equal(t, want, got)
}
