package console

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/gotomicro/ego/core/elog"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/service/provider"
)

var _ provider.Provider = (*Provider)(nil)

// Provider 只输出到控制台，不调用供应商，用于演练和本地开发
type Provider struct {
	count  atomic.Int64
	logger *elog.Component
}

func NewProvider() *Provider {
	return &Provider{
		logger: elog.DefaultLogger,
	}
}

func (p *Provider) Send(_ context.Context, req provider.SendReq) domain.ProviderResult {
	id := p.count.Add(1)
	p.logger.Info("演练发送",
		elog.String("channel", req.Channel.String()),
		elog.String("templateCode", req.TemplateCode),
		elog.String("phone", req.Recipient.MaskedPhone()),
		elog.String("senderChannel", req.Identity.ChannelName))

	msgType := domain.ProviderMsgTypeAlimtalk
	if req.Channel == domain.DispatchChannelText {
		msgType = domain.ProviderMsgType(req.MessageType)
	}
	return domain.ProviderResult{
		ResultCode:        "0",
		MsgType:           msgType,
		SuccessCount:      1,
		ProviderMessageID: "console-" + strconv.FormatInt(id, 10),
		Message:           "dry run",
	}
}
