package tracing

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/service/provider"
)

var _ provider.Provider = (*Provider)(nil)

// Provider 为供应商实现添加链路追踪的装饰器
type Provider struct {
	provider provider.Provider
	tracer   trace.Tracer
	name     string
}

func (p *Provider) Send(ctx context.Context, req provider.SendReq) domain.ProviderResult {
	ctx, span := p.tracer.Start(ctx, "Provider.Send",
		trace.WithAttributes(
			attribute.String("provider.name", p.name),
			attribute.String("dispatch.channel", req.Channel.String()),
			attribute.String("dispatch.templateCode", req.TemplateCode),
			attribute.Bool("sender.isDefault", req.Identity.IsDefault),
		))
	defer span.End()

	res := p.provider.Send(ctx, req)

	span.SetAttributes(
		attribute.String("provider.resultCode", res.ResultCode),
		attribute.String("provider.msgType", string(res.MsgType)),
		attribute.String("provider.messageId", res.ProviderMessageID),
		attribute.String("provider.successCount", strconv.Itoa(res.SuccessCount)),
	)
	if !res.Succeeded() {
		span.SetStatus(codes.Error, res.Message)
	}
	return res
}

// NewProvider 创建一个新的带有链路追踪的供应商
// name 应该传入类似于 aligo, console 这种名字
func NewProvider(p provider.Provider, name string) *Provider {
	return &Provider{
		provider: p,
		name:     name,
		tracer:   otel.Tracer("notice-dispatch/provider"),
	}
}
