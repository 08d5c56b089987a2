package circuitbreaker

import (
	"context"
	"fmt"

	"github.com/go-kratos/aegis/circuitbreaker"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/errs"
	"notice-dispatch/internal/service/provider"
)

var _ provider.Provider = (*Provider)(nil)

// Provider 熔断装饰器。熔断打开时不调用供应商，直接计为失败。
// 只有没拿到回包才算供应商故障，收件人维度的业务失败（수신거부 等）和本地限流不影响熔断
type Provider struct {
	provider provider.Provider
	breaker  circuitbreaker.CircuitBreaker
}

func NewProvider(p provider.Provider, breaker circuitbreaker.CircuitBreaker) *Provider {
	return &Provider{
		provider: p,
		breaker:  breaker,
	}
}

func (p *Provider) Send(ctx context.Context, req provider.SendReq) domain.ProviderResult {
	if err := p.breaker.Allow(); err != nil {
		p.breaker.MarkFailed()
		return provider.FailedResult(fmt.Errorf("%w: %w", errs.ErrCircuitBreaker, err))
	}
	res := p.provider.Send(ctx, req)
	switch res.ResultCode {
	case provider.ResultCodeTransport:
		p.breaker.MarkFailed()
	case provider.ResultCodeRateLimited:
		// 请求没有到达供应商
	default:
		p.breaker.MarkSuccess()
	}
	return res
}
