package limit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/errs"
	"notice-dispatch/internal/pkg/ratelimit"
	"notice-dispatch/internal/service/provider"
)

var _ provider.Provider = (*Provider)(nil)

const defaultMaxWait = 5 * time.Second

type Config struct {
	// Key 同一个供应商账号共享的限流键
	Key string `yaml:"key"`
	// MaxWait 单个收件人累计等待的上限，超过计为失败
	MaxWait time.Duration `yaml:"maxWait"`
}

// Provider 限流装饰器。被限流时按限流器给出的时长等待窗口滑开，累计等待超过 MaxWait 计为失败。
// 限流器本身出错时放行
type Provider struct {
	provider provider.Provider
	limiter  ratelimit.Limiter
	cfg      Config
	logger   *elog.Component
}

func NewProvider(p provider.Provider, limiter ratelimit.Limiter, cfg Config) *Provider {
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = defaultMaxWait
	}
	return &Provider{
		provider: p,
		limiter:  limiter,
		cfg:      cfg,
		logger:   elog.DefaultLogger,
	}
}

func (p *Provider) Send(ctx context.Context, req provider.SendReq) domain.ProviderResult {
	if err := p.wait(ctx); err != nil {
		if errors.Is(err, errs.ErrRateLimited) {
			return provider.RateLimitedResult(err)
		}
		return provider.FailedResult(err)
	}
	return p.provider.Send(ctx, req)
}

func (p *Provider) wait(ctx context.Context) error {
	var waited time.Duration
	for {
		retryAfter, err := p.limiter.Acquire(ctx, p.cfg.Key)
		if err != nil {
			p.logger.Warn("限流器异常，直接放行", elog.String("key", p.cfg.Key), elog.FieldErr(err))
			return nil
		}
		if retryAfter <= 0 {
			return nil
		}
		if waited+retryAfter > p.cfg.MaxWait {
			p.logger.Warn("限流等待超过上限",
				elog.String("key", p.cfg.Key),
				elog.String("waited", waited.String()),
				elog.String("retryAfter", retryAfter.String()))
			return fmt.Errorf("%w: key = %s, waited = %s", errs.ErrRateLimited, p.cfg.Key, waited)
		}
		waited += retryAfter

		timer := time.NewTimer(retryAfter)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
