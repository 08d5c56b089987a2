package ioc

import (
	"time"

	aegis "github.com/go-kratos/aegis/circuitbreaker"
	"github.com/go-kratos/aegis/circuitbreaker/sre"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"notice-dispatch/internal/pkg/ratelimit"
	"notice-dispatch/internal/service/provider"
	"notice-dispatch/internal/service/provider/aligo"
	"notice-dispatch/internal/service/provider/aligo/client"
	"notice-dispatch/internal/service/provider/circuitbreaker"
	"notice-dispatch/internal/service/provider/console"
	"notice-dispatch/internal/service/provider/limit"
	"notice-dispatch/internal/service/provider/metrics"
	"notice-dispatch/internal/service/provider/tracing"
)

// InitProvider 由内到外：供应商 -> 熔断 -> 限流 -> 指标 -> 链路
func InitProvider(rdb redis.Cmdable) provider.Provider {
	type BreakerConfig struct {
		Success float64       `yaml:"success"`
		Request int64         `yaml:"request"`
		Window  time.Duration `yaml:"window"`
	}
	type RateLimitConfig struct {
		Enabled  bool          `yaml:"enabled"`
		Interval time.Duration `yaml:"interval"`
		Rate     int           `yaml:"rate"`
		Wait     limit.Config  `yaml:"wait"`
	}
	type Config struct {
		Name      string          `yaml:"name"`
		DryRun    bool            `yaml:"dryRun"`
		Client    client.Config   `yaml:"client"`
		Aligo     aligo.Config    `yaml:"aligo"`
		Breaker   BreakerConfig   `yaml:"breaker"`
		RateLimit RateLimitConfig `yaml:"rateLimit"`
	}
	cfg := Config{
		Name:    "aligo",
		Aligo:   aligo.Config{Failover: true},
		Breaker: BreakerConfig{Success: 0.6, Request: 100, Window: 3 * time.Second},
	}
	if err := econf.UnmarshalKey("provider", &cfg); err != nil {
		panic(err)
	}

	var p provider.Provider
	if cfg.DryRun {
		elog.DefaultLogger.Warn("供应商处于演练模式，不会真实发送")
		p = console.NewProvider()
	} else {
		p = aligo.NewProvider(client.NewAligoClient(cfg.Client), cfg.Aligo)
	}

	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.NewRedisSlidingWindowLimiter(rdb, cfg.RateLimit.Interval, cfg.RateLimit.Rate)
		if cfg.RateLimit.Wait.Key == "" {
			cfg.RateLimit.Wait.Key = cfg.Name
		}
	}
	p = guardProvider(p, sre.NewBreaker(
		sre.WithSuccess(cfg.Breaker.Success),
		sre.WithRequest(cfg.Breaker.Request),
		sre.WithWindow(cfg.Breaker.Window),
	), limiter, cfg.RateLimit.Wait)
	p = metrics.NewProvider(cfg.Name, p, prometheus.DefaultRegisterer)
	return tracing.NewProvider(p, cfg.Name)
}

// guardProvider 限流包在熔断外面，被限流放弃的请求不会进入熔断统计。limiter 为 nil 时不限流
func guardProvider(p provider.Provider, breaker aegis.CircuitBreaker, limiter ratelimit.Limiter, cfg limit.Config) provider.Provider {
	p = circuitbreaker.NewProvider(p, breaker)
	if limiter != nil {
		p = limit.NewProvider(p, limiter, cfg)
	}
	return p
}
