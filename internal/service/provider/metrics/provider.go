package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/service/provider"
)

// 定义Prometheus指标配置常量
const (
	// 摘要指标的分位数配置
	median = 0.5
	p90    = 0.9
	p95    = 0.95
	p99    = 0.99

	medianError = 0.05
	p90Error    = 0.01
	p95Error    = 0.005
	p99Error    = 0.001

	// 摘要指标的最大保留时间
	maxAgeDuration = 5 * time.Minute
)

var _ provider.Provider = (*Provider)(nil)

// Provider 为供应商实现添加指标收集的装饰器
type Provider struct {
	provider            provider.Provider
	sendDurationSummary *prometheus.SummaryVec
	sendCounter         *prometheus.CounterVec
	sendStatusCounter   *prometheus.CounterVec
	name                string
}

// Send 发送并记录指标，status 取 success/fail，msgType 取实际下发渠道
func (p *Provider) Send(ctx context.Context, req provider.SendReq) domain.ProviderResult {
	startTime := time.Now()

	p.sendCounter.WithLabelValues(p.name, req.Channel.String()).Inc()

	res := p.provider.Send(ctx, req)

	duration := time.Since(startTime).Seconds()
	status := "fail"
	if res.Succeeded() {
		status = "success"
	}
	p.sendStatusCounter.WithLabelValues(p.name, req.Channel.String(), status, string(res.MsgType)).Inc()
	p.sendDurationSummary.WithLabelValues(p.name, req.Channel.String(), status).Observe(duration)
	return res
}

// NewProvider 创建一个新的带有指标收集的供应商，指标注册到 reg
func NewProvider(name string, p provider.Provider, reg prometheus.Registerer) *Provider {
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "provider_send_duration_seconds",
			Help: "供应商单个收件人发送耗时统计（秒）",
			Objectives: map[float64]float64{
				median: medianError,
				p90:    p90Error,
				p95:    p95Error,
				p99:    p99Error,
			},
			MaxAge: maxAgeDuration,
		},
		[]string{"provider", "channel", "status"},
	)

	sendCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_send_total",
			Help: "供应商发送总数",
		},
		[]string{"provider", "channel"},
	)

	sendStatusCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_send_status_total",
			Help: "供应商发送结果统计",
		},
		[]string{"provider", "channel", "status", "msg_type"},
	)

	reg.MustRegister(sendDurationSummary, sendCounter, sendStatusCounter)

	return &Provider{
		provider:            p,
		sendDurationSummary: sendDurationSummary,
		sendCounter:         sendCounter,
		sendStatusCounter:   sendStatusCounter,
		name:                name,
	}
}
