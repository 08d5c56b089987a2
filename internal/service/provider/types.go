package provider

import (
	"context"

	"notice-dispatch/internal/domain"
)

const (
	// ResultCodeTransport 没有拿到供应商回包（网络错误、熔断、超时）时使用的结果码
	ResultCodeTransport = "-1"
	// ResultCodeRateLimited 本地限流等待超过上限，请求没有发出去，不算供应商故障
	ResultCodeRateLimited = "-2"
)

//go:generate mockgen -source=./types.go -destination=./mocks/provider.mock.go -package=providermocks Provider

// Provider 供应商网关，一次调用发送给一个收件人。
// 所有失败都体现在 ProviderResult 里，从不返回 error
type Provider interface {
	Send(ctx context.Context, req SendReq) domain.ProviderResult
}

type SendReq struct {
	Identity domain.SenderIdentity
	Channel  domain.DispatchChannel
	// MessageType 文本渠道的 SMS/LMS/MMS，模版渠道为 KAKAO
	MessageType  domain.MessageType
	TemplateCode string
	Title        string
	Content      string
	Recipient    domain.Recipient
}

// FailedResult 没有回包时的失败结果
func FailedResult(err error) domain.ProviderResult {
	return domain.ProviderResult{
		ResultCode: ResultCodeTransport,
		MsgType:    domain.ProviderMsgTypeUnknown,
		FailCount:  1,
		Message:    err.Error(),
	}
}

// RateLimitedResult 限流放弃发送时的失败结果
func RateLimitedResult(err error) domain.ProviderResult {
	res := FailedResult(err)
	res.ResultCode = ResultCodeRateLimited
	return res
}
