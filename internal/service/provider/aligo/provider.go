package aligo

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/gotomicro/ego/core/elog"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/errs"
	"notice-dispatch/internal/service/provider"
	"notice-dispatch/internal/service/provider/aligo/client"
)

const (
	DefaultAlimtalkSuccessCode = "0"
	DefaultTextSuccessCode     = "1"
)

var (
	_ provider.Provider = (*Provider)(nil)

	placeholder = regexp.MustCompile(`#\{([^{}]+)\}`)
)

type Config struct {
	// Failover 알림톡 失败时是否由供应商回落为 SMS/LMS
	Failover            bool   `yaml:"failover"`
	AlimtalkSuccessCode string `yaml:"alimtalkSuccessCode"`
	TextSuccessCode     string `yaml:"textSuccessCode"`
}

// Provider 알리고 供应商，把 HTTP 回包归一化为 ProviderResult
type Provider struct {
	client client.Client
	cfg    Config
	logger *elog.Component
}

func NewProvider(c client.Client, cfg Config) *Provider {
	if cfg.AlimtalkSuccessCode == "" {
		cfg.AlimtalkSuccessCode = DefaultAlimtalkSuccessCode
	}
	if cfg.TextSuccessCode == "" {
		cfg.TextSuccessCode = DefaultTextSuccessCode
	}
	return &Provider{
		client: c,
		cfg:    cfg,
		logger: elog.DefaultLogger,
	}
}

func (p *Provider) Send(ctx context.Context, req provider.SendReq) domain.ProviderResult {
	if req.Channel == domain.DispatchChannelText {
		return p.sendText(ctx, req)
	}
	return p.sendAlimtalk(ctx, req)
}

func (p *Provider) sendAlimtalk(ctx context.Context, req provider.SendReq) domain.ProviderResult {
	body := req.Content
	if body == "" {
		body = req.Title
	}
	message := Render(body, req.Recipient)
	resp, err := p.client.SendAlimtalk(ctx, client.AlimtalkReq{
		SenderKey:       req.Identity.Key,
		TemplateCode:    req.TemplateCode,
		Receiver:        NormalizePhone(req.Recipient.PhoneNumber),
		RecvName:        req.Recipient.Name,
		Subject:         req.Title,
		Message:         message,
		Failover:        p.cfg.Failover,
		FailoverSubject: req.Title,
		FailoverMessage: message,
	})
	if err != nil {
		p.logger.Warn("알림톡 调用失败",
			elog.String("phone", req.Recipient.MaskedPhone()), elog.FieldErr(err))
		res := provider.FailedResult(fmt.Errorf("%w: %w", errs.ErrProviderCall, err))
		res.Raw = resp.Raw
		return res
	}

	res := domain.ProviderResult{
		ResultCode:        resp.Code.String(),
		MsgType:           domain.ProviderMsgType(resp.Info.Type),
		ProviderMessageID: resp.Info.MID.String(),
		Message:           resp.Message,
		Raw:               resp.Raw,
	}
	if resp.Code.String() != p.cfg.AlimtalkSuccessCode || resp.Info.FCnt > 0 {
		res.FailCount = 1
		return res
	}
	res.SuccessCount = 1
	return res
}

func (p *Provider) sendText(ctx context.Context, req provider.SendReq) domain.ProviderResult {
	resp, err := p.client.SendText(ctx, client.TextReq{
		Receiver: NormalizePhone(req.Recipient.PhoneNumber),
		MsgType:  req.MessageType.String(),
		Title:    req.Title,
		Message:  Render(req.Content, req.Recipient),
	})
	if err != nil {
		p.logger.Warn("文本短信调用失败",
			elog.String("phone", req.Recipient.MaskedPhone()), elog.FieldErr(err))
		res := provider.FailedResult(fmt.Errorf("%w: %w", errs.ErrProviderCall, err))
		res.Raw = resp.Raw
		return res
	}

	msgType := domain.ProviderMsgType(resp.MsgType)
	if msgType == domain.ProviderMsgTypeUnknown {
		msgType = domain.ProviderMsgType(req.MessageType)
	}
	res := domain.ProviderResult{
		ResultCode:        resp.ResultCode.String(),
		MsgType:           msgType,
		ProviderMessageID: resp.MsgID.String(),
		Message:           resp.Message,
		Raw:               resp.Raw,
	}
	if resp.ResultCode.String() != p.cfg.TextSuccessCode || resp.ErrorCnt > 0 {
		res.FailCount = 1
		return res
	}
	res.SuccessCount = 1
	return res
}

// Render 替换 #{变量}，收件人变量里没有时 #{name} 取收件人姓名，其余保持原样
func Render(content string, r domain.Recipient) string {
	if !strings.Contains(content, "#{") {
		return content
	}
	return placeholder.ReplaceAllStringFunc(content, func(m string) string {
		key := m[2 : len(m)-1]
		if v, ok := r.TemplateVariables[key]; ok {
			return v
		}
		if key == "name" || key == "이름" {
			return r.Name
		}
		return m
	})
}

// NormalizePhone 去掉号码里的分隔符
func NormalizePhone(phone string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(phone)
}
