package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultAlimtalkURL = "https://kakaoapi.aligo.in/akv10/alimtalk/send/"
	DefaultTextURL     = "https://apis.aligo.in/send/"
	defaultTimeout     = 10 * time.Second
	// 回包最多读取 64KB
	maxBodySize = 64 << 10
)

var _ Client = (*AligoClient)(nil)

type Config struct {
	APIKey      string        `yaml:"apiKey"`
	UserID      string        `yaml:"userId"`
	Sender      string        `yaml:"sender"`
	AlimtalkURL string        `yaml:"alimtalkURL"`
	TextURL     string        `yaml:"textURL"`
	Timeout     time.Duration `yaml:"timeout"`
	// TestMode 为 true 时供应商只校验不发送
	TestMode bool `yaml:"testMode"`
}

type AligoClient struct {
	cfg    Config
	client *http.Client
}

func NewAligoClient(cfg Config) *AligoClient {
	if cfg.AlimtalkURL == "" {
		cfg.AlimtalkURL = DefaultAlimtalkURL
	}
	if cfg.TextURL == "" {
		cfg.TextURL = DefaultTextURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &AligoClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *AligoClient) SendAlimtalk(ctx context.Context, req AlimtalkReq) (AlimtalkResp, error) {
	form := url.Values{}
	form.Set("apikey", c.cfg.APIKey)
	form.Set("userid", c.cfg.UserID)
	form.Set("senderkey", req.SenderKey)
	form.Set("tpl_code", req.TemplateCode)
	form.Set("sender", c.cfg.Sender)
	form.Set("receiver_1", req.Receiver)
	form.Set("recvname_1", req.RecvName)
	form.Set("subject_1", req.Subject)
	form.Set("message_1", req.Message)
	if req.Failover {
		form.Set("failover", "Y")
		form.Set("fsubject_1", req.FailoverSubject)
		form.Set("fmessage_1", req.FailoverMessage)
	}
	c.setTestMode(form)

	var resp AlimtalkResp
	raw, err := c.post(ctx, c.cfg.AlimtalkURL, form, &resp)
	resp.Raw = raw
	return resp, err
}

func (c *AligoClient) SendText(ctx context.Context, req TextReq) (TextResp, error) {
	form := url.Values{}
	form.Set("key", c.cfg.APIKey)
	form.Set("user_id", c.cfg.UserID)
	form.Set("sender", c.cfg.Sender)
	form.Set("receiver", req.Receiver)
	form.Set("msg", req.Message)
	if req.MsgType != "" {
		form.Set("msg_type", req.MsgType)
	}
	if req.Title != "" {
		form.Set("title", req.Title)
	}
	c.setTestMode(form)

	var resp TextResp
	raw, err := c.post(ctx, c.cfg.TextURL, form, &resp)
	resp.Raw = raw
	return resp, err
}

func (c *AligoClient) setTestMode(form url.Values) {
	if c.cfg.TestMode {
		form.Set("testmode_yn", "Y")
	}
}

// post 返回原始回包，HTTP 状态非 2xx 或者回包不是 JSON 时返回 error
func (c *AligoClient) post(ctx context.Context, endpoint string, form url.Values, out any) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", err
	}
	raw := string(body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return raw, fmt.Errorf("%w: http status %d", ErrUnexpectedResponse, resp.StatusCode)
	}
	if err = json.Unmarshal(body, out); err != nil {
		return raw, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	return raw, nil
}
