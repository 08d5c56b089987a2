package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strconv"
)

var ErrUnexpectedResponse = errors.New("供应商回包无法解析")

//go:generate mockgen -source=./types.go -destination=./mocks/client.mock.go -package=aligomocks Client

// Client 알리고 HTTP API 客户端
type Client interface {
	// SendAlimtalk 알림톡 模版消息，失败回落为文本由供应商完成
	SendAlimtalk(ctx context.Context, req AlimtalkReq) (AlimtalkResp, error)
	// SendText SMS/LMS/MMS 文本消息
	SendText(ctx context.Context, req TextReq) (TextResp, error)
}

type AlimtalkReq struct {
	SenderKey    string
	TemplateCode string
	Receiver     string
	RecvName     string
	Subject      string
	Message      string
	// Failover 为 true 时알림톡失败后按 FailoverSubject/FailoverMessage 发送文本
	Failover        bool
	FailoverSubject string
	FailoverMessage string
}

type AlimtalkResp struct {
	Code    FlexString   `json:"code"`
	Message string       `json:"message"`
	Info    AlimtalkInfo `json:"info"`
	// Raw 原始回包
	Raw string `json:"-"`
}

type AlimtalkInfo struct {
	Type FlexString `json:"type"`
	MID  FlexString `json:"mid"`
	SCnt int        `json:"scnt"`
	FCnt int        `json:"fcnt"`
}

type TextReq struct {
	Receiver string
	// MsgType SMS/LMS/MMS
	MsgType string
	Title   string
	Message string
}

type TextResp struct {
	ResultCode FlexString `json:"result_code"`
	Message    string     `json:"message"`
	MsgID      FlexString `json:"msg_id"`
	SuccessCnt int        `json:"success_cnt"`
	ErrorCnt   int        `json:"error_cnt"`
	MsgType    string     `json:"msg_type"`
	Raw        string     `json:"-"`
}

// FlexString 알리고 同一个字段有时返回数字有时返回字符串
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}
