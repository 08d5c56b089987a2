package aligo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/errs"
	"notice-dispatch/internal/service/provider"
	"notice-dispatch/internal/service/provider/aligo/client"
	aligomocks "notice-dispatch/internal/service/provider/aligo/client/mocks"
)

func TestProvider_Send(t *testing.T) {
	t.Parallel()

	identity := domain.SenderIdentity{Key: "sender-key", ChannelName: "둔촌조합"}
	recipient := domain.Recipient{
		PhoneNumber:       "010-1234-5678",
		Name:              "홍길동",
		TemplateVariables: map[string]string{"date": "5월 1일"},
	}
	templateReq := provider.SendReq{
		Identity:     identity,
		Channel:      domain.DispatchChannelTemplate,
		MessageType:  domain.MessageTypeKakao,
		TemplateCode: "TPL_01",
		Title:        "총회 안내",
		Content:      "#{name}님, #{date} 총회가 열립니다",
		Recipient:    recipient,
	}
	textReq := provider.SendReq{
		Identity:    identity,
		Channel:     domain.DispatchChannelText,
		MessageType: domain.MessageTypeLMS,
		Title:       "총회 안내",
		Content:     "#{name}님 총회 안내",
		Recipient:   recipient,
	}

	tests := []struct {
		name string
		req  provider.SendReq
		mock func(c *aligomocks.MockClient)
		want domain.ProviderResult
	}{
		{
			name: "알림톡成功",
			req:  templateReq,
			mock: func(c *aligomocks.MockClient) {
				c.EXPECT().SendAlimtalk(gomock.Any(), client.AlimtalkReq{
					SenderKey:       "sender-key",
					TemplateCode:    "TPL_01",
					Receiver:        "01012345678",
					RecvName:        "홍길동",
					Subject:         "총회 안내",
					Message:         "홍길동님, 5월 1일 총회가 열립니다",
					Failover:        true,
					FailoverSubject: "총회 안내",
					FailoverMessage: "홍길동님, 5월 1일 총회가 열립니다",
				}).Return(client.AlimtalkResp{
					Code: "0", Message: "ok", Raw: "raw",
					Info: client.AlimtalkInfo{Type: "AT", MID: "m1", SCnt: 1},
				}, nil)
			},
			want: domain.ProviderResult{
				ResultCode: "0", MsgType: domain.ProviderMsgTypeAlimtalk, SuccessCount: 1,
				ProviderMessageID: "m1", Message: "ok", Raw: "raw",
			},
		},
		{
			name: "알림톡业务失败保留供应商原文",
			req:  templateReq,
			mock: func(c *aligomocks.MockClient) {
				c.EXPECT().SendAlimtalk(gomock.Any(), gomock.Any()).Return(client.AlimtalkResp{
					Code: "-99", Message: "템플릿 코드가 올바르지 않습니다.", Raw: "raw",
				}, nil)
			},
			want: domain.ProviderResult{
				ResultCode: "-99", FailCount: 1, Message: "템플릿 코드가 올바르지 않습니다.", Raw: "raw",
			},
		},
		{
			name: "알림톡 网络失败",
			req:  templateReq,
			mock: func(c *aligomocks.MockClient) {
				c.EXPECT().SendAlimtalk(gomock.Any(), gomock.Any()).Return(client.AlimtalkResp{}, assert.AnError)
			},
			want: domain.ProviderResult{
				ResultCode: provider.ResultCodeTransport, FailCount: 1, Message: errs.ErrProviderCall.Error() + ": " + assert.AnError.Error(),
			},
		},
		{
			name: "文本成功",
			req:  textReq,
			mock: func(c *aligomocks.MockClient) {
				c.EXPECT().SendText(gomock.Any(), client.TextReq{
					Receiver: "01012345678", MsgType: "LMS", Title: "총회 안내", Message: "홍길동님 총회 안내",
				}).Return(client.TextResp{
					ResultCode: "1", Message: "success", MsgID: "t1", SuccessCnt: 1, MsgType: "LMS",
				}, nil)
			},
			want: domain.ProviderResult{
				ResultCode: "1", MsgType: domain.ProviderMsgTypeLMS, SuccessCount: 1,
				ProviderMessageID: "t1", Message: "success",
			},
		},
		{
			name: "文本回包没有类型时按请求类型",
			req:  textReq,
			mock: func(c *aligomocks.MockClient) {
				c.EXPECT().SendText(gomock.Any(), gomock.Any()).Return(client.TextResp{
					ResultCode: "1", MsgID: "t2", SuccessCnt: 1,
				}, nil)
			},
			want: domain.ProviderResult{
				ResultCode: "1", MsgType: domain.ProviderMsgTypeLMS, SuccessCount: 1, ProviderMessageID: "t2",
			},
		},
		{
			name: "文本失败",
			req:  textReq,
			mock: func(c *aligomocks.MockClient) {
				c.EXPECT().SendText(gomock.Any(), gomock.Any()).Return(client.TextResp{
					ResultCode: "-101", Message: "인증오류입니다.", MsgType: "LMS",
				}, nil)
			},
			want: domain.ProviderResult{
				ResultCode: "-101", MsgType: domain.ProviderMsgTypeLMS, FailCount: 1, Message: "인증오류입니다.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			c := aligomocks.NewMockClient(ctrl)
			tt.mock(c)
			got := NewProvider(c, Config{Failover: true}).Send(context.Background(), tt.req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	r := domain.Recipient{Name: "김철수", TemplateVariables: map[string]string{"amount": "1,000"}}
	assert.Equal(t, "김철수님 1,000원", Render("#{name}님 #{amount}원", r))
	assert.Equal(t, "김철수 #{unknown}", Render("#{이름} #{unknown}", r))
	assert.Equal(t, "plain", Render("plain", r))
}
