package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string, got *url.Values) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		*got = r.PostForm
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAligoClient_SendAlimtalk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		req      AlimtalkReq
		wantResp AlimtalkResp
		wantErr  error
		assertFn func(t *testing.T, form url.Values)
	}{
		{
			name:   "成功，mid 为数字",
			status: http.StatusOK,
			body:   `{"code":0,"message":"성공적으로 전송요청 하였습니다.","info":{"type":"AT","mid":421332,"current":"93.3","unit":6.5,"total":6.5,"scnt":1,"fcnt":0}}`,
			req: AlimtalkReq{
				SenderKey: "sk", TemplateCode: "TPL_01", Receiver: "01012345678", RecvName: "홍길동",
				Subject: "총회", Message: "홍길동님 총회 안내", Failover: true,
				FailoverSubject: "총회", FailoverMessage: "홍길동님 총회 안내",
			},
			wantResp: AlimtalkResp{
				Code: "0", Message: "성공적으로 전송요청 하였습니다.",
				Info: AlimtalkInfo{Type: "AT", MID: "421332", SCnt: 1},
			},
			assertFn: func(t *testing.T, form url.Values) {
				assert.Equal(t, "key", form.Get("apikey"))
				assert.Equal(t, "uid", form.Get("userid"))
				assert.Equal(t, "sk", form.Get("senderkey"))
				assert.Equal(t, "TPL_01", form.Get("tpl_code"))
				assert.Equal(t, "0212345678", form.Get("sender"))
				assert.Equal(t, "01012345678", form.Get("receiver_1"))
				assert.Equal(t, "Y", form.Get("failover"))
				assert.Equal(t, "홍길동님 총회 안내", form.Get("fmessage_1"))
			},
		},
		{
			name:   "业务失败，code 为字符串",
			status: http.StatusOK,
			body:   `{"code":"-99","message":"템플릿 코드가 올바르지 않습니다."}`,
			req:    AlimtalkReq{SenderKey: "sk", TemplateCode: "BAD"},
			wantResp: AlimtalkResp{
				Code: "-99", Message: "템플릿 코드가 올바르지 않습니다.",
			},
			assertFn: func(t *testing.T, form url.Values) {
				assert.Empty(t, form.Get("failover"))
			},
		},
		{
			name:    "HTTP 状态异常",
			status:  http.StatusBadGateway,
			body:    `bad gateway`,
			wantErr: ErrUnexpectedResponse,
		},
		{
			name:    "回包不是 JSON",
			status:  http.StatusOK,
			body:    `<html>`,
			wantErr: ErrUnexpectedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var form url.Values
			srv := newTestServer(t, tt.status, tt.body, &form)
			c := NewAligoClient(Config{APIKey: "key", UserID: "uid", Sender: "0212345678", AlimtalkURL: srv.URL})

			resp, err := c.SendAlimtalk(context.Background(), tt.req)
			assert.Equal(t, tt.body, resp.Raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.wantResp.Raw = tt.body
			assert.Equal(t, tt.wantResp, resp)
			tt.assertFn(t, form)
		})
	}
}

func TestAligoClient_SendText(t *testing.T) {
	t.Parallel()

	var form url.Values
	body := `{"result_code":"1","message":"success","msg_id":"123456789","success_cnt":1,"error_cnt":0,"msg_type":"LMS"}`
	srv := newTestServer(t, http.StatusOK, body, &form)
	c := NewAligoClient(Config{APIKey: "key", UserID: "uid", Sender: "0212345678", TextURL: srv.URL, TestMode: true})

	resp, err := c.SendText(context.Background(), TextReq{
		Receiver: "01012345678", MsgType: "LMS", Title: "총회", Message: "총회가 열립니다",
	})
	require.NoError(t, err)
	assert.Equal(t, TextResp{
		ResultCode: "1", Message: "success", MsgID: "123456789",
		SuccessCnt: 1, MsgType: "LMS", Raw: body,
	}, resp)
	assert.Equal(t, "key", form.Get("key"))
	assert.Equal(t, "uid", form.Get("user_id"))
	assert.Equal(t, "LMS", form.Get("msg_type"))
	assert.Equal(t, "총회", form.Get("title"))
	assert.Equal(t, "Y", form.Get("testmode_yn"))
}

func TestAligoClient_Canceled(t *testing.T) {
	t.Parallel()

	var form url.Values
	srv := newTestServer(t, http.StatusOK, `{}`, &form)
	c := NewAligoClient(Config{TextURL: srv.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.SendText(ctx, TextReq{Receiver: "010"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFlexString_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    FlexString
		wantErr bool
	}{
		{name: "字符串", input: `"1"`, want: "1"},
		{name: "整数", input: `-99`, want: "-99"},
		{name: "null", input: `null`, want: ""},
		{name: "对象", input: `{}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got FlexString
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
