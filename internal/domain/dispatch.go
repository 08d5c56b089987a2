package domain

import (
	"fmt"
	"strings"
	"time"

	"notice-dispatch/internal/errs"
)

// Recipient 收件人，只在一次派发内存在，落库时只进审计清单
type Recipient struct {
	PhoneNumber       string            `json:"phoneNumber"`
	Name              string            `json:"name"`
	TemplateVariables map[string]string `json:"templateVariables,omitempty"`
}

// MaskedPhone 日志里只保留号码末四位
func (r Recipient) MaskedPhone() string {
	const keep = 4
	digits := strings.NewReplacer("-", "", " ", "").Replace(r.PhoneNumber)
	if len(digits) <= keep {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-keep) + digits[len(digits)-keep:]
}

// DispatchRequest 一次派发调用的入参，提交给编排器后不再修改
type DispatchRequest struct {
	TenantID    int64           `json:"tenantId"`
	InitiatorID int64           `json:"initiatorId"`
	Channel     DispatchChannel `json:"channel"`
	// MessageType 文本渠道必填（SMS/LMS/MMS），模版渠道固定为 KAKAO
	MessageType      MessageType `json:"messageType"`
	TemplateCode     string      `json:"templateCode"`
	TemplateName     string      `json:"templateName"`
	Title            string      `json:"title"`
	Content          string      `json:"content,omitempty"`
	RelatedContentID *int64      `json:"relatedContentId,omitempty"`
	Recipients       []Recipient `json:"recipients"`
}

func (r DispatchRequest) Validate() error {
	if r.TenantID <= 0 {
		return fmt.Errorf("%w: TenantID = %d", errs.ErrInvalidParameter, r.TenantID)
	}
	if len(r.Recipients) == 0 {
		return fmt.Errorf("%w: Recipients 不能为空", errs.ErrInvalidParameter)
	}
	for i := range r.Recipients {
		if r.Recipients[i].PhoneNumber == "" {
			return fmt.Errorf("%w: Recipients[%d].PhoneNumber 不能为空", errs.ErrInvalidParameter, i)
		}
	}
	switch r.Channel {
	case DispatchChannelTemplate:
		if r.TemplateCode == "" {
			return fmt.Errorf("%w: TemplateCode 不能为空", errs.ErrInvalidParameter)
		}
	case DispatchChannelText:
		if !r.MessageType.IsText() {
			return fmt.Errorf("%w: MessageType = %q", errs.ErrInvalidParameter, r.MessageType)
		}
		if r.Content == "" {
			return fmt.Errorf("%w: Content 不能为空", errs.ErrInvalidParameter)
		}
	default:
		return fmt.Errorf("%w: Channel = %q", errs.ErrInvalidParameter, r.Channel)
	}
	return nil
}

// Batch 派发过程中切出来的一批收件人，不落库
type Batch struct {
	Index      int
	StartIndex int
	EndIndex   int // 闭区间
	Recipients []Recipient
}

// BatchStatus 批次结果状态
type BatchStatus string

const (
	BatchStatusSuccess BatchStatus = "success"
	BatchStatusPartial BatchStatus = "partial"
	BatchStatusFailed  BatchStatus = "failed"
)

func (s BatchStatus) String() string {
	return string(s)
}

// ProviderResult 供应商单个收件人的归一化结果
type ProviderResult struct {
	ResultCode        string          `json:"resultCode"`
	MsgType           ProviderMsgType `json:"msgType"`
	SuccessCount      int             `json:"successCount"`
	FailCount         int             `json:"failCount"`
	ProviderMessageID string          `json:"providerMessageId,omitempty"`
	Message           string          `json:"message"`
	// Raw 供应商原始回包，进审计记录用于对账和争议处理
	Raw string `json:"raw,omitempty"`
}

func (r ProviderResult) Succeeded() bool {
	return r.SuccessCount > 0 && r.FailCount == 0
}

// BatchResult 单个批次的汇总结果
type BatchResult struct {
	BatchIndex        int              `json:"batchIndex"`
	StartIndex        int              `json:"startIndex"`
	EndIndex          int              `json:"endIndex"`
	Status            BatchStatus      `json:"status"`
	SuccessCount      int              `json:"successCount"`
	FailCount         int              `json:"failCount"`
	KakaoSuccessCount int              `json:"kakaoSuccessCount"`
	TextSuccessCount  int              `json:"textSuccessCount"`
	ProviderMessageID string           `json:"providerMessageId,omitempty"`
	ErrorMessage      string           `json:"errorMessage,omitempty"`
	Outcomes          []ProviderResult `json:"outcomes"`
}

// NewBatchResult 按收件人顺序汇总一批结果。
// requestedText 为 true 时，没有回包类型的成功按文本计（管理后台直发短信的情况）
func NewBatchResult(batch Batch, outcomes []ProviderResult, requestedText bool) BatchResult {
	res := BatchResult{
		BatchIndex: batch.Index,
		StartIndex: batch.StartIndex,
		EndIndex:   batch.EndIndex,
		Outcomes:   outcomes,
	}
	for _, o := range outcomes {
		if o.Succeeded() {
			res.SuccessCount++
			switch {
			case o.MsgType.IsTemplate():
				res.KakaoSuccessCount++
			case o.MsgType.IsText(), requestedText:
				res.TextSuccessCount++
			default:
				res.KakaoSuccessCount++
			}
			if res.ProviderMessageID == "" {
				res.ProviderMessageID = o.ProviderMessageID
			}
			continue
		}
		res.FailCount++
		if res.ErrorMessage == "" {
			res.ErrorMessage = o.Message
		}
	}
	res.Status = batchStatus(res.SuccessCount, res.FailCount)
	return res
}

// NewFailedBatchResult 整批失败，每个收件人都记一次失败
func NewFailedBatchResult(batch Batch, cause error) BatchResult {
	outcomes := make([]ProviderResult, len(batch.Recipients))
	for i := range outcomes {
		outcomes[i] = ProviderResult{
			ResultCode: "-1",
			FailCount:  1,
			Message:    cause.Error(),
		}
	}
	return BatchResult{
		BatchIndex:   batch.Index,
		StartIndex:   batch.StartIndex,
		EndIndex:     batch.EndIndex,
		Status:       BatchStatusFailed,
		FailCount:    len(batch.Recipients),
		ErrorMessage: cause.Error(),
		Outcomes:     outcomes,
	}
}

func batchStatus(success, fail int) BatchStatus {
	switch {
	case success == 0:
		return BatchStatusFailed
	case fail == 0:
		return BatchStatusSuccess
	default:
		return BatchStatusPartial
	}
}

// DispatchLogRecord 派发审计记录，每次调用写一条，写入后不可修改
type DispatchLogRecord struct {
	ID                int64            `json:"id"`
	TenantID          int64            `json:"tenantId"`
	InitiatorID       int64            `json:"initiatorId"`
	Title             string           `json:"title"`
	Content           string           `json:"content,omitempty"`
	RelatedContentID  *int64           `json:"relatedContentId,omitempty"`
	RecipientCount    int              `json:"recipientCount"`
	KakaoSuccessCount int              `json:"kakaoSuccessCount"`
	SMSSuccessCount   int              `json:"smsSuccessCount"`
	FailCount         int              `json:"failCount"`
	EstimatedCost     int64            `json:"estimatedCost"`
	ChannelName       string           `json:"channelName"`
	IsDefaultChannel  bool             `json:"isDefaultChannel"`
	TemplateCode      string           `json:"templateCode"`
	TemplateName      string           `json:"templateName"`
	RecipientManifest []Recipient      `json:"recipientManifest"`
	ProviderResponses []ProviderResult `json:"providerResponses"`
	CreatedAt         time.Time        `json:"createdAt"`
}

// DispatchSummary 返回给调用方的派发结果
type DispatchSummary struct {
	TotalRecipients   int           `json:"totalRecipients"`
	KakaoSuccessCount int           `json:"kakaoSuccessCount"`
	SMSSuccessCount   int           `json:"smsSuccessCount"`
	FailCount         int           `json:"failCount"`
	EstimatedCost     int64         `json:"estimatedCost"`
	ChannelName       string        `json:"channelName"`
	IsDefaultChannel  bool          `json:"isDefaultChannel"`
	ProviderMessageID string        `json:"providerMessageId,omitempty"`
	Batches           []BatchResult `json:"batches"`
	// Canceled 调用方取消后剩余批次没有发出
	Canceled bool `json:"canceled"`
	// AuditWriteErr 审计记录写入失败，不影响已经完成的发送
	AuditWriteErr error `json:"-"`
	// BatchErr 整批失败的原因汇总
	BatchErr error `json:"-"`
}

func (s DispatchSummary) SuccessCount() int {
	return s.KakaoSuccessCount + s.SMSSuccessCount
}

// BatchSendResponse 管理后台按批调用时的响应
type BatchSendResponse struct {
	SuccessCnt int    `json:"success_cnt"`
	ErrorCnt   int    `json:"error_cnt"`
	MsgID      string `json:"msg_id"`
}
