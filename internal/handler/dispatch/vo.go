package dispatch

type Recipient struct {
	PhoneNumber       string            `json:"phoneNumber" binding:"required"`
	Name              string            `json:"name"`
	TemplateVariables map[string]string `json:"templateVariables,omitempty"`
}

// AlimtalkReq 公告发布后触发的알림톡 派发
type AlimtalkReq struct {
	TenantID         int64       `json:"tenantId"`
	InitiatorID      int64       `json:"initiatorId"` // 有 token 时以 token 为准
	TemplateCode     string      `json:"templateCode"`
	TemplateName     string      `json:"templateName"`
	Title            string      `json:"title"`
	Content          string      `json:"content,omitempty"`
	RelatedContentID *int64      `json:"relatedContentId,omitempty"`
	Recipients       []Recipient `json:"recipients" binding:"required,min=1,dive"`
}

type Batch struct {
	BatchIndex   int    `json:"batchIndex"`
	StartIndex   int    `json:"startIndex"`
	EndIndex     int    `json:"endIndex"`
	Status       string `json:"status"`
	SuccessCount int    `json:"successCount"`
	FailCount    int    `json:"failCount"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

type AlimtalkResp struct {
	TotalRecipients   int     `json:"totalRecipients"`
	KakaoSuccessCount int     `json:"kakaoSuccessCount"`
	SMSSuccessCount   int     `json:"smsSuccessCount"`
	FailCount         int     `json:"failCount"`
	EstimatedCost     int64   `json:"estimatedCost"`
	ChannelName       string  `json:"channelName"`
	IsDefaultChannel  bool    `json:"isDefaultChannel"`
	ProviderMessageID string  `json:"providerMessageId,omitempty"`
	Canceled          bool    `json:"canceled"`
	AuditWriteFailed  bool    `json:"auditWriteFailed"`
	Batches           []Batch `json:"batches"`
}

// TextBatchReq 管理后台按批直发的文本短信
type TextBatchReq struct {
	TenantID    int64       `json:"tenantId"`
	InitiatorID int64       `json:"initiatorId"`
	MessageType string      `json:"messageType"` // SMS / LMS / MMS
	Title       string      `json:"title,omitempty"`
	Content     string      `json:"content"`
	Recipients  []Recipient `json:"recipients" binding:"required,min=1,dive"`
}

type TextBatchResp struct {
	SuccessCnt int    `json:"success_cnt"`
	ErrorCnt   int    `json:"error_cnt"`
	MsgID      string `json:"msg_id"`
}

type ListLogsReq struct {
	TenantID int64 `form:"tenantId"`
	Offset   int   `form:"offset"`
	Limit    int   `form:"limit"`
}

type DispatchLog struct {
	ID                int64  `json:"id"`
	TenantID          int64  `json:"tenantId"`
	InitiatorID       int64  `json:"initiatorId"`
	Title             string `json:"title"`
	RelatedContentID  *int64 `json:"relatedContentId,omitempty"`
	RecipientCount    int    `json:"recipientCount"`
	KakaoSuccessCount int    `json:"kakaoSuccessCount"`
	SMSSuccessCount   int    `json:"smsSuccessCount"`
	FailCount         int    `json:"failCount"`
	EstimatedCost     int64  `json:"estimatedCost"`
	ChannelName       string `json:"channelName"`
	IsDefaultChannel  bool   `json:"isDefaultChannel"`
	TemplateCode      string `json:"templateCode"`
	TemplateName      string `json:"templateName"`
	Ctime             int64  `json:"ctime"` // 毫秒
}

type ListLogsResp struct {
	Logs []DispatchLog `json:"logs"`
}

type GetLogReq struct {
	ID       int64 `uri:"id" binding:"required,min=1"`
	TenantID int64 `form:"tenantId"`
}

// LogRecipient 号码只露末四位
type LogRecipient struct {
	PhoneNumber       string            `json:"phoneNumber"`
	Name              string            `json:"name"`
	TemplateVariables map[string]string `json:"templateVariables,omitempty"`
}

type ProviderResponse struct {
	ResultCode        string `json:"resultCode"`
	MsgType           string `json:"msgType"`
	SuccessCount      int    `json:"successCount"`
	FailCount         int    `json:"failCount"`
	ProviderMessageID string `json:"providerMessageId,omitempty"`
	Message           string `json:"message"`
}

// DispatchLogDetail 争议核对用，第 i 个回包对应第 i 个收件人
type DispatchLogDetail struct {
	DispatchLog
	Content           string             `json:"content,omitempty"`
	Recipients        []LogRecipient     `json:"recipients"`
	ProviderResponses []ProviderResponse `json:"providerResponses"`
}

// AppendPricingReq 调价，EffectiveFrom 为毫秒时间戳，可以是未来
type AppendPricingReq struct {
	MessageType   string `json:"messageType"`
	UnitPrice     int64  `json:"unitPrice"`
	EffectiveFrom int64  `json:"effectiveFrom"`
}

type PricingEntry struct {
	ID            int64  `json:"id"`
	MessageType   string `json:"messageType"`
	UnitPrice     int64  `json:"unitPrice"`
	EffectiveFrom int64  `json:"effectiveFrom"`
}
