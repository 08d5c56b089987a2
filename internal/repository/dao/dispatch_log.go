package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
	"notice-dispatch/internal/pkg/sqlx"
)

type dispatchLogDAO struct {
	db *egorm.Component
}

func NewDispatchLogDAO(db *egorm.Component) DispatchLogDAO {
	return &dispatchLogDAO{db: db}
}

func (d *dispatchLogDAO) Insert(ctx context.Context, log DispatchLog) (DispatchLog, error) {
	if log.Ctime == 0 {
		log.Ctime = time.Now().UnixMilli()
	}
	err := d.db.WithContext(ctx).Create(&log).Error
	return log, err
}

func (d *dispatchLogDAO) FindByID(ctx context.Context, tenantID, id int64) (DispatchLog, error) {
	var log DispatchLog
	err := d.db.WithContext(ctx).Where("id = ? AND tenant_id = ?", id, tenantID).First(&log).Error
	return log, err
}

func (d *dispatchLogDAO) ListByTenant(ctx context.Context, tenantID int64, offset, limit int) ([]DispatchLog, error) {
	var logs []DispatchLog
	err := d.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// DispatchLog 派发审计记录，一次派发一行
type DispatchLog struct {
	ID                int64                                   `gorm:"primaryKey;autoIncrement;comment:'审计记录ID'"`
	TenantID          int64                                   `gorm:"NOT NULL;index:idx_tenant_id;comment:'租户ID'"`
	InitiatorID       int64                                   `gorm:"NOT NULL;comment:'发起人ID'"`
	Title             string                                  `gorm:"type:VARCHAR(256);comment:'标题'"`
	Content           string                                  `gorm:"type:TEXT;comment:'正文'"`
	RelatedContentID  sql.NullInt64                           `gorm:"comment:'关联的公告ID'"`
	RecipientCount    int                                     `gorm:"NOT NULL;comment:'收件人数'"`
	KakaoSuccessCount int                                     `gorm:"NOT NULL;comment:'알림톡 成功数'"`
	SMSSuccessCount   int                                     `gorm:"column:sms_success_count;NOT NULL;comment:'文本成功数'"`
	FailCount         int                                     `gorm:"NOT NULL;comment:'失败数'"`
	EstimatedCost     int64                                   `gorm:"NOT NULL;comment:'预估费用'"`
	ChannelName       string                                  `gorm:"type:VARCHAR(128);comment:'发送渠道名'"`
	IsDefaultChannel  bool                                    `gorm:"NOT NULL;comment:'是否使用平台默认渠道'"`
	TemplateCode      string                                  `gorm:"type:VARCHAR(64);comment:'模版编码'"`
	TemplateName      string                                  `gorm:"type:VARCHAR(128);comment:'模版名称'"`
	RecipientManifest sqlx.JSONColumn[[]DispatchLogRecipient] `gorm:"type:JSON;comment:'收件人清单'"`
	ProviderResponses sqlx.JSONColumn[[]DispatchLogResponse]  `gorm:"type:JSON;comment:'供应商原始回包'"`
	Ctime             int64                                   `gorm:"NOT NULL;comment:'创建时间，毫秒时间戳'"`
}

func (DispatchLog) TableName() string {
	return "dispatch_logs"
}

type DispatchLogRecipient struct {
	PhoneNumber       string            `json:"phoneNumber"`
	Name              string            `json:"name"`
	TemplateVariables map[string]string `json:"templateVariables,omitempty"`
}

type DispatchLogResponse struct {
	ResultCode        string `json:"resultCode"`
	MsgType           string `json:"msgType"`
	SuccessCount      int    `json:"successCount"`
	FailCount         int    `json:"failCount"`
	ProviderMessageID string `json:"providerMessageId,omitempty"`
	Message           string `json:"message"`
	Raw               string `json:"raw,omitempty"`
}
