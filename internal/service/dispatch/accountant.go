package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/errs"
	"notice-dispatch/internal/repository"
)

// Accountant 汇总批次结果、计费并写审计记录
type Accountant struct {
	repo      repository.DispatchLogRepository
	publisher CompletedPublisher
	logger    *elog.Component
}

// NewAccountant publisher 可以为 nil
func NewAccountant(repo repository.DispatchLogRepository, publisher CompletedPublisher) *Accountant {
	return &Accountant{
		repo:      repo,
		publisher: publisher,
		logger:    elog.DefaultLogger,
	}
}

// Summarize 模版渠道成功计入 KakaoSuccessCount，回落或直发的文本成功计入 SMSSuccessCount，失败不计费。
// 费用 = Kakao * 单价(KAKAO) + SMS * 单价(SMS)
func (a *Accountant) Summarize(
	identity domain.SenderIdentity,
	prices domain.UnitPrices,
	req domain.DispatchRequest,
	results []domain.BatchResult,
	at time.Time,
) domain.DispatchLogRecord {
	record := domain.DispatchLogRecord{
		TenantID:          req.TenantID,
		InitiatorID:       req.InitiatorID,
		Title:             req.Title,
		Content:           req.Content,
		RelatedContentID:  req.RelatedContentID,
		RecipientCount:    len(req.Recipients),
		ChannelName:       identity.ChannelName,
		IsDefaultChannel:  identity.IsDefault,
		TemplateCode:      req.TemplateCode,
		TemplateName:      req.TemplateName,
		RecipientManifest: req.Recipients,
		ProviderResponses: make([]domain.ProviderResult, 0, len(req.Recipients)),
		CreatedAt:         at,
	}
	for _, r := range results {
		record.KakaoSuccessCount += r.KakaoSuccessCount
		record.SMSSuccessCount += r.TextSuccessCount
		record.FailCount += r.FailCount
		record.ProviderResponses = append(record.ProviderResponses, r.Outcomes...)
	}
	record.EstimatedCost = int64(record.KakaoSuccessCount)*prices.Kakao +
		int64(record.SMSSuccessCount)*prices.SMS
	return record
}

// Persist 写入一条审计记录，成功后尽力通知下游
func (a *Accountant) Persist(ctx context.Context, record domain.DispatchLogRecord) (domain.DispatchLogRecord, error) {
	created, err := a.repo.Create(ctx, record)
	if err != nil {
		a.logger.Error("写入派发审计记录失败",
			elog.Int64("tenantID", record.TenantID),
			elog.Int("recipientCount", record.RecipientCount),
			elog.FieldErr(err))
		return record, fmt.Errorf("%w: %w", errs.ErrLogPersistence, err)
	}
	if a.publisher != nil {
		if err1 := a.publisher.Publish(ctx, created); err1 != nil {
			a.logger.Warn("发送派发完成事件失败",
				elog.Int64("logID", created.ID), elog.FieldErr(err1))
		}
	}
	return created, nil
}
