package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"gorm.io/gorm"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/errs"
	"notice-dispatch/internal/pkg/sqlx"
	"notice-dispatch/internal/repository/dao"
)

type dispatchLogRepository struct {
	dao dao.DispatchLogDAO
}

func NewDispatchLogRepository(d dao.DispatchLogDAO) DispatchLogRepository {
	return &dispatchLogRepository{dao: d}
}

func (r *dispatchLogRepository) Create(ctx context.Context, record domain.DispatchLogRecord) (domain.DispatchLogRecord, error) {
	created, err := r.dao.Insert(ctx, r.toEntity(record))
	if err != nil {
		return domain.DispatchLogRecord{}, err
	}
	return r.toDomain(created), nil
}

func (r *dispatchLogRepository) FindByID(ctx context.Context, tenantID, id int64) (domain.DispatchLogRecord, error) {
	log, err := r.dao.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DispatchLogRecord{}, fmt.Errorf("%w: tenantID = %d, id = %d", errs.ErrDispatchLogNotFound, tenantID, id)
		}
		return domain.DispatchLogRecord{}, err
	}
	return r.toDomain(log), nil
}

func (r *dispatchLogRepository) ListByTenant(ctx context.Context, tenantID int64, offset, limit int) ([]domain.DispatchLogRecord, error) {
	logs, err := r.dao.ListByTenant(ctx, tenantID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(logs, func(_ int, src dao.DispatchLog) domain.DispatchLogRecord {
		return r.toDomain(src)
	}), nil
}

func (r *dispatchLogRepository) toEntity(src domain.DispatchLogRecord) dao.DispatchLog {
	var related sql.NullInt64
	if src.RelatedContentID != nil {
		related = sql.NullInt64{Int64: *src.RelatedContentID, Valid: true}
	}
	var ctime int64
	if !src.CreatedAt.IsZero() {
		ctime = src.CreatedAt.UnixMilli()
	}
	return dao.DispatchLog{
		ID:                src.ID,
		TenantID:          src.TenantID,
		InitiatorID:       src.InitiatorID,
		Title:             src.Title,
		Content:           src.Content,
		RelatedContentID:  related,
		RecipientCount:    src.RecipientCount,
		KakaoSuccessCount: src.KakaoSuccessCount,
		SMSSuccessCount:   src.SMSSuccessCount,
		FailCount:         src.FailCount,
		EstimatedCost:     src.EstimatedCost,
		ChannelName:       src.ChannelName,
		IsDefaultChannel:  src.IsDefaultChannel,
		TemplateCode:      src.TemplateCode,
		TemplateName:      src.TemplateName,
		RecipientManifest: sqlx.NewJSONColumn(slice.Map(src.RecipientManifest, func(_ int, rc domain.Recipient) dao.DispatchLogRecipient {
			return dao.DispatchLogRecipient{PhoneNumber: rc.PhoneNumber, Name: rc.Name, TemplateVariables: rc.TemplateVariables}
		})),
		ProviderResponses: sqlx.NewJSONColumn(slice.Map(src.ProviderResponses, func(_ int, pr domain.ProviderResult) dao.DispatchLogResponse {
			return dao.DispatchLogResponse{
				ResultCode:        pr.ResultCode,
				MsgType:           string(pr.MsgType),
				SuccessCount:      pr.SuccessCount,
				FailCount:         pr.FailCount,
				ProviderMessageID: pr.ProviderMessageID,
				Message:           pr.Message,
				Raw:               pr.Raw,
			}
		})),
		Ctime: ctime,
	}
}

func (r *dispatchLogRepository) toDomain(src dao.DispatchLog) domain.DispatchLogRecord {
	var related *int64
	if src.RelatedContentID.Valid {
		v := src.RelatedContentID.Int64
		related = &v
	}
	return domain.DispatchLogRecord{
		ID:                src.ID,
		TenantID:          src.TenantID,
		InitiatorID:       src.InitiatorID,
		Title:             src.Title,
		Content:           src.Content,
		RelatedContentID:  related,
		RecipientCount:    src.RecipientCount,
		KakaoSuccessCount: src.KakaoSuccessCount,
		SMSSuccessCount:   src.SMSSuccessCount,
		FailCount:         src.FailCount,
		EstimatedCost:     src.EstimatedCost,
		ChannelName:       src.ChannelName,
		IsDefaultChannel:  src.IsDefaultChannel,
		TemplateCode:      src.TemplateCode,
		TemplateName:      src.TemplateName,
		RecipientManifest: slice.Map(src.RecipientManifest.Val, func(_ int, rc dao.DispatchLogRecipient) domain.Recipient {
			return domain.Recipient{PhoneNumber: rc.PhoneNumber, Name: rc.Name, TemplateVariables: rc.TemplateVariables}
		}),
		ProviderResponses: slice.Map(src.ProviderResponses.Val, func(_ int, pr dao.DispatchLogResponse) domain.ProviderResult {
			return domain.ProviderResult{
				ResultCode:        pr.ResultCode,
				MsgType:           domain.ProviderMsgType(pr.MsgType),
				SuccessCount:      pr.SuccessCount,
				FailCount:         pr.FailCount,
				ProviderMessageID: pr.ProviderMessageID,
				Message:           pr.Message,
				Raw:               pr.Raw,
			}
		}),
		CreatedAt: time.UnixMilli(src.Ctime),
	}
}
