package identity

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gotomicro/ego/core/elog"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/errs"
	"notice-dispatch/internal/pkg/secret"
	"notice-dispatch/internal/repository"
)

const DefaultSenderKeyEnv = "KAKAO_DEFAULT_SENDER_KEY"

var _ Resolver = (*SenderResolver)(nil)

type SenderResolver struct {
	tenants repository.TenantRepository
	store   secret.Store
	cfg     Config
	logger  *elog.Component
}

func NewSenderResolver(tenants repository.TenantRepository, store secret.Store, cfg Config) *SenderResolver {
	if cfg.DefaultSenderKey == "" {
		cfg.DefaultSenderKey = os.Getenv(DefaultSenderKeyEnv)
	}
	return &SenderResolver{
		tenants: tenants,
		store:   store,
		cfg:     cfg,
		logger:  elog.DefaultLogger,
	}
}

func (r *SenderResolver) Resolve(ctx context.Context, tenantID int64) (domain.SenderIdentity, error) {
	if id, ok := r.tenantIdentity(ctx, tenantID); ok {
		return id, nil
	}
	if id, ok := r.platformIdentity(ctx); ok {
		return id, nil
	}
	if r.cfg.DefaultSenderKey != "" {
		return domain.SenderIdentity{
			Key:         r.cfg.DefaultSenderKey,
			ChannelName: r.cfg.PlatformChannelName,
			IsDefault:   true,
		}, nil
	}
	return domain.SenderIdentity{}, fmt.Errorf("%w: tenantID = %d", errs.ErrSenderKeyNotFound, tenantID)
}

func (r *SenderResolver) tenantIdentity(ctx context.Context, tenantID int64) (domain.SenderIdentity, bool) {
	tenant, err := r.tenants.FindByID(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, errs.ErrTenantNotFound) {
			r.logger.Warn("查询租户失败，回退到平台默认密钥",
				elog.Int64("tenantID", tenantID), elog.FieldErr(err))
		}
		return domain.SenderIdentity{}, false
	}
	if tenant.SenderKeyRef == "" {
		return domain.SenderIdentity{}, false
	}
	key, err := r.store.Get(ctx, tenant.SenderKeyRef)
	if err != nil || key == "" {
		r.logger.Warn("读取租户发送密钥失败，回退到平台默认密钥",
			elog.Int64("tenantID", tenantID), elog.FieldErr(err))
		return domain.SenderIdentity{}, false
	}
	name := tenant.ChannelName
	if name == "" {
		name = r.cfg.FallbackChannelName
	}
	return domain.SenderIdentity{Key: key, ChannelName: name}, true
}

func (r *SenderResolver) platformIdentity(ctx context.Context) (domain.SenderIdentity, bool) {
	if r.cfg.DefaultSecretName == "" {
		return domain.SenderIdentity{}, false
	}
	key, err := r.store.Get(ctx, r.cfg.DefaultSecretName)
	if err != nil || key == "" {
		r.logger.Warn("读取平台默认发送密钥失败", elog.FieldErr(err))
		return domain.SenderIdentity{}, false
	}
	return domain.SenderIdentity{
		Key:         key,
		ChannelName: r.cfg.PlatformChannelName,
		IsDefault:   true,
	}, true
}
