package repository

import (
	"context"

	"notice-dispatch/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/repository.mock.go -package=repomocks PricingRepository TenantRepository DispatchLogRepository

// PricingRepository 价目表仓储
type PricingRepository interface {
	// Append 追加一条价目，调价的唯一方式
	Append(ctx context.Context, entry domain.PricingEntry) (domain.PricingEntry, error)
	// Tariff 当前价目表快照，可能来自本地缓存
	Tariff(ctx context.Context) (domain.Tariff, error)
}

// TenantRepository 租户只读仓储
type TenantRepository interface {
	// FindByID 不存在时返回 errs.ErrTenantNotFound
	FindByID(ctx context.Context, id int64) (domain.Tenant, error)
}

// DispatchLogRepository 派发审计记录仓储，只写一次
type DispatchLogRepository interface {
	Create(ctx context.Context, record domain.DispatchLogRecord) (domain.DispatchLogRecord, error)
	// FindByID 不存在或不属于 tenantID 时返回 errs.ErrDispatchLogNotFound
	FindByID(ctx context.Context, tenantID, id int64) (domain.DispatchLogRecord, error)
	ListByTenant(ctx context.Context, tenantID int64, offset, limit int) ([]domain.DispatchLogRecord, error)
}
