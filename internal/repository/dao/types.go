package dao

import (
	"context"
)

//go:generate mockgen -source=./types.go -destination=./mocks/dao.mock.go -package=daomocks PricingEntryDAO TenantDAO DispatchLogDAO

type PricingEntryDAO interface {
	// Create 追加一条价目，已有条目永不修改
	Create(ctx context.Context, entry PricingEntry) (PricingEntry, error)
	// FindAll 全部条目，按 effective_from、id 倒序。价目表只在调价时增长，整表读取
	FindAll(ctx context.Context) ([]PricingEntry, error)
}

type TenantDAO interface {
	FindByID(ctx context.Context, id int64) (Tenant, error)
}

type DispatchLogDAO interface {
	// Insert 只插入，审计记录没有更新和删除
	Insert(ctx context.Context, log DispatchLog) (DispatchLog, error)
	// FindByID 只在 tenantID 名下查找，别的租户的记录按不存在处理
	FindByID(ctx context.Context, tenantID, id int64) (DispatchLog, error)
	// ListByTenant 按 id 倒序分页
	ListByTenant(ctx context.Context, tenantID int64, offset, limit int) ([]DispatchLog, error)
}
