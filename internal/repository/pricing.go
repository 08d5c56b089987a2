package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/repository/cache"
	"notice-dispatch/internal/repository/dao"
)

type pricingRepository struct {
	dao    dao.PricingEntryDAO
	cache  cache.TariffCache
	logger *elog.Component
}

func NewPricingRepository(d dao.PricingEntryDAO, c cache.TariffCache) PricingRepository {
	return &pricingRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *pricingRepository) Append(ctx context.Context, entry domain.PricingEntry) (domain.PricingEntry, error) {
	created, err := r.dao.Create(ctx, r.toEntity(entry))
	if err != nil {
		return domain.PricingEntry{}, err
	}
	if err1 := r.cache.Del(ctx); err1 != nil {
		r.logger.Warn("删除价目表缓存失败", elog.FieldErr(err1))
	}
	return r.toDomain(created), nil
}

func (r *pricingRepository) Tariff(ctx context.Context) (domain.Tariff, error) {
	tariff, err := r.cache.Get(ctx)
	if err == nil {
		return tariff, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		r.logger.Warn("读取价目表缓存失败", elog.FieldErr(err))
	}

	entities, err := r.dao.FindAll(ctx)
	if err != nil {
		return domain.Tariff{}, err
	}
	tariff = domain.Tariff{Entries: slice.Map(entities, func(_ int, src dao.PricingEntry) domain.PricingEntry {
		return r.toDomain(src)
	})}
	if err1 := r.cache.Set(ctx, tariff); err1 != nil {
		r.logger.Warn("写入价目表缓存失败", elog.FieldErr(err1))
	}
	return tariff, nil
}

func (r *pricingRepository) toDomain(src dao.PricingEntry) domain.PricingEntry {
	return domain.PricingEntry{
		ID:            src.ID,
		MessageType:   domain.MessageType(src.MessageType),
		UnitPrice:     src.UnitPrice,
		EffectiveFrom: time.UnixMilli(src.EffectiveFrom),
	}
}

func (r *pricingRepository) toEntity(src domain.PricingEntry) dao.PricingEntry {
	return dao.PricingEntry{
		ID:            src.ID,
		MessageType:   src.MessageType.String(),
		UnitPrice:     src.UnitPrice,
		EffectiveFrom: src.EffectiveFrom.UnixMilli(),
	}
}
