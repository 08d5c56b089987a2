package local

import (
	"context"
	"errors"
	"time"

	ca "github.com/patrickmn/go-cache"
	"notice-dispatch/internal/domain"
	"notice-dispatch/internal/repository/cache"
)

var _ cache.TariffCache = (*TariffCache)(nil)

type TariffCache struct {
	localCache *ca.Cache
	expiration time.Duration
}

// NewTariffCache expiration <= 0 时使用 cache.DefaultExpiredTime
func NewTariffCache(expiration time.Duration) *TariffCache {
	if expiration <= 0 {
		expiration = cache.DefaultExpiredTime
	}
	return &TariffCache{
		localCache: ca.New(expiration, 2*expiration),
		expiration: expiration,
	}
}

func (c *TariffCache) Get(_ context.Context) (domain.Tariff, error) {
	v, ok := c.localCache.Get(cache.TariffKey)
	if !ok {
		return domain.Tariff{}, cache.ErrKeyNotFound
	}
	vv, ok := v.(domain.Tariff)
	if !ok {
		return domain.Tariff{}, errors.New("数据类型不正确")
	}
	return vv, nil
}

func (c *TariffCache) Set(_ context.Context, tariff domain.Tariff) error {
	c.localCache.Set(cache.TariffKey, tariff, c.expiration)
	return nil
}

func (c *TariffCache) Del(_ context.Context) error {
	c.localCache.Delete(cache.TariffKey)
	return nil
}
