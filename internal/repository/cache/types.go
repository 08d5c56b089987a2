package cache

import (
	"context"
	"errors"
	"time"

	"notice-dispatch/internal/domain"
)

var ErrKeyNotFound = errors.New("key not found")

const (
	TariffKey          = "pricing:tariff"
	DefaultExpiredTime = time.Minute
)

//go:generate mockgen -source=./types.go -destination=./mocks/cache.mock.go -package=cachemocks TariffCache

// TariffCache 价目表快照缓存。条目只追加，所以整表缓存，失效只发生在追加之后
type TariffCache interface {
	Get(ctx context.Context) (domain.Tariff, error)
	Set(ctx context.Context, tariff domain.Tariff) error
	Del(ctx context.Context) error
}
