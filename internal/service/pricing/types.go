package pricing

import (
	"context"
	"time"

	"notice-dispatch/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/pricing.mock.go -package=pricingmocks Oracle Service

// Oracle 按时间版本化的价目表计价，从不返回错误
type Oracle interface {
	// EffectivePrice at 时刻 mt 的生效单价
	EffectivePrice(ctx context.Context, mt domain.MessageType, at time.Time) int64
	// UnitPrices 一次派发开始时解析全部单价
	UnitPrices(ctx context.Context, at time.Time) domain.UnitPrices
}

type Service interface {
	Oracle
	// Append 追加一条价目，生效时间可以是未来
	Append(ctx context.Context, entry domain.PricingEntry) (domain.PricingEntry, error)
}
